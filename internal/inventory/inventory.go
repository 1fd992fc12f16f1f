package inventory

import "encoding/json"

// Vars is a JSON-safe variable bag.
type Vars map[string]any

// Groups every inventory document carries regardless of what the engine
// returned. Both are referenced from the children list of the "all" group.
const (
	GroupHosts = "ovirt_hosts"
	GroupVMs   = "ovirt_vms"
)

type groupBucket struct {
	Hosts []string `json:"hosts"`
}

// Inventory is the Ansible dynamic-inventory document: one key per group,
// plus the reserved _meta.hostvars bag and the fixed "all" group.
type Inventory struct {
	doc      map[string]any
	hostvars map[string]any
}

func New() *Inventory {
	hostvars := map[string]any{}
	return &Inventory{
		doc: map[string]any{
			"_meta":    map[string]any{"hostvars": hostvars},
			"all":      map[string]any{"children": []string{GroupHosts, GroupVMs}},
			GroupHosts: &groupBucket{Hosts: []string{}},
			GroupVMs:   &groupBucket{Hosts: []string{}},
		},
		hostvars: hostvars,
	}
}

// AddToGroup appends name to the group's host list, creating the group on
// first use. Names are appended in call order.
func (inv *Inventory) AddToGroup(name, group string) {
	bucket, ok := inv.doc[group].(*groupBucket)
	if !ok {
		bucket = &groupBucket{Hosts: []string{}}
		inv.doc[group] = bucket
	}
	bucket.Hosts = append(bucket.Hosts, name)
}

// SetHostVars stores the per-entity variable bag under _meta.hostvars.
// A name already present is overwritten; collisions are not detected.
func (inv *Inventory) SetHostVars(name string, vars Vars) {
	inv.hostvars[name] = vars
}

// HostVars returns the variable bag of a single host or VM.
func (inv *Inventory) HostVars(name string) (Vars, bool) {
	vars, ok := inv.hostvars[name].(Vars)
	return vars, ok
}

func (inv *Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.doc)
}
