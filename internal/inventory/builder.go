package inventory

// Record is one host or virtual machine ready for grouping: the inventory
// name, the flattened variable bag that ends up under _meta.hostvars, and
// the raw entity names the group buckets are derived from.
type Record struct {
	Name string
	Vars Vars
	// ConnectionHint becomes the ansible_host variable when non-empty.
	ConnectionHint string
	DataCenter     string
	Cluster        string
	Tags           []string
	// Host is the name of the managing host. VMs only; empty when the VM
	// is not running anywhere.
	Host string
}

// Build assembles the inventory document from the collected records, hosts
// first, then VMs, preserving the encounter order of each collection.
func Build(hosts, vms []Record, s *Sanitizer) *Inventory {
	inv := New()

	for _, host := range hosts {
		inv.SetHostVars(host.Name, hostVarsEntry(host))
		inv.AddToGroup(host.Name, GroupHosts)
		inv.AddToGroup(host.Name, "ovirt_data_center_"+s.Safe(host.DataCenter))
		inv.AddToGroup(host.Name, "ovirt_cluster_"+s.Safe(host.Cluster))
	}

	for _, vm := range vms {
		inv.SetHostVars(vm.Name, hostVarsEntry(vm))
		inv.AddToGroup(vm.Name, GroupVMs)
		inv.AddToGroup(vm.Name, "ovirt_data_center_"+s.Safe(vm.DataCenter))
		inv.AddToGroup(vm.Name, "ovirt_cluster_"+s.Safe(vm.Cluster))
		for _, tag := range vm.Tags {
			inv.AddToGroup(vm.Name, "ovirt_tag_"+s.Safe(tag))
		}
		if vm.Host != "" {
			inv.AddToGroup(vm.Name, "ovirt_host_"+s.Safe(vm.Host))
		}
	}

	return inv
}

func hostVarsEntry(r Record) Vars {
	entry := Vars{"ovirt": r.Vars}
	if r.ConnectionHint != "" {
		entry["ansible_host"] = r.ConnectionHint
	}
	return entry
}
