package ovirt

// Attribute is one scalar attribute of an engine entity. Value is a string,
// int64 or bool, or nil when the engine reported no value. Anything the API
// models as a nested object, list or enum never enters the attribute set;
// the pieces the inventory needs are carried on the typed fields below.
type Attribute struct {
	Name  string
	Value any
}

type DataCenter struct {
	ID    string
	Name  string
	Attrs []Attribute
}

type Cluster struct {
	ID           string
	Name         string
	DataCenterID string
	Attrs        []Attribute
}

type Host struct {
	ID        string
	Name      string
	Address   string
	Status    string
	ClusterID string
	Attrs     []Attribute
	Tags      []string
}

// NIC is one reported device of a VM. MAC is empty and IPs nil when the
// guest agent did not report them.
type NIC struct {
	Name string
	MAC  string
	IPs  []string
}

// Statistic is the latest sample of one VM statistic. Statistics without
// samples are not retained.
type Statistic struct {
	Name  string
	Datum float64
}

type VM struct {
	ID        string
	Name      string
	Status    string
	OSType    string
	Template  string
	HostID    string
	ClusterID string
	Attrs     []Attribute
	Tags      []string

	AffinityLabels []string
	NICs           []NIC
	Statistics     []Statistic
}

// AffinityGroup is a placement policy of one cluster; VMNames is its
// member list.
type AffinityGroup struct {
	ID      string
	Name    string
	VMNames []string
}

// Client is the read-only slice of the engine API the inventory consumes.
// ListHosts and ListVMs return fully loaded records, sub-resources
// (tags, reported devices, statistics, affinity labels) included.
type Client interface {
	ListDataCenters() ([]DataCenter, error)
	ListClusters() ([]Cluster, error)
	ListAffinityGroups(clusterID string) ([]AffinityGroup, error)
	ListHosts() ([]Host, error)
	ListVMs() ([]VM, error)
	Close() error
}
