package collector

import (
	"fmt"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/kubev2v/ovirt-inventory/internal/inventory"
	"github.com/kubev2v/ovirt-inventory/internal/ovirt"
)

// Collector retrieves the four entity collections from the engine and
// denormalizes the cluster and data-center references into each host and
// VM variable bag.
type Collector struct {
	client    ovirt.Client
	sanitizer *inventory.Sanitizer
}

func New(client ovirt.Client, sanitizer *inventory.Sanitizer) *Collector {
	return &Collector{client: client, sanitizer: sanitizer}
}

// Collect runs a single synchronous pass: data centers, clusters, hosts,
// VMs, in that order. An entity referencing an unknown cluster or data
// center aborts the run.
func (c *Collector) Collect() ([]inventory.Record, []inventory.Record, error) {
	log := zap.S().Named("collector")

	log.Info("listing data centers")
	dataCenters, err := c.client.ListDataCenters()
	if err != nil {
		return nil, nil, err
	}
	dcVars := make(map[string]inventory.Vars, len(dataCenters))
	dcName := make(map[string]string, len(dataCenters))
	for _, dc := range dataCenters {
		dcVars[dc.ID] = projectAttrs(c.sanitizer, dc.Attrs)
		dcName[dc.ID] = dc.Name
	}

	log.Info("listing clusters")
	clusters, err := c.client.ListClusters()
	if err != nil {
		return nil, nil, err
	}
	clusterVars := make(map[string]inventory.Vars, len(clusters))
	clusterName := make(map[string]string, len(clusters))
	clusterDC := make(map[string]string, len(clusters))
	for _, cluster := range clusters {
		dc, ok := dcVars[cluster.DataCenterID]
		if !ok {
			return nil, nil, fmt.Errorf("cluster %q references unknown data center %q", cluster.Name, cluster.DataCenterID)
		}
		vars := projectAttrs(c.sanitizer, cluster.Attrs)
		vars["data_center"] = dc
		clusterVars[cluster.ID] = vars
		clusterName[cluster.ID] = cluster.Name
		clusterDC[cluster.ID] = dcName[cluster.DataCenterID]
	}

	log.Info("listing hosts")
	listedHosts, err := c.client.ListHosts()
	if err != nil {
		return nil, nil, err
	}
	hosts := []inventory.Record{}
	hostName := make(map[string]string, len(listedHosts))
	for _, host := range listedHosts {
		cluster, ok := clusterVars[host.ClusterID]
		if !ok {
			return nil, nil, fmt.Errorf("host %q references unknown cluster %q", host.Name, host.ClusterID)
		}
		vars := projectAttrs(c.sanitizer, host.Attrs)
		vars["status"] = host.Status
		vars["cluster"] = cluster
		vars["tags"] = stringList(host.Tags)
		hostName[host.ID] = host.Name

		record := inventory.Record{
			Name:       host.Name,
			Vars:       vars,
			DataCenter: clusterDC[host.ClusterID],
			Cluster:    clusterName[host.ClusterID],
			Tags:       host.Tags,
		}
		// a host whose address is its own id has no distinct management
		// address to connect to
		if host.Address != "" && host.Address != host.ID {
			record.ConnectionHint = host.Address
		}
		hosts = append(hosts, record)
	}

	log.Info("listing vms")
	listedVMs, err := c.client.ListVMs()
	if err != nil {
		return nil, nil, err
	}
	vms := []inventory.Record{}
	affinityGroups := map[string][]ovirt.AffinityGroup{}
	for _, vm := range listedVMs {
		cluster, ok := clusterVars[vm.ClusterID]
		if !ok {
			return nil, nil, fmt.Errorf("vm %q references unknown cluster %q", vm.Name, vm.ClusterID)
		}

		groups, ok := affinityGroups[vm.ClusterID]
		if !ok {
			if groups, err = c.client.ListAffinityGroups(vm.ClusterID); err != nil {
				return nil, nil, err
			}
			affinityGroups[vm.ClusterID] = groups
		}
		memberOf := []string{}
		for _, group := range groups {
			if funk.ContainsString(group.VMNames, vm.Name) {
				memberOf = append(memberOf, group.Name)
			}
		}

		vars := projectAttrs(c.sanitizer, vm.Attrs)
		if name, ok := hostName[vm.HostID]; ok {
			vars["host"] = name
		} else {
			vars["host"] = nil
		}
		vars["status"] = vm.Status
		vars["os_type"] = vm.OSType
		vars["template"] = vm.Template
		vars["nics"] = nicVars(vm.NICs)
		vars["tags"] = stringList(vm.Tags)
		vars["statistics"] = statisticVars(vm.Statistics)
		vars["affinity_labels"] = stringList(vm.AffinityLabels)
		vars["affinity_groups"] = memberOf
		vars["cluster"] = cluster

		record := inventory.Record{
			Name:           vm.Name,
			Vars:           vars,
			ConnectionHint: firstReportedIP(vm.NICs),
			DataCenter:     clusterDC[vm.ClusterID],
			Cluster:        clusterName[vm.ClusterID],
			Tags:           vm.Tags,
			Host:           hostName[vm.HostID],
		}
		vms = append(vms, record)
	}

	log.Infof("collected %d hosts and %d vms", len(hosts), len(vms))
	return hosts, vms, nil
}

// firstReportedIP picks the first address of the first device that reported
// any, in device order.
func firstReportedIP(nics []ovirt.NIC) string {
	for _, nic := range nics {
		if len(nic.IPs) > 0 {
			return nic.IPs[0]
		}
	}
	return ""
}
