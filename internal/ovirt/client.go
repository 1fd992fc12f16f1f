package ovirt

import (
	ovirtsdk4 "github.com/ovirt/go-ovirt"
	"github.com/pkg/errors"

	"github.com/kubev2v/ovirt-inventory/internal/config"
)

type client struct {
	conn   *ovirtsdk4.Connection
	system *ovirtsdk4.SystemService
}

// Connect opens one authenticated session against the engine API. The
// session stays open until Close; nothing is retried.
func Connect(settings config.OvirtSettings) (Client, error) {
	builder := ovirtsdk4.NewConnectionBuilder().
		URL(settings.URL).
		Username(settings.Username).
		Password(settings.Password)
	if settings.CAFile != "" {
		builder = builder.CAFile(settings.CAFile)
	}
	conn, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open engine session")
	}
	return &client{conn: conn, system: conn.SystemService()}, nil
}

func (c *client) Close() error {
	return c.conn.Close()
}

func (c *client) ListDataCenters() ([]DataCenter, error) {
	resp, err := c.system.DataCentersService().List().Send()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list data centers")
	}
	result := []DataCenter{}
	if dcs, ok := resp.DataCenters(); ok {
		for _, dc := range dcs.Slice() {
			result = append(result, DataCenter{
				ID:    str(dc.Id()),
				Name:  str(dc.Name()),
				Attrs: dataCenterAttrs(dc),
			})
		}
	}
	return result, nil
}

func (c *client) ListClusters() ([]Cluster, error) {
	resp, err := c.system.ClustersService().List().Send()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clusters")
	}
	result := []Cluster{}
	if clusters, ok := resp.Clusters(); ok {
		for _, cl := range clusters.Slice() {
			record := Cluster{
				ID:    str(cl.Id()),
				Name:  str(cl.Name()),
				Attrs: clusterAttrs(cl),
			}
			if dc, ok := cl.DataCenter(); ok {
				record.DataCenterID = str(dc.Id())
			}
			result = append(result, record)
		}
	}
	return result, nil
}

func (c *client) ListAffinityGroups(clusterID string) ([]AffinityGroup, error) {
	resp, err := c.system.ClustersService().ClusterService(clusterID).AffinityGroupsService().List().Send()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list affinity groups of cluster %s", clusterID)
	}
	result := []AffinityGroup{}
	if groups, ok := resp.Groups(); ok {
		for _, group := range groups.Slice() {
			record := AffinityGroup{ID: str(group.Id()), Name: str(group.Name())}
			if vms, ok := group.Vms(); ok {
				for _, vm := range vms.Slice() {
					if name, ok := vm.Name(); ok {
						record.VMNames = append(record.VMNames, name)
					}
				}
			}
			result = append(result, record)
		}
	}
	return result, nil
}

func (c *client) ListHosts() ([]Host, error) {
	resp, err := c.system.HostsService().List().Send()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hosts")
	}
	result := []Host{}
	if hosts, ok := resp.Hosts(); ok {
		for _, h := range hosts.Slice() {
			record := Host{
				ID:      str(h.Id()),
				Name:    str(h.Name()),
				Address: str(h.Address()),
				Attrs:   hostAttrs(h),
			}
			if status, ok := h.Status(); ok {
				record.Status = string(status)
			}
			if cl, ok := h.Cluster(); ok {
				record.ClusterID = str(cl.Id())
			}
			tags, err := listTags(c.system.HostsService().HostService(record.ID).TagsService())
			if err != nil {
				return nil, errors.Wrapf(err, "failed to list tags of host %s", record.Name)
			}
			record.Tags = tags
			result = append(result, record)
		}
	}
	return result, nil
}

func (c *client) ListVMs() ([]VM, error) {
	resp, err := c.system.VmsService().List().Send()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vms")
	}
	result := []VM{}
	if vms, ok := resp.Vms(); ok {
		for _, vm := range vms.Slice() {
			record := VM{
				ID:    str(vm.Id()),
				Name:  str(vm.Name()),
				Attrs: vmAttrs(vm),
			}
			if status, ok := vm.Status(); ok {
				record.Status = string(status)
			}
			if os, ok := vm.Os(); ok {
				record.OSType = str(os.Type())
			}
			if template, ok := vm.Template(); ok {
				record.Template = str(template.Name())
			}
			if host, ok := vm.Host(); ok {
				record.HostID = str(host.Id())
			}
			if cl, ok := vm.Cluster(); ok {
				record.ClusterID = str(cl.Id())
			}

			svc := c.system.VmsService().VmService(record.ID)
			if err := c.loadVMSubresources(svc, &record); err != nil {
				return nil, err
			}
			result = append(result, record)
		}
	}
	return result, nil
}

func (c *client) loadVMSubresources(svc *ovirtsdk4.VmService, record *VM) error {
	devResp, err := svc.ReportedDevicesService().List().Send()
	if err != nil {
		return errors.Wrapf(err, "failed to list reported devices of vm %s", record.Name)
	}
	if devices, ok := devResp.ReportedDevice(); ok {
		for _, dev := range devices.Slice() {
			nic := NIC{Name: str(dev.Name())}
			if mac, ok := dev.Mac(); ok {
				nic.MAC = str(mac.Address())
			}
			if ips, ok := dev.Ips(); ok {
				for _, ip := range ips.Slice() {
					if addr, ok := ip.Address(); ok {
						nic.IPs = append(nic.IPs, addr)
					}
				}
			}
			record.NICs = append(record.NICs, nic)
		}
	}

	record.Tags, err = listTags(svc.TagsService())
	if err != nil {
		return errors.Wrapf(err, "failed to list tags of vm %s", record.Name)
	}

	statResp, err := svc.StatisticsService().List().Send()
	if err != nil {
		return errors.Wrapf(err, "failed to list statistics of vm %s", record.Name)
	}
	if stats, ok := statResp.Statistics(); ok {
		for _, stat := range stats.Slice() {
			values, ok := stat.Values()
			if !ok || len(values.Slice()) == 0 {
				continue
			}
			if datum, ok := values.Slice()[0].Datum(); ok {
				record.Statistics = append(record.Statistics, Statistic{Name: str(stat.Name()), Datum: datum})
			}
		}
	}

	labelResp, err := svc.AffinityLabelsService().List().Send()
	if err != nil {
		return errors.Wrapf(err, "failed to list affinity labels of vm %s", record.Name)
	}
	if labels, ok := labelResp.Label(); ok {
		for _, label := range labels.Slice() {
			if name, ok := label.Name(); ok {
				record.AffinityLabels = append(record.AffinityLabels, name)
			}
		}
	}

	return nil
}

func listTags(svc *ovirtsdk4.AssignedTagsService) ([]string, error) {
	resp, err := svc.List().Send()
	if err != nil {
		return nil, err
	}
	names := []string{}
	if tags, ok := resp.Tags(); ok {
		for _, tag := range tags.Slice() {
			if name, ok := tag.Name(); ok {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func str(v string, ok bool) string {
	if !ok {
		return ""
	}
	return v
}
