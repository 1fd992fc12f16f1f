package ovirt

import ovirtsdk4 "github.com/ovirt/go-ovirt"

// Explicit field tables for each entity kind. The engine models most entity
// fields as nested objects or enums; only the scalar ones listed here reach
// the generic variable bag. Absent fields are kept as explicit nulls.

func dataCenterAttrs(dc *ovirtsdk4.DataCenter) []Attribute {
	return []Attribute{
		{Name: "id", Value: strAttr(dc.Id())},
		{Name: "name", Value: strAttr(dc.Name())},
		{Name: "comment", Value: strAttr(dc.Comment())},
		{Name: "description", Value: strAttr(dc.Description())},
		{Name: "local", Value: boolAttr(dc.Local())},
	}
}

func clusterAttrs(cl *ovirtsdk4.Cluster) []Attribute {
	return []Attribute{
		{Name: "id", Value: strAttr(cl.Id())},
		{Name: "name", Value: strAttr(cl.Name())},
		{Name: "comment", Value: strAttr(cl.Comment())},
		{Name: "description", Value: strAttr(cl.Description())},
		{Name: "ballooning_enabled", Value: boolAttr(cl.BallooningEnabled())},
		{Name: "gluster_service", Value: boolAttr(cl.GlusterService())},
		{Name: "ha_reservation", Value: boolAttr(cl.HaReservation())},
		{Name: "threads_as_cores", Value: boolAttr(cl.ThreadsAsCores())},
		{Name: "trusted_service", Value: boolAttr(cl.TrustedService())},
		{Name: "tunnel_migration", Value: boolAttr(cl.TunnelMigration())},
		{Name: "virt_service", Value: boolAttr(cl.VirtService())},
	}
}

func hostAttrs(h *ovirtsdk4.Host) []Attribute {
	return []Attribute{
		{Name: "id", Value: strAttr(h.Id())},
		{Name: "name", Value: strAttr(h.Name())},
		{Name: "address", Value: strAttr(h.Address())},
		{Name: "comment", Value: strAttr(h.Comment())},
		{Name: "description", Value: strAttr(h.Description())},
		{Name: "port", Value: intAttr(h.Port())},
		{Name: "memory", Value: intAttr(h.Memory())},
		{Name: "max_scheduling_memory", Value: intAttr(h.MaxSchedulingMemory())},
	}
}

func vmAttrs(vm *ovirtsdk4.Vm) []Attribute {
	return []Attribute{
		{Name: "id", Value: strAttr(vm.Id())},
		{Name: "name", Value: strAttr(vm.Name())},
		{Name: "comment", Value: strAttr(vm.Comment())},
		{Name: "description", Value: strAttr(vm.Description())},
		{Name: "fqdn", Value: strAttr(vm.Fqdn())},
		{Name: "memory", Value: intAttr(vm.Memory())},
		{Name: "cpu_shares", Value: intAttr(vm.CpuShares())},
		{Name: "delete_protected", Value: boolAttr(vm.DeleteProtected())},
		{Name: "run_once", Value: boolAttr(vm.RunOnce())},
		{Name: "stateless", Value: boolAttr(vm.Stateless())},
		{Name: "start_paused", Value: boolAttr(vm.StartPaused())},
		{Name: "use_latest_template_version", Value: boolAttr(vm.UseLatestTemplateVersion())},
	}
}

func strAttr(v string, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func intAttr(v int64, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func boolAttr(v bool, ok bool) any {
	if !ok {
		return nil
	}
	return v
}
