package collector

import (
	"strings"

	"github.com/kubev2v/ovirt-inventory/internal/inventory"
	"github.com/kubev2v/ovirt-inventory/internal/ovirt"
)

// projectAttrs flattens entity attributes into a JSON-safe variable bag.
// Integers and booleans pass through, strings are trimmed, absent values
// stay as explicit nulls, and any other kind is dropped. Keys go through
// the same sanitizer the group names do.
func projectAttrs(s *inventory.Sanitizer, attrs []ovirt.Attribute) inventory.Vars {
	vars := inventory.Vars{}
	for _, attr := range attrs {
		key := s.Safe(attr.Name)
		switch value := attr.Value.(type) {
		case string:
			vars[key] = strings.TrimSpace(value)
		case int64, bool:
			vars[key] = value
		case nil:
			vars[key] = nil
		}
	}
	return vars
}

// nicVars renders reported devices as {name: {mac_address?, ip_addresses?}}.
func nicVars(nics []ovirt.NIC) inventory.Vars {
	vars := inventory.Vars{}
	for _, nic := range nics {
		entry := inventory.Vars{}
		if nic.MAC != "" {
			entry["mac_address"] = nic.MAC
		}
		if len(nic.IPs) > 0 {
			entry["ip_addresses"] = nic.IPs
		}
		vars[nic.Name] = entry
	}
	return vars
}

func statisticVars(stats []ovirt.Statistic) inventory.Vars {
	vars := inventory.Vars{}
	for _, stat := range stats {
		vars[stat.Name] = stat.Datum
	}
	return vars
}

// stringList keeps empty lists rendering as [] rather than null.
func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
