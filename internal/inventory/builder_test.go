package inventory_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/ovirt-inventory/internal/inventory"
)

func TestInventory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inventory Suite")
}

func document(inv *inventory.Inventory) map[string]any {
	data, err := json.Marshal(inv)
	Expect(err).To(Succeed())
	var doc map[string]any
	Expect(json.Unmarshal(data, &doc)).To(Succeed())
	return doc
}

func groupHosts(doc map[string]any, group string) []any {
	entry, ok := doc[group].(map[string]any)
	Expect(ok).To(BeTrue(), "group %s missing from document", group)
	hosts, ok := entry["hosts"].([]any)
	Expect(ok).To(BeTrue(), "group %s has no hosts list", group)
	return hosts
}

var _ = Describe("Build", func() {
	var (
		hosts []inventory.Record
		vms   []inventory.Record
		inv   *inventory.Inventory
		doc   map[string]any
	)

	BeforeEach(func() {
		hosts = []inventory.Record{
			{
				Name:           "host-a",
				Vars:           inventory.Vars{"id": "h1"},
				ConnectionHint: "10.0.0.5",
				DataCenter:     "East DC",
				Cluster:        "prod cluster",
			},
			{
				Name:       "host-b",
				Vars:       inventory.Vars{"id": "h2"},
				DataCenter: "East DC",
				Cluster:    "prod cluster",
			},
		}
		vms = []inventory.Record{
			{
				Name:           "web-1",
				Vars:           inventory.Vars{"id": "v1"},
				ConnectionHint: "192.168.1.10",
				DataCenter:     "East DC",
				Cluster:        "prod cluster",
				Tags:           []string{"web", "prod"},
				Host:           "host-a",
			},
			{
				Name:       "db-1",
				Vars:       inventory.Vars{"id": "v2"},
				DataCenter: "East DC",
				Cluster:    "prod cluster",
			},
		}
		inv = inventory.Build(hosts, vms, inventory.NewSanitizer(false))
		doc = document(inv)
	})

	It("carries the fixed top-level groups", func() {
		all, ok := doc["all"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(all["children"]).To(Equal([]any{"ovirt_hosts", "ovirt_vms"}))
		Expect(doc).To(HaveKey("_meta"))
	})

	It("lists hosts then VMs in encounter order", func() {
		Expect(groupHosts(doc, "ovirt_hosts")).To(Equal([]any{"host-a", "host-b"}))
		Expect(groupHosts(doc, "ovirt_vms")).To(Equal([]any{"web-1", "db-1"}))
	})

	It("groups by sanitized data center and cluster names", func() {
		Expect(groupHosts(doc, "ovirt_data_center_East_DC")).To(Equal([]any{"host-a", "host-b", "web-1", "db-1"}))
		Expect(groupHosts(doc, "ovirt_cluster_prod_cluster")).To(Equal([]any{"host-a", "host-b", "web-1", "db-1"}))
	})

	It("puts a multi-tagged VM in every tag group", func() {
		Expect(groupHosts(doc, "ovirt_tag_web")).To(Equal([]any{"web-1"}))
		Expect(groupHosts(doc, "ovirt_tag_prod")).To(Equal([]any{"web-1"}))
	})

	It("groups VMs under their managing host", func() {
		Expect(groupHosts(doc, "ovirt_host_host-a")).To(Equal([]any{"web-1"}))
		Expect(doc).NotTo(HaveKey("ovirt_host_host-b"))
	})

	It("emits the connection hint only when one exists", func() {
		withHint, ok := inv.HostVars("host-a")
		Expect(ok).To(BeTrue())
		Expect(withHint["ansible_host"]).To(Equal("10.0.0.5"))

		withoutHint, ok := inv.HostVars("host-b")
		Expect(ok).To(BeTrue())
		Expect(withoutHint).NotTo(HaveKey("ansible_host"))
	})

	It("nests the variable bag under the ovirt key", func() {
		entry, ok := inv.HostVars("web-1")
		Expect(ok).To(BeTrue())
		Expect(entry["ovirt"]).To(Equal(inventory.Vars{"id": "v1"}))
	})

	It("keeps hostvars and the ovirt_hosts group consistent", func() {
		meta := doc["_meta"].(map[string]any)
		hostvars := meta["hostvars"].(map[string]any)
		for _, name := range groupHosts(doc, "ovirt_hosts") {
			Expect(hostvars).To(HaveKey(name.(string)))
		}
		for _, name := range groupHosts(doc, "ovirt_vms") {
			Expect(hostvars).To(HaveKey(name.(string)))
		}
	})

	It("reports unknown names as absent", func() {
		_, ok := inv.HostVars("missing")
		Expect(ok).To(BeFalse())
	})

	DescribeTable("re-serializes byte-identically",
		func(pretty bool) {
			marshal := func(v any) []byte {
				var data []byte
				var err error
				if pretty {
					data, err = json.MarshalIndent(v, "", "  ")
				} else {
					data, err = json.Marshal(v)
				}
				Expect(err).To(Succeed())
				return data
			}
			first := marshal(inv)
			var parsed map[string]any
			Expect(json.Unmarshal(first, &parsed)).To(Succeed())
			Expect(marshal(parsed)).To(Equal(first))
		},
		Entry("compact", false),
		Entry("pretty", true),
	)
})

var _ = Describe("Inventory", func() {
	It("creates a group on first use and appends afterwards", func() {
		inv := inventory.New()
		inv.AddToGroup("a", "ovirt_tag_x")
		inv.AddToGroup("b", "ovirt_tag_x")
		doc := document(inv)
		Expect(groupHosts(doc, "ovirt_tag_x")).To(Equal([]any{"a", "b"}))
	})

	It("renders empty fixed groups as empty lists", func() {
		doc := document(inventory.New())
		Expect(groupHosts(doc, "ovirt_hosts")).To(BeEmpty())
		Expect(groupHosts(doc, "ovirt_vms")).To(BeEmpty())
	})

	It("overwrites hostvars on name collision", func() {
		inv := inventory.New()
		inv.SetHostVars("dup", inventory.Vars{"ovirt": inventory.Vars{"id": "first"}})
		inv.SetHostVars("dup", inventory.Vars{"ovirt": inventory.Vars{"id": "second"}})
		entry, ok := inv.HostVars("dup")
		Expect(ok).To(BeTrue())
		Expect(entry["ovirt"]).To(Equal(inventory.Vars{"id": "second"}))
	})
})
