package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kubev2v/ovirt-inventory/internal/collector"
	"github.com/kubev2v/ovirt-inventory/internal/config"
	"github.com/kubev2v/ovirt-inventory/internal/inventory"
	"github.com/kubev2v/ovirt-inventory/internal/ovirt"
)

type InventoryOptions struct {
	List   bool
	Host   string
	Pretty bool

	connect func(config.OvirtSettings) (ovirt.Client, error)
	stdout  io.Writer
}

func NewInventoryOptions() *InventoryOptions {
	return &InventoryOptions{
		List:    true,
		connect: ovirt.Connect,
		stdout:  os.Stdout,
	}
}

func NewCmdInventory() *cobra.Command {
	o := NewInventoryOptions()
	cmd := &cobra.Command{
		Use:   "ovirt-inventory",
		Short: "Produce an Ansible inventory document from an oVirt 4 engine",
		Example: "ovirt-inventory --list --pretty\n" +
			"  ovirt-inventory --host webserver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InventoryOptions) Bind(fs *pflag.FlagSet) {
	fs.BoolVar(&o.List, "list", true, "list the full inventory (default mode)")
	fs.StringVar(&o.Host, "host", "", "emit the variables of a single host or VM")
	fs.BoolVar(&o.Pretty, "pretty", false, "indent and sort the JSON output")
}

// Run is one synchronous pass: resolve settings, open the engine session,
// collect, build the document, close the session, print. The session is
// closed exactly once, error or not, before anything reaches stdout.
func (o *InventoryOptions) Run(ctx context.Context, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	sanitizer := inventory.NewSanitizer(settings.Format.ReplaceDashInGroups)

	zap.S().Infof("connecting to %s", settings.Ovirt.URL)
	client, err := o.connect(settings.Ovirt)
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			_ = client.Close()
		}
	}()

	hosts, vms, err := collector.New(client, sanitizer).Collect()
	if err != nil {
		return err
	}
	inv := inventory.Build(hosts, vms, sanitizer)

	closed = true
	if err := client.Close(); err != nil {
		zap.S().Warnf("failed to close engine session: %v", err)
	}

	var payload any = inv
	if o.Host != "" {
		vars, ok := inv.HostVars(o.Host)
		if !ok {
			return fmt.Errorf("host %q not found in inventory", o.Host)
		}
		payload = vars
	}

	out, err := o.marshal(payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.stdout, string(out))
	return nil
}

func (o *InventoryOptions) marshal(payload any) ([]byte, error) {
	if o.Pretty {
		return json.MarshalIndent(payload, "", "  ")
	}
	return json.Marshal(payload)
}
