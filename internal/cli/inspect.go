package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidkit/internal/capability"
	"github.com/aalvaropc/solidkit/internal/infra/catalog"
	"github.com/aalvaropc/solidkit/internal/ports"
)

var probes = []capability.Probe{
	capability.ProbeFor[ports.PaymentMethod](),
	capability.ProbeFor[ports.Notification](),
	capability.ProbeFor[ports.Switchable](),
	capability.ProbeFor[ports.Rechargeable](),
	capability.ProbeFor[ports.Soundable](),
	capability.ProbeFor[ports.Walkable](),
}

type variantInfo struct {
	Kind         string   `json:"kind"`
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities"`
}

func inspectCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [kind]",
		Short: "List variants and the capabilities each one implements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			kind := ""
			if len(args) == 1 {
				kind = strings.ToLower(strings.TrimSpace(args[0]))
			}

			infos := describeVariants(ws.variants, kind)
			if len(infos) == 0 {
				return fmt.Errorf("unknown variant kind %q (expected payment|notification|device|animal)", kind)
			}

			return ws.emit(infos, func(w io.Writer) {
				last := ""
				for _, in := range infos {
					if in.Kind != last {
						fmt.Fprintln(w, ws.theme.Title.Render(in.Kind))
						last = in.Kind
					}
					fmt.Fprintf(w, "  - %-18s %s\n", in.Name, ws.theme.Faint.Render(strings.Join(in.Capabilities, ", ")))
				}
			})
		},
	}
}

// describeVariants builds one instance per registered name and probes it.
// An empty kind selects every catalog.
func describeVariants(v *catalog.Variants, kind string) []variantInfo {
	var out []variantInfo
	if kind == "" || kind == v.Payments.Kind() {
		out = append(out, describe(v.Payments)...)
	}
	if kind == "" || kind == v.Notifications.Kind() {
		out = append(out, describe(v.Notifications)...)
	}
	if kind == "" || kind == v.Devices.Kind() {
		out = append(out, describe(v.Devices)...)
	}
	if kind == "" || kind == v.Animals.Kind() {
		out = append(out, describe(v.Animals)...)
	}
	return out
}

func describe[C any](c *catalog.Catalog[C]) []variantInfo {
	names := c.Names()
	out := make([]variantInfo, 0, len(names))
	for _, n := range names {
		inst, err := c.Lookup(n)
		if err != nil {
			continue
		}
		out = append(out, variantInfo{
			Kind:         c.Kind(),
			Name:         n,
			Capabilities: capability.Supported(inst, probes...),
		})
	}
	return out
}
