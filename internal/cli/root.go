package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

type globalFlags struct {
	workspace string
	config    string
	format    string
	debug     bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "solidkit",
		Short:         "solidkit: drive payment, notification, device, animal and registration variants through narrow capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from solidkit.yaml)")
	pf.StringVar(&g.config, "config", "", "Config file (default <workspace>/solidkit.yaml)")
	pf.StringVar(&g.format, "format", "", "Output format: pretty|json (default from config)")
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .solidkit/logs/solidkit.log")

	cmd.AddCommand(
		payCmd(g),
		notifyCmd(g),
		deviceCmd(g),
		animalCmd(g),
		registerCmd(g),
		inspectCmd(g),
		runCmd(g),
		scenariosCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
