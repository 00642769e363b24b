package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidkit/internal/infra/workspace"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create solidkit.yaml and sample scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			written, err := workspace.NewInitializer().Init(root, force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Workspace: %s\n", root)
			if len(written) == 0 {
				fmt.Fprintln(w, "(nothing to write; use --force to overwrite)")
			}
			for _, f := range written {
				fmt.Fprintf(w, "  + %s\n", f)
			}
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
