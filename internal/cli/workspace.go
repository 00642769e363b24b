package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/infra/catalog"
	"github.com/aalvaropc/solidkit/internal/infra/logger"
	"github.com/aalvaropc/solidkit/internal/infra/reportstore"
	"github.com/aalvaropc/solidkit/internal/infra/scenariofile"
	"github.com/aalvaropc/solidkit/internal/infra/settings"
)

type workspaceCtx struct {
	root   string
	cfg    domain.Config
	format string
	out    io.Writer
	theme  theme

	variants  *catalog.Variants
	scenarios *scenariofile.Loader
	store     *reportstore.JSONStore

	cleanup func() error
}

func loadWorkspace(cmd *cobra.Command, g *globalFlags) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := settings.Load(root, g.config)
	if err != nil {
		return nil, err
	}
	if g.debug {
		cfg.Logging.Debug = true
	}

	format := strings.ToLower(strings.TrimSpace(g.format))
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "pretty" && format != "json" {
		return nil, fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Dir:   cfg.Logging.Dir,
		Debug: cfg.Logging.Debug,
	})

	out := cmd.OutOrStdout()

	// JSON output must stay parseable, so variant lines are dropped.
	variantOut := out
	if format == "json" {
		variantOut = io.Discard
	}

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		format:    format,
		out:       out,
		theme:     defaultTheme(),
		variants:  catalog.Default(variantOut),
		scenarios: scenariofile.NewLoader(scenariofile.WithScenariosDir(cfg.Scenarios.Dir)),
		store:     reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true)),
		cleanup:   cleanup,
	}, nil
}

func (ws *workspaceCtx) close() {
	if ws != nil && ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

// resolveWorkspaceRoot prefers the flag, then the nearest solidkit.yaml,
// then the working directory. A workspace file is optional.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if root, err := settings.FindRoot(wd); err == nil {
		return root, nil
	}
	return filepath.Abs(wd)
}
