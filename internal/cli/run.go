package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidkit/internal/domain"
	"github.com/aalvaropc/solidkit/internal/usecase"
)

func runCmd(g *globalFlags) *cobra.Command {
	var scenario string
	var noSave bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario file and check each step's result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			path, err := ws.scenarios.Resolve(ws.root, scenario)
			if err != nil {
				return err
			}

			register, err := ws.registerUser("email")
			if err != nil {
				return err
			}

			opts := []usecase.ScenarioOption{}
			if !noSave {
				opts = append(opts, usecase.WithReportStore(ws.store))
			}
			uc := usecase.NewRunScenario(ws.scenarios, ws.variants, register, opts...)

			report, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				// The report is complete when only saving failed.
				if len(report.Steps) > 0 {
					_ = printReport(ws.out, report, ws.format, ws.theme)
				}
				return err
			}

			if err := printReport(ws.out, report, ws.format, ws.theme); err != nil {
				return err
			}

			if fails := report.Failures(); fails > 0 {
				return fmt.Errorf("scenario failed (%d failed step(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&scenario, "file", "f", "", "Scenario name or path (required)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	_ = c.MarkFlagRequired("file")
	return c
}

func scenariosCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List scenarios in the workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd, g)
			if err != nil {
				return err
			}
			defer ws.close()

			refs, err := ws.scenarios.ListScenarios(ws.root)
			if err != nil {
				return err
			}

			return ws.emit(refs, func(w io.Writer) {
				if len(refs) == 0 {
					fmt.Fprintln(w, "(no scenarios found)")
					return
				}
				fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
				for _, r := range refs {
					rel, _ := filepath.Rel(ws.root, r.Path)
					fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
				}
			})
		},
	}
}

func printReport(w io.Writer, report domain.Report, format string, th theme) error {
	return writeFormatted(w, format, report, func(w io.Writer) {
		printPrettyReport(w, report, th)
	})
}

func printPrettyReport(w io.Writer, report domain.Report, th theme) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "%s %s\n", th.Title.Render("Scenario:"), report.ScenarioName)
	fmt.Fprintf(w, "Started:  %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if report.ID != "" {
		fmt.Fprintf(w, "Report:   %s\n", report.ID)
	}
	fmt.Fprintln(w)

	for _, s := range report.Steps {
		status := th.OK.Render("OK")
		if s.Failed() {
			status = th.Fail.Render("FAIL")
		}

		label := string(s.Kind)
		if s.Variant != "" {
			label += "/" + s.Variant
		}
		fmt.Fprintf(w, "- [%s] %s (%s)\n", status, s.Name, label)

		if s.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", s.Error.Message, s.Error.Kind)
		}

		if len(s.Checks) > 0 {
			pass, fail := countCheckPassFail(s.Checks)
			fmt.Fprintf(w, "  checks: %d pass / %d fail\n", pass, fail)
			for _, c := range s.Checks {
				fmt.Fprintf(w, "    %s %s: %s\n", th.mark(c.Passed), c.Name, c.Message)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d step(s), %d failed\n", len(report.Steps), report.Failures())
}

func countCheckPassFail(in []domain.CheckResult) (pass int, fail int) {
	for _, c := range in {
		if c.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
