package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/releasepilot/app"
	"github.com/kilianp07/releasepilot/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "releasepilot",
	Short: "Capacity-constrained release planning",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(cmd, res)
	return nil
}

func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg)
}

func printSummary(cmd *cobra.Command, res app.Result) {
	out := cmd.OutOrStdout()
	plan := res.Plan
	fmt.Fprintf(out, "Release %s: %d sprints, %d/%d days booked, %.1f%% feasible\n",
		plan.Release, len(plan.Sprints), plan.TotalBacklogDays, plan.TotalCapacityDays, plan.FeasiblePercent)
	for _, s := range plan.Sprints {
		fmt.Fprintf(out, "  %s (%s → %s): capacity %d, assigned %d, %d tickets\n",
			s.Name, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"),
			s.CapacityDays, s.AssignedDays(), len(s.Tickets))
	}
	if len(plan.Overflow) > 0 {
		fmt.Fprintf(out, "  overflow: %d tickets\n", len(plan.Overflow))
	}
}
