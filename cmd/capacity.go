package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show the per-sprint capacity breakdown",
	RunE:  runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	sprints, err := svc.Planner.Sprints()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	total := 0
	for _, s := range sprints {
		fmt.Fprintf(out, "%s (%s → %s): %d working days, %d PTO, %d capacity\n",
			s.Name, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"),
			s.WorkingDays, s.PTODays, s.CapacityDays)
		total += s.CapacityDays
	}
	fmt.Fprintf(out, "total capacity: %d person-days\n", total)
	return nil
}
