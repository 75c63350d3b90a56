package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show per-member utilization and risk",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Compute()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, ins := range res.Insights {
		fmt.Fprintf(out, "%s: %.1f days/sprint over %d sprints, %.1f%% utilization, risk %s\n",
			ins.Member, ins.AvgAssignedDays, ins.Sprints, ins.AvgUtilization, ins.Risk)
	}
	// The conflict map is keyed by ticket ID; each pair appears mirrored on
	// both tickets, so the ordered-ID filter prints it once.
	ticketIDs := make([]string, 0, len(res.Conflicts))
	for id := range res.Conflicts {
		ticketIDs = append(ticketIDs, id)
	}
	sort.Strings(ticketIDs)
	for _, ticketID := range ticketIDs {
		for _, c := range res.Conflicts[ticketID] {
			if c.TicketID < c.OtherID {
				fmt.Fprintf(out, "conflict: %s holds %s and %s for %d overlapping days\n",
					c.Assignee, c.TicketID, c.OtherID, c.OverlapDays)
			}
		}
	}
	return nil
}
