package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Analyze ticket dependencies",
	RunE:  runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Compute()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(res.Analyses))
	for id := range res.Analyses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := cmd.OutOrStdout()
	for _, id := range ids {
		a := res.Analyses[id]
		state := "ready"
		switch {
		case a.InCycle:
			state = "cycle"
		case a.Blocked:
			state = "blocked"
		}
		fmt.Fprintf(out, "%s: %s", id, state)
		if a.BlocksCount > 0 {
			fmt.Fprintf(out, ", blocks %d", a.BlocksCount)
		}
		if len(a.MissingRefs) > 0 {
			fmt.Fprintf(out, ", missing refs: %s", strings.Join(a.MissingRefs, ", "))
		}
		fmt.Fprintln(out)
	}
	return nil
}
