package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/releasepilot/core/model"
)

const dateLayout = "2006-01-02"

// WriteJSON writes the release plan to w in indented JSON format.
func WriteJSON(w io.Writer, plan model.ReleasePlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteCSV writes the release plan to w as one row per ticket. Tickets that
// fit no sprint are emitted with an empty sprint column.
func WriteCSV(w io.Writer, plan model.ReleasePlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sprint", "sprint_start", "sprint_end", "ticket_id", "title", "effort_days", "priority", "assignee", "status"}); err != nil {
		return err
	}
	for _, s := range plan.Sprints {
		for _, t := range s.Tickets {
			rec := []string{
				s.Name,
				s.Start.Format(dateLayout),
				s.End.Format(dateLayout),
				t.ID,
				t.Title,
				strconv.Itoa(t.Effort()),
				strconv.Itoa(t.Priority),
				t.AssignedTo,
				t.Status.String(),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	for _, t := range plan.Overflow {
		rec := []string{
			"",
			"",
			"",
			t.ID,
			t.Title,
			strconv.Itoa(t.Effort()),
			strconv.Itoa(t.Priority),
			t.AssignedTo,
			t.Status.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
