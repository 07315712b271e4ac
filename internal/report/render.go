package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteText writes the report as aligned plain-text tables.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "WORKOUT\tDATE\tMIN\tWEEK#\tXP\tINTENSITY")
	for _, s := range r.Workouts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			orDash(s.Name), orDash(s.Date), s.DurationMinutes, s.SessionsThisWeek, s.XP, s.Intensity)
	}
	fmt.Fprintln(tw)

	writeEntities(tw, "SKILL", r.Skills)
	writeEntities(tw, "CHARACTERISTIC", r.Characteristics)

	fmt.Fprintln(tw, "METRIC\tXP\tLEVEL\tRADAR\tSOURCES")
	for i, m := range r.Metrics {
		radar := 0
		if i < len(r.Radar) {
			radar = r.Radar[i].Value
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", m.Name, m.XP, m.Level, radar, len(m.Contributions))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Balance score:\t%d/100\n", r.BalanceScore)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeEntities(tw *tabwriter.Writer, heading string, entities []EntityProgress) {
	if len(entities) == 0 {
		return
	}
	fmt.Fprintf(tw, "%s\tXP\tLEVEL\tPROGRESS\tSTREAK\tBEST\tSTATE\tDAILY XP\n", heading)
	for _, e := range entities {
		streak, best, state, daily := "-", "-", "-", "-"
		if c := e.Consistency; c != nil {
			streak = fmt.Sprint(c.CurrentStreak)
			best = fmt.Sprint(c.BestStreak)
			state = string(c.ConsistencyState)
		}
		if e.DailyXP != nil {
			daily = fmt.Sprint(*e.DailyXP)
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%d\t%.0f%%\t%s\t%s\t%s\t%s\n",
			e.Name, e.XP, e.Progress.Level, e.Progress.Percent, streak, best, state, daily)
	}
	fmt.Fprintln(tw)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
