package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/elektrokombinacija/dwr-research/internal/render"
)

var csvHeader = []string{
	"id", "scenario", "solver", "found", "valid",
	"plan_len", "expanded", "generated", "max_open", "duration_ms", "error",
}

// WriteCSV writes the grid results as one record per run.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench csv: %w", err)
	}
	for _, e := range entries {
		rec := []string{
			e.ID,
			e.Scenario,
			e.Solver,
			strconv.FormatBool(e.Found),
			strconv.FormatBool(e.Valid),
			strconv.Itoa(e.PlanLen),
			strconv.Itoa(e.Expanded),
			strconv.Itoa(e.Generated),
			strconv.Itoa(e.MaxOpen),
			strconv.FormatInt(e.Duration.Milliseconds(), 10),
			e.Err,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("bench csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench csv: %w", err)
	}
	return nil
}

// SummaryTable renders the grid for the terminal, one row per run in grid
// order.
func SummaryTable(entries []Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		outcome := "no plan"
		switch {
		case e.Found && e.Valid:
			outcome = "ok"
		case e.Found:
			outcome = "INVALID"
		}
		rows = append(rows, []string{
			e.Scenario,
			e.Solver,
			outcome,
			strconv.Itoa(e.PlanLen),
			strconv.Itoa(e.Expanded),
			strconv.FormatInt(e.Duration.Milliseconds(), 10),
		})
	}
	return render.Table([]string{"scenario", "solver", "result", "len", "expanded", "ms"}, rows)
}
