package bench_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/dwr-research/internal/bench"
)

func sampleEntries() []bench.Entry {
	return []bench.Entry{
		{
			ID:        "11111111-1111-1111-1111-111111111111",
			Scenario:  "straits",
			Solver:    "A*+misplaced",
			Found:     true,
			Valid:     true,
			PlanLen:   3,
			Expanded:  5,
			Generated: 9,
			MaxOpen:   4,
			Duration:  12 * time.Millisecond,
		},
		{
			ID:       "22222222-2222-2222-2222-222222222222",
			Scenario: "island",
			Solver:   "BFS",
			Duration: 3 * time.Millisecond,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"id", "scenario", "solver", "found", "valid",
		"plan_len", "expanded", "generated", "max_open", "duration_ms", "error",
	}, records[0])
	assert.Equal(t, []string{
		"11111111-1111-1111-1111-111111111111", "straits", "A*+misplaced",
		"true", "true", "3", "5", "9", "4", "12", "",
	}, records[1])
	assert.Equal(t, "false", records[2][3])
	assert.Equal(t, "0", records[2][5])
}

func TestSummaryTable(t *testing.T) {
	entries := sampleEntries()
	entries = append(entries, bench.Entry{
		ID:       "33333333-3333-3333-3333-333333333333",
		Scenario: "straits",
		Solver:   "GBFS+goalcount",
		Found:    true,
		Valid:    false,
		PlanLen:  4,
		Err:      "invalid plan: step 2",
	})

	table := bench.SummaryTable(entries)
	assert.Contains(t, table, "scenario")
	assert.Contains(t, table, "A*+misplaced")
	assert.Contains(t, table, "ok")
	assert.Contains(t, table, "no plan")
	assert.Contains(t, table, "INVALID")
}
