package scoring

import (
	"fmt"
	"sort"
	"strconv"
)

// CSVHeaders returns the header row for the scored table. The first four
// columns are the contract with the plotting collaborator; the component
// sums follow for inspection.
func CSVHeaders() []string {
	return []string{
		"detailed_field",
		"strategic_field",
		"stage",
		"capability",
		"total",
		"planned",
		"proposed",
		"in_dev",
		"completed",
		"stopped",
		"contributors",
		"editors",
		"chairs",
		"degenerate",
	}
}

// CSVRecords converts scored metrics to CSV records matching CSVHeaders,
// sorted by (strategic field, detailed field) for stable output.
func CSVRecords(metrics []FieldMetrics) [][]string {
	sorted := make([]FieldMetrics, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StrategicField != sorted[j].StrategicField {
			return sorted[i].StrategicField < sorted[j].StrategicField
		}
		return sorted[i].DetailedField < sorted[j].DetailedField
	})

	records := make([][]string, 0, len(sorted))
	for _, m := range sorted {
		records = append(records, []string{
			m.DetailedField,
			m.StrategicField,
			formatScore(m.Stage),
			formatScore(m.Capability),
			strconv.Itoa(m.Total),
			strconv.Itoa(m.Planned),
			strconv.Itoa(m.Proposed),
			strconv.Itoa(m.InDev),
			strconv.Itoa(m.Completed),
			strconv.Itoa(m.Stopped),
			strconv.Itoa(m.Contributors),
			strconv.Itoa(m.Editors),
			strconv.Itoa(m.Chairs),
			strconv.FormatBool(m.Degenerate),
		})
	}
	return records
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
