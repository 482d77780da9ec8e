package scoring

import (
	"context"
	"log/slog"
	"math"
)

// RawCapability computes the unnormalized participation score from the
// summed participant counts. Each role contributes a dampened logarithm so
// outsized headcounts cannot dominate.
func RawCapability(chairs, editors, contributors int, w RoleWeights) float64 {
	sum := math.Log(1+w.Chair*float64(chairs)) +
		math.Log(1+w.Editor*float64(editors)) +
		math.Log(1+w.Contributor*float64(contributors))
	return sum / capabilityScale
}

// NormalizeCapability rescales each row's raw capability to [0,3] relative
// to the strongest raw value among the non-catch-all detailed fields of the
// same strategic field. Rows are mutated in place.
//
// A catch-all ("other") bucket is excluded from the normalizer but still
// normalized against it, so it alone may score above 3 when its raw value
// exceeds the domain maximum. That is inherited behavior, deliberately left
// unclamped pending a product decision.
//
// A strategic field whose normalizer is unusable (all peers are catch-all
// buckets, or the maximum raw value is zero) is degenerate: its rows are
// flagged, their capability zeroed, and the field is reported back instead
// of letting a non-finite value reach persisted output.
func NormalizeCapability(ctx context.Context, metrics []FieldMetrics, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	byStrategic := make(map[string][]int)
	for i, m := range metrics {
		byStrategic[m.StrategicField] = append(byStrategic[m.StrategicField], i)
	}

	var degenerate []string
	for strategic, indices := range byStrategic {
		maxRaw := 0.0
		hasPeer := false
		for _, idx := range indices {
			if IsOtherBucket(metrics[idx].DetailedField) {
				continue
			}
			hasPeer = true
			if metrics[idx].RawCapability > maxRaw {
				maxRaw = metrics[idx].RawCapability
			}
		}

		if !hasPeer || maxRaw <= 0 || math.IsInf(maxRaw, 0) || math.IsNaN(maxRaw) {
			degenerate = append(degenerate, strategic)
			for _, idx := range indices {
				metrics[idx].Capability = 0
				metrics[idx].Degenerate = true
			}
			logger.WarnContext(ctx, "capability normalizer undefined for strategic field",
				slog.String("strategic_field", strategic),
				slog.Int("detailed_fields", len(indices)),
				slog.Bool("all_other_buckets", !hasPeer))
			continue
		}

		for _, idx := range indices {
			metrics[idx].Capability = metrics[idx].RawCapability / maxRaw * 3
		}
	}

	return degenerate
}
