package scoring

import (
	"context"
	"fmt"
	"log/slog"

	"stanpulse/internal/aggregation"
)

// Scorer turns the field-level aggregate into scored metrics.
type Scorer struct {
	weights RoleWeights
	logger  *slog.Logger
}

// NewScorer creates a scorer with the given role weights.
func NewScorer(weights RoleWeights, logger *slog.Logger) (*Scorer, error) {
	if !weights.IsValid() {
		return nil, fmt.Errorf("invalid role weights: chair=%.3f editor=%.3f contributor=%.3f",
			weights.Chair, weights.Editor, weights.Contributor)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scorer{weights: weights, logger: logger}, nil
}

// Score extends every row of the field aggregate with total, stage, and
// capability scores. The returned degenerate list names strategic fields
// whose capability normalizer was undefined; their rows carry a zeroed,
// flagged capability rather than aborting the run.
func (s *Scorer) Score(ctx context.Context, agg *aggregation.Aggregate) ([]FieldMetrics, []string, error) {
	if len(agg.Spec.Keys) != 2 {
		return nil, nil, fmt.Errorf("scoring requires the (strategic, detailed) field aggregate, got spec %q", agg.Spec.Name)
	}

	metrics := make([]FieldMetrics, 0, len(agg.Rows))
	for _, row := range agg.Rows {
		sum := func(col aggregation.Column) (int, error) {
			v, ok := agg.Sum(row, col)
			if !ok {
				return 0, fmt.Errorf("aggregate %q is missing column %q", agg.Spec.Name, col)
			}
			return v, nil
		}

		var m FieldMetrics
		var err error
		m.StrategicField, m.DetailedField = row.Keys[0], row.Keys[1]
		if m.Planned, err = sum(aggregation.ColPlanned); err != nil {
			return nil, nil, err
		}
		if m.Proposed, err = sum(aggregation.ColProposed); err != nil {
			return nil, nil, err
		}
		if m.InDev, err = sum(aggregation.ColInDev); err != nil {
			return nil, nil, err
		}
		if m.Completed, err = sum(aggregation.ColCompleted); err != nil {
			return nil, nil, err
		}
		if m.Stopped, err = sum(aggregation.ColStopped); err != nil {
			return nil, nil, err
		}
		if m.Contributors, err = sum(aggregation.ColContributorCount); err != nil {
			return nil, nil, err
		}
		if m.Editors, err = sum(aggregation.ColEditorCount); err != nil {
			return nil, nil, err
		}
		if m.Chairs, err = sum(aggregation.ColChairCount); err != nil {
			return nil, nil, err
		}

		// Stopped items are tracked but excluded from the stage total.
		m.Total = m.Planned + m.Proposed + m.InDev + m.Completed
		m.Stage = DevelopmentStage(m.Planned, m.Proposed, m.InDev, m.Completed)
		m.RawCapability = RawCapability(m.Chairs, m.Editors, m.Contributors, s.weights)

		metrics = append(metrics, m)
	}

	degenerate := NormalizeCapability(ctx, metrics, s.logger)

	s.logger.InfoContext(ctx, "field scoring completed",
		slog.Int("fields_scored", len(metrics)),
		slog.Int("degenerate_strategic_fields", len(degenerate)))

	return metrics, degenerate, nil
}
