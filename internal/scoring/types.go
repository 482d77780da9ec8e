package scoring

import "strings"

// FieldMetrics holds the extended field-level aggregate row with its derived
// scores. StrategicField is the coarse taxonomy level; DetailedField is the
// fine level that gets scored.
type FieldMetrics struct {
	StrategicField string `json:"strategic_field"`
	DetailedField  string `json:"detailed_field"`

	// Stage indicator sums
	Planned   int `json:"planned"`
	Proposed  int `json:"proposed"`
	InDev     int `json:"in_dev"`
	Completed int `json:"completed"`
	Stopped   int `json:"stopped"`

	// Participant count sums
	Contributors int `json:"contributors"`
	Editors      int `json:"editors"`
	Chairs       int `json:"chairs"`

	// Derived scores
	Total         int     `json:"total"`
	Stage         float64 `json:"stage"`
	RawCapability float64 `json:"raw_capability"`
	Capability    float64 `json:"capability"`

	// Degenerate marks rows whose strategic field had no usable capability
	// normalizer; their Capability is zeroed instead of going non-finite.
	Degenerate bool `json:"degenerate,omitempty"`
}

// otherBucketTokens mark a detailed field as a catch-all bucket excluded
// from the capability normalizer. The export uses the Korean form; the
// ASCII form appears in translated sheets.
var otherBucketTokens = []string{"기타", "other"}

// IsOtherBucket reports whether a detailed-field name is a catch-all bucket.
func IsOtherBucket(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range otherBucketTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
