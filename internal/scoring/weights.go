package scoring

// RoleWeights are the per-role multipliers inside the capability logarithms.
// They encode an assumed importance ordering, chair < editor < contributor:
// a contributor headcount moves the score most, a chair headcount least.
// This is a fixed configuration table, not control flow.
type RoleWeights struct {
	Chair       float64 `json:"chair"`
	Editor      float64 `json:"editor"`
	Contributor float64 `json:"contributor"`
}

// capabilityScale divides the summed logarithms before normalization.
const capabilityScale = 100.0

// DefaultRoleWeights returns the standard weight table.
func DefaultRoleWeights() RoleWeights {
	return RoleWeights{
		Chair:       0.1,
		Editor:      0.2,
		Contributor: 0.7,
	}
}

// IsValid reports whether every weight is positive and the importance
// ordering holds.
func (w RoleWeights) IsValid() bool {
	return w.Chair > 0 && w.Editor > 0 && w.Contributor > 0 &&
		w.Chair <= w.Editor && w.Editor <= w.Contributor
}
