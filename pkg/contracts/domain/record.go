package domain

// StatusTag identifies one bucket of the standardization lifecycle.
type StatusTag string

const (
	StatusPlanned   StatusTag = "planned"
	StatusProposed  StatusTag = "proposed"
	StatusInDev     StatusTag = "in_dev"
	StatusCompleted StatusTag = "completed"
	StatusStopped   StatusTag = "stopped"
)

// StatusMapping binds one categorical status label to its indicator tag.
type StatusMapping struct {
	Label string    `json:"label"`
	Tag   StatusTag `json:"tag"`
}

// StatusMappings is the fixed, ordered label-to-tag table for the status
// column. Order matters: indicator columns are emitted and summed in this
// order everywhere in the pipeline. A label outside this table maps to no
// indicator at all, which is a data-quality exclusion and not an error.
var StatusMappings = []StatusMapping{
	{Label: "계획", Tag: StatusPlanned},
	{Label: "제안", Tag: StatusProposed},
	{Label: "개발중", Tag: StatusInDev},
	{Label: "제정", Tag: StatusCompleted},
	{Label: "중단", Tag: StatusStopped},
}

// StageTags are the four lifecycle buckets that participate in stage scoring.
// StatusStopped is tracked in aggregates but excluded from scoring.
var StageTags = []StatusTag{StatusPlanned, StatusProposed, StatusInDev, StatusCompleted}

// SequenceNew is the sentinel accepted in the sequence column for items that
// have no round number yet. Both the Korean export form and the ASCII form
// appear in the wild.
var SequenceNew = []string{"신규", "new"}

// ActivityRecord is one cleaned row of the standardization-activity export,
// together with the fields derived from it by the processing pipeline.
// Raw cell values are kept as strings; numeric interpretation happens in the
// derivation steps so malformed cells can be excluded instead of failing.
type ActivityRecord struct {
	// Source columns
	Organization   string `json:"organization"`
	Division       string `json:"division"`
	Unit           string `json:"unit"`
	StrategicField string `json:"strategic_field"`
	DetailedField  string `json:"detailed_field"`
	Status         string `json:"status"`
	Sequence       string `json:"sequence"`
	Contributors   string `json:"contributors"`
	Editors        string `json:"editors"`
	Chairs         string `json:"chairs"`
	StartYear      string `json:"start_year"`
	EndYear        string `json:"end_year"`

	// Derived columns
	ContributorCount int               `json:"contributor_count"`
	EditorCount      int               `json:"editor_count"`
	ChairCount       int               `json:"chair_count"`
	StatusIndicators map[StatusTag]int `json:"status_indicators"`
}

// Indicator returns the binary indicator for one status tag. Records that
// never went through the status expander report zero for every tag.
func (r ActivityRecord) Indicator(tag StatusTag) int {
	if r.StatusIndicators == nil {
		return 0
	}
	return r.StatusIndicators[tag]
}

// RoleCount returns the derived participant count for a role column.
func (r ActivityRecord) RoleCount(role RoleField) int {
	switch role {
	case RoleContributor:
		return r.ContributorCount
	case RoleEditor:
		return r.EditorCount
	case RoleChair:
		return r.ChairCount
	default:
		return 0
	}
}

// RoleField identifies one of the three free-text participant columns.
type RoleField string

const (
	RoleContributor RoleField = "contributor"
	RoleEditor      RoleField = "editor"
	RoleChair       RoleField = "chair"
)

// RoleFields lists the participant columns in their canonical order.
var RoleFields = []RoleField{RoleContributor, RoleEditor, RoleChair}
