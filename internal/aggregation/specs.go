package aggregation

// The three canonical aggregations run on every pipeline pass. They share
// the same record population and differ only in grouping granularity; the
// field-level spec is the most granular and feeds scoring, so it also sums
// the participant counts.

// DivisionSpec aggregates status indicators per division.
var DivisionSpec = GroupSpec{
	Name:   "division",
	Keys:   []Column{ColDivision},
	Values: StatusColumns,
}

// OrgUnitSpec aggregates status indicators per (organization, division, unit).
var OrgUnitSpec = GroupSpec{
	Name:   "org_unit",
	Keys:   []Column{ColOrganization, ColDivision, ColUnit},
	Values: StatusColumns,
}

// FieldSpec aggregates status indicators and participant counts per
// (strategic field, detailed field).
var FieldSpec = GroupSpec{
	Name:   "field",
	Keys:   []Column{ColStrategicField, ColDetailedField},
	Values: append(append([]Column{}, StatusColumns...), RoleColumns...),
}
