package config

// Column headers expected in the source workbook. The header names are part
// of the input contract: a missing required column aborts the run before any
// derivation.
const (
	ColOrganization   = "수행기관"
	ColDivision       = "본부"
	ColUnit           = "부서"
	ColStrategicField = "중점기술"
	ColDetailedField  = "세부기술"
	ColStatus         = "표준화단계"
	ColSequence       = "차수"
	ColContributors   = "기고자"
	ColEditors        = "에디터"
	ColChairs         = "ETRI 의장단"
	ColStartYear      = "표준화시작연도"
	ColEndYear        = "표준화종료연도"
)

// RequiredColumns lists every header the parser must find.
var RequiredColumns = []string{
	ColOrganization,
	ColDivision,
	ColUnit,
	ColStrategicField,
	ColDetailedField,
	ColStatus,
	ColSequence,
	ColContributors,
	ColEditors,
	ColChairs,
	ColStartYear,
	ColEndYear,
}

// Well-known report file names written into the reports directory.
const (
	CleanedReportCSV        = "standards_cleaned.csv"
	DivisionAggregateCSV    = "agg_division.csv"
	OrgUnitAggregateCSV     = "agg_org_unit.csv"
	FieldAggregateCSV       = "agg_field.csv"
	ScoredFieldsCSV         = "field_scores.csv"
	RosterByFieldCSV        = "chairs_by_field.csv"
	RosterByOrganizationCSV = "chairs_by_org.csv"
	RunSummaryCSV           = "run_summary.csv"
)
