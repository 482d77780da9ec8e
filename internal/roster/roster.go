package roster

import (
	"sort"
	"strconv"
	"strings"

	"stanpulse/pkg/contracts/domain"
)

// Entry is the chair roster for one grouping key: the concatenated raw chair
// text, the deduplicated sorted member tokens, and their count.
type Entry struct {
	Key     string   `json:"key"`
	RawText string   `json:"raw_text"`
	Members []string `json:"members"`
	Count   int      `json:"count"`
}

// KeyFunc selects the grouping key for a record.
type KeyFunc func(domain.ActivityRecord) string

// ByStrategicField groups rosters by the strategic field column.
func ByStrategicField(r domain.ActivityRecord) string { return r.StrategicField }

// ByOrganization groups rosters by the organization column.
func ByOrganization(r domain.ActivityRecord) string { return r.Organization }

// Build assembles rosters from the cleaned table. Rows whose trimmed chair
// text is empty, "0", or "-" are excluded; the surviving raw texts of each
// group are joined with ", " before token extraction so the roster is a true
// set over the whole group. Entries are sorted by key.
func Build(records []domain.ActivityRecord, key KeyFunc, extractor *Extractor) []Entry {
	texts := make(map[string][]string)
	for _, rec := range records {
		chairs := strings.TrimSpace(rec.Chairs)
		if chairs == "" || chairs == "0" || chairs == "-" {
			continue
		}
		k := key(rec)
		texts[k] = append(texts[k], chairs)
	}

	entries := make([]Entry, 0, len(texts))
	for k, groupTexts := range texts {
		raw := strings.Join(groupTexts, ", ")
		members := extractor.Tokens(raw)
		entries = append(entries, Entry{
			Key:     k,
			RawText: raw,
			Members: members,
			Count:   len(members),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// CSVHeaders returns the header row for a persisted roster table.
func CSVHeaders(keyName string) []string {
	return []string{keyName, "raw_text", "roster", "count"}
}

// CSVRecords converts roster entries to CSV records matching CSVHeaders.
func CSVRecords(entries []Entry) [][]string {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.Key,
			e.RawText,
			strings.Join(e.Members, ", "),
			strconv.Itoa(e.Count),
		})
	}
	return records
}
