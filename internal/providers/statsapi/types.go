package statsapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// gameFinderResponse is the tabular stats payload: named result sets of
// column headers plus untyped row values.
type gameFinderResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string              `json:"name"`
	Headers []string            `json:"headers"`
	RowSet  [][]json.RawMessage `json:"rowSet"`
}

// columnIndex maps header names to their row positions.
func (rs resultSet) columnIndex() map[string]int {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return idx
}

// stringField decodes a row cell as a string. Missing columns and JSON nulls
// come back as "".
func stringField(idx map[string]int, row []json.RawMessage, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err == nil {
		return s
	}
	// Numeric cells render through their literal form.
	raw := strings.TrimSpace(string(row[i]))
	if raw == "null" {
		return ""
	}
	return raw
}

// intField decodes a row cell as an integer, tolerating float and string
// encodings. Nulls and missing columns report ok=false.
func intField(idx map[string]int, row []json.RawMessage, col string) (int, bool) {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return 0, false
	}
	raw := strings.TrimSpace(string(row[i]))
	if raw == "" || raw == "null" {
		return 0, false
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// findResultSet returns the first result set, which carries the game rows.
func (r gameFinderResponse) findResultSet() (resultSet, error) {
	if len(r.ResultSets) == 0 {
		return resultSet{}, fmt.Errorf("statsapi: response has no result sets")
	}
	return r.ResultSets[0], nil
}
