package teams

import "sort"

// Selection is the set of teams, conferences, and divisions a user tracks.
// An empty selection is meaningful ("track nothing") and is the caller's job
// to interpret; TeamIDs simply returns nil for it.
type Selection struct {
	Teams       []string `json:"teams"`
	Conferences []string `json:"conferences"`
	Divisions   []string `json:"divisions"`
}

// IsEmpty reports whether nothing is tracked.
func (s Selection) IsEmpty() bool {
	return len(s.Teams) == 0 && len(s.Conferences) == 0 && len(s.Divisions) == 0
}

// TeamIDs resolves the selection to the union of numeric team ids.
// Unknown names are skipped; the result is sorted for determinism.
func (s Selection) TeamIDs() []int {
	seen := make(map[int]struct{})

	for _, code := range s.Teams {
		if t, ok := ByAbbreviation(code); ok {
			seen[t.ID] = struct{}{}
		}
	}
	for _, conf := range s.Conferences {
		for _, t := range ByConference(conf) {
			seen[t.ID] = struct{}{}
		}
	}
	for _, div := range s.Divisions {
		for _, t := range ByDivision(div) {
			seen[t.ID] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
