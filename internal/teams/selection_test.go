package teams

import "testing"

func TestSelectionIsEmpty(t *testing.T) {
	if !(Selection{}).IsEmpty() {
		t.Fatalf("zero selection should be empty")
	}
	if (Selection{Divisions: []string{"Pacific"}}).IsEmpty() {
		t.Fatalf("selection with a division is not empty")
	}
}

func TestSelectionTeamIDsUnion(t *testing.T) {
	sel := Selection{
		Teams:     []string{"LAL", "BOS"},
		Divisions: []string{"Pacific"}, // includes LAL again
	}

	ids := sel.TeamIDs()
	if len(ids) != 6 {
		t.Fatalf("expected 5 pacific teams + BOS = 6 ids, got %d: %v", len(ids), ids)
	}

	seen := make(map[int]struct{})
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d in %v", id, ids)
		}
		seen[id] = struct{}{}
	}
}

func TestSelectionTeamIDsSkipsUnknown(t *testing.T) {
	sel := Selection{Teams: []string{"XXX"}, Conferences: []string{"Central"}}
	if ids := sel.TeamIDs(); ids != nil {
		t.Fatalf("unknown entries should resolve to no ids, got %v", ids)
	}
}

func TestSelectionTeamIDsEmpty(t *testing.T) {
	if ids := (Selection{}).TeamIDs(); ids != nil {
		t.Fatalf("empty selection should yield nil, got %v", ids)
	}
}
