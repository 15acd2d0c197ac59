package match

import (
	"testing"
)

func TestClosest(t *testing.T) {
	known := []string{"Customer", "Items", "Note", "PlacedAt", "TotalCents"}

	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"typo", "Itemss", "Items", true},
		{"case and separator", "placed_at", "PlacedAt", true},
		{"exact", "Note", "Note", true},
		{"no near miss", "Carrier", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Closest(tt.input, known)
			if found != tt.found || got != tt.want {
				t.Errorf("Closest(%q) = (%q, %v), want (%q, %v)", tt.input, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestClosestEmptyCandidates(t *testing.T) {
	if got, found := Closest("anything", nil); found || got != "" {
		t.Errorf("Closest with no candidates = (%q, %v), want (\"\", false)", got, found)
	}
}

func TestClosestPrefersEarlierOnTie(t *testing.T) {
	got, found := Closest("Meta", []string{"Metaa", "aMeta"})
	if !found || got != "Metaa" {
		t.Errorf("Closest tie = (%q, %v), want (\"Metaa\", true)", got, found)
	}
}
