package engineerr

import "testing"

func TestSuggestFindsCloseMatches(t *testing.T) {
	known := []string{"charizard", "incineroar", "greninja", "landorus-therian"}
	got := Suggest("charzard", known, 3, 0.6)
	if len(got) == 0 || got[0] != "charizard" {
		t.Fatalf("Suggest(charzard) = %v, want [charizard, ...]", got)
	}
}

func TestSuggestRespectsCutoff(t *testing.T) {
	known := []string{"charizard", "incineroar"}
	got := Suggest("zzzzzzzzzz", known, 3, 0.6)
	if len(got) != 0 {
		t.Fatalf("Suggest(unrelated input) = %v, want none", got)
	}
}

func TestSuggestCapsAtMax(t *testing.T) {
	known := []string{"aaaaa", "aaaab", "aaabb", "aabbb"}
	got := Suggest("aaaaa", known, 2, 0.0)
	if len(got) != 2 {
		t.Fatalf("len(Suggest(...)) = %d, want 2", len(got))
	}
	if got[0] != "aaaaa" {
		t.Errorf("got[0] = %q, want exact match first", got[0])
	}
}
