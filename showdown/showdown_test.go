package showdown

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func sampleBuild() types.Build {
	return types.Build{
		Species:    types.Species{Name: "flutter-mane"},
		Nature:     types.Timid,
		EVs:        types.EVSpread{HP: 4, SpAttack: 252, Speed: 252},
		IVs:        types.DefaultIVs(),
		Level:      50,
		Item:       "booster-energy",
		Ability:    "protosynthesis",
		TeraActive: true,
		TeraType:   types.Fairy,
		Moves:      []string{"Moonblast", "Shadow Ball", "Protect", "Taunt"},
	}
}

func TestExportImportRoundTrips(t *testing.T) {
	original := sampleBuild()
	text := Export(original)

	parsed, err := Import(text)
	if err != nil {
		t.Fatalf("unexpected import error: %v\n%s", err, text)
	}

	if parsed.Species.Name != original.Species.Name {
		t.Errorf("species mismatch: got %q want %q", parsed.Species.Name, original.Species.Name)
	}
	if parsed.Item != original.Item {
		t.Errorf("item mismatch: got %q want %q", parsed.Item, original.Item)
	}
	if parsed.Ability != original.Ability {
		t.Errorf("ability mismatch: got %q want %q", parsed.Ability, original.Ability)
	}
	if parsed.Nature != original.Nature {
		t.Errorf("nature mismatch: got %v want %v", parsed.Nature, original.Nature)
	}
	if parsed.EVs != original.EVs {
		t.Errorf("EVs mismatch: got %+v want %+v", parsed.EVs, original.EVs)
	}
	if parsed.TeraActive != original.TeraActive || parsed.TeraType != original.TeraType {
		t.Errorf("Tera mismatch: got active=%v type=%v", parsed.TeraActive, parsed.TeraType)
	}
	if len(parsed.Moves) != len(original.Moves) {
		t.Fatalf("move count mismatch: got %d want %d", len(parsed.Moves), len(original.Moves))
	}
	for i := range original.Moves {
		if parsed.Moves[i] != original.Moves[i] {
			t.Errorf("move[%d] mismatch: got %q want %q", i, parsed.Moves[i], original.Moves[i])
		}
	}
}

func TestImportTeamSplitsOnBlankLines(t *testing.T) {
	text := ExportTeam([]types.Build{sampleBuild(), sampleBuild()})
	team, err := ImportTeam(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(team) != 2 {
		t.Fatalf("expected 2 team members, got %d", len(team))
	}
}

func TestImportRejectsUnrecognizedLine(t *testing.T) {
	_, err := Import("flutter-mane\nSomeBogusLine\n")
	if err == nil {
		t.Fatal("expected an error for an unrecognized line")
	}
}

func TestExportOmitsIVsLineWhenDefault(t *testing.T) {
	text := Export(sampleBuild())
	if containsLine(text, "IVs:") {
		t.Fatalf("expected no IVs line for default IVs, got:\n%s", text)
	}
}

func containsLine(text, prefix string) bool {
	for _, line := range nonEmptyLines(text) {
		if len(line) >= len(prefix) && line[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
