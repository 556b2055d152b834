package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleCatalogJSON = `{
  "current_regulation": "reg-h",
  "regulations": {
    "reg-h": {
      "name": "Regulation H",
      "restricted_limit": 0,
      "item_clause": false,
      "species_clause": true,
      "level": 50,
      "pokemon_limit": 6,
      "bring_limit": 4,
      "restricted_pokemon": ["koraidon", "miraidon"],
      "banned_pokemon": [],
      "smogon_formats": ["gen9vgc2024regh"],
      "start_date": "2024-01-01",
      "end_date": "2024-04-30"
    },
    "reg-i": {
      "name": "Regulation I",
      "restricted_limit": 2,
      "item_clause": false,
      "species_clause": true,
      "level": 50,
      "pokemon_limit": 6,
      "bring_limit": 4,
      "restricted_pokemon": ["koraidon", "miraidon", "calyrex-ice"],
      "banned_pokemon": [],
      "smogon_formats": ["gen9vgc2024regi"],
      "start_date": "2024-05-01",
      "end_date": "2024-08-31"
    }
  }
}`

func TestParseCatalogAndCurrent(t *testing.T) {
	catalog, err := ParseCatalog(strings.NewReader(sampleCatalogJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, ok := catalog.Current()
	if !ok {
		t.Fatal("expected a current regulation")
	}
	if current.Name != "Regulation H" {
		t.Fatalf("expected Regulation H, got %s", current.Name)
	}
	if current.RestrictedLimit != 0 {
		t.Fatalf("expected restricted limit 0, got %d", current.RestrictedLimit)
	}
}

func TestRegulationActiveOnRespectsDateWindow(t *testing.T) {
	catalog, _ := ParseCatalog(strings.NewReader(sampleCatalogJSON))
	regH, _ := catalog.Lookup("reg-h")

	inWindow, _ := time.Parse("2006-01-02", "2024-02-15")
	outOfWindow, _ := time.Parse("2006-01-02", "2024-06-01")

	if !regH.ActiveOn(inWindow) {
		t.Fatal("expected reg-h to be active in February 2024")
	}
	if regH.ActiveOn(outOfWindow) {
		t.Fatal("expected reg-h to be inactive in June 2024")
	}
}

func TestLoadFromFileAppliesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regulations.json")
	if err := os.WriteFile(path, []byte(sampleCatalogJSON), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Setenv("VGC_REGULATION", "reg-i")

	catalog, err := LoadFromFile(LoadOptions{CatalogPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.CurrentRegulation != "reg-i" {
		t.Fatalf("expected env override to select reg-i, got %s", catalog.CurrentRegulation)
	}

	stored, ok := Load()
	if !ok {
		t.Fatal("expected the catalog to be stored process-wide")
	}
	if stored.CurrentRegulation != "reg-i" {
		t.Fatalf("expected stored catalog to reflect the override, got %s", stored.CurrentRegulation)
	}
}
