// Package config implements the regulation catalog spec.md section 6
// documents: a JSON-backed set of named regulations (restricted limit,
// item/species clauses, banned/restricted lists, date window), the
// current-regulation override, and an atomic hot-swap so a running engine
// can pick up a new catalog without a restart.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/MSS23/vgc-mcp-sub003/vgclog"
)

// Regulation is one named ruleset: the fields spec.md section 6's JSON
// schema documents for a single entry under "regulations".
type Regulation struct {
	Name              string   `json:"name"`
	RestrictedLimit   int      `json:"restricted_limit"`
	ItemClause        bool     `json:"item_clause"`
	SpeciesClause     bool     `json:"species_clause"`
	Level             int      `json:"level"`
	PokemonLimit      int      `json:"pokemon_limit"`
	BringLimit        int      `json:"bring_limit"`
	RestrictedPokemon []string `json:"restricted_pokemon"`
	BannedPokemon     []string `json:"banned_pokemon"`
	SmogonFormats     []string `json:"smogon_formats"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
}

// Catalog is the full regulation JSON document: every known regulation
// keyed by code, plus which one is current.
type Catalog struct {
	CurrentRegulation string                `json:"current_regulation"`
	Regulations       map[string]Regulation `json:"regulations"`
}

// Current returns the catalog's current regulation and whether it exists.
func (c Catalog) Current() (Regulation, bool) {
	reg, ok := c.Regulations[c.CurrentRegulation]
	return reg, ok
}

// Lookup returns the named regulation and whether it exists.
func (c Catalog) Lookup(code string) (Regulation, bool) {
	reg, ok := c.Regulations[code]
	return reg, ok
}

// ActiveOn reports whether the regulation's date window covers the given
// time, treating an unset StartDate/EndDate as an open bound.
func (r Regulation) ActiveOn(t time.Time) bool {
	if r.StartDate != "" {
		if start, err := time.Parse("2006-01-02", r.StartDate); err == nil && t.Before(start) {
			return false
		}
	}
	if r.EndDate != "" {
		if end, err := time.Parse("2006-01-02", r.EndDate); err == nil && t.After(end) {
			return false
		}
	}
	return true
}

// ParseCatalog decodes a regulation catalog from JSON.
func ParseCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode regulation catalog: %w", err)
	}
	return c, nil
}

// store is the process-wide hot-swappable catalog. A nil value means
// Store has not been called yet; callers should treat that as "no catalog
// loaded" rather than panicking.
var store atomic.Pointer[Catalog]

// Store installs catalog as the process-wide current catalog, replacing
// whatever was there atomically so concurrent readers never observe a
// partially-updated value.
func Store(catalog Catalog) {
	store.Store(&catalog)
	vgclog.Info("regulation catalog hot-swapped", "current_regulation", catalog.CurrentRegulation, "regulation_count", len(catalog.Regulations))
}

// Load returns the process-wide catalog and whether one has been stored.
func Load() (Catalog, bool) {
	p := store.Load()
	if p == nil {
		return Catalog{}, false
	}
	return *p, true
}
