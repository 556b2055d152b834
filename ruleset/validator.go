// Package ruleset implements the regulation-aware team legality checks
// spec.md 4.10 documents: team size, species clause, restricted count,
// banned list, and item clause, each producing one entry in a Violations
// list rather than failing fast, grounded on the teacher's
// FileStoreValidator shape (one Validate* method per rule, errors
// accumulated rather than short-circuited on the first failure).
package ruleset

import (
	"fmt"

	"github.com/MSS23/vgc-mcp-sub003/config"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// MaxTeamSize is the hard Pokemon-per-team ceiling regardless of
// regulation (spec.md 4.10).
const MaxTeamSize = 6

// Violation is one legality failure: the rule that triggered it and a
// human-readable explanation.
type Violation struct {
	Rule    string
	Message string
}

// Validator evaluates a team against a single regulation.
type Validator struct {
	Regulation config.Regulation
}

// NewValidator builds a Validator for the named regulation, looked up in
// catalog.
func NewValidator(catalog config.Catalog, regulationCode string) (*Validator, error) {
	reg, ok := catalog.Lookup(regulationCode)
	if !ok {
		return nil, fmt.Errorf("unknown regulation %q", regulationCode)
	}
	return &Validator{Regulation: reg}, nil
}

// Validate runs every rule against team and returns the accumulated
// violations; an empty slice means the team is legal.
func (v *Validator) Validate(team []types.Build) []Violation {
	var violations []Violation

	violations = append(violations, v.validateTeamSize(team)...)
	if v.Regulation.SpeciesClause {
		violations = append(violations, v.validateSpeciesClause(team)...)
	}
	violations = append(violations, v.validateRestrictedCount(team)...)
	violations = append(violations, v.validateBannedList(team)...)
	if v.Regulation.ItemClause {
		violations = append(violations, v.validateItemClause(team)...)
	}

	return violations
}

func (v *Validator) validateTeamSize(team []types.Build) []Violation {
	limit := v.Regulation.PokemonLimit
	if limit <= 0 {
		limit = MaxTeamSize
	}
	if len(team) > limit {
		return []Violation{{Rule: "team_size", Message: fmt.Sprintf("team has %d Pokemon, limit is %d", len(team), limit)}}
	}
	return nil
}

func (v *Validator) validateSpeciesClause(team []types.Build) []Violation {
	seen := make(map[string]bool, len(team))
	var violations []Violation
	for _, b := range team {
		base := types.BaseSpeciesName(b.Species.Name)
		if seen[base] {
			violations = append(violations, Violation{Rule: "species_clause", Message: fmt.Sprintf("duplicate base species %q", base)})
			continue
		}
		seen[base] = true
	}
	return violations
}

func (v *Validator) validateRestrictedCount(team []types.Build) []Violation {
	restricted := toSet(v.Regulation.RestrictedPokemon)
	count := 0
	for _, b := range team {
		if restricted[types.BaseSpeciesName(b.Species.Name)] {
			count++
		}
	}
	if count > v.Regulation.RestrictedLimit {
		return []Violation{{Rule: "restricted_count", Message: fmt.Sprintf("team has %d restricted Pokemon, limit is %d", count, v.Regulation.RestrictedLimit)}}
	}
	return nil
}

func (v *Validator) validateBannedList(team []types.Build) []Violation {
	banned := toSet(v.Regulation.BannedPokemon)
	var violations []Violation
	for _, b := range team {
		if banned[types.BaseSpeciesName(b.Species.Name)] {
			violations = append(violations, Violation{Rule: "banned_list", Message: fmt.Sprintf("%q is banned under %s", b.Species.Name, v.Regulation.Name)})
		}
	}
	return violations
}

func (v *Validator) validateItemClause(team []types.Build) []Violation {
	seen := make(map[string]bool, len(team))
	var violations []Violation
	for _, b := range team {
		if b.Item == "" {
			continue
		}
		if seen[b.Item] {
			violations = append(violations, Violation{Rule: "item_clause", Message: fmt.Sprintf("duplicate held item %q", b.Item)})
			continue
		}
		seen[b.Item] = true
	}
	return violations
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[types.BaseSpeciesName(n)] = true
	}
	return set
}
