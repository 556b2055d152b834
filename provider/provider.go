// Package provider declares the engine's external data collaborators
// (spec.md section 6): species/move/ability lookup and Smogon-style usage
// statistics. The engine's pure logic packages (damage, stats, search,
// smogon) depend only on these interfaces, never on a concrete HTTP or
// file-backed implementation, mirroring the teacher's thin
// interface-wrapping-a-remote-source shape in services/connectclient.
package provider

import (
	"context"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// SpeciesProvider resolves a canonical species name to its stat/type
// record.
type SpeciesProvider interface {
	GetSpecies(ctx context.Context, name string) (types.Species, error)
}

// MoveProvider resolves a canonical move name to its record.
type MoveProvider interface {
	GetMove(ctx context.Context, name string) (types.Move, error)
}

// AbilityProvider resolves a canonical ability name to its effect tag.
type AbilityProvider interface {
	GetAbility(ctx context.Context, name string) (types.AbilityTag, error)
}

// SpreadUsage is one entry in a UsageRecord's top_spreads list.
type SpreadUsage struct {
	Nature   types.Nature
	EVs      types.EVSpread
	UsagePct float64
}

// UsageRecord is the Smogon-style usage-statistics payload spec.md
// section 6 documents for one (species, format, rating) query.
type UsageRecord struct {
	TopItems     []string
	TopAbilities []string
	TopSpreads   []SpreadUsage
	TopMoves     []string
	TopTeraTypes []string
	TopTeammates []string
}

// UsageProvider resolves Smogon-style usage statistics for a species in a
// given format and ladder rating.
type UsageProvider interface {
	GetUsage(ctx context.Context, species, format string, rating int) (UsageRecord, error)
}

// Canonicalize normalizes a raw name into the lowercase-hyphenated
// canonical form spec.md section 6 specifies: lowercase, spaces to
// hyphens, apostrophes stripped. Form suffixes are left untouched since
// the caller already supplies them as part of the input.
func Canonicalize(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		switch {
		case r == '\'':
			continue
		case r == ' ':
			out = append(out, '-')
		case r >= 'A' && r <= 'Z':
			out = append(out, r-'A'+'a')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
