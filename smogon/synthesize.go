// Package smogon synthesizes a full Build (nature, spread, item, ability;
// no Tera type is set) for a species from Smogon-style usage statistics, generalizing
// the teacher's layered-fallback loader
// (LoadRulesEngineFromJSON -> LoadRulesEngineFromLegacy) into a
// Smogon-usage -> meta-synergy-table -> bland-fallback chain: if the
// usage provider has no data (or fails permanently), fall back to a
// small built-in synergy table keyed by primary defensive type, and
// failing that, a bland neutral spread.
package smogon

import (
	"context"

	"github.com/MSS23/vgc-mcp-sub003/engineerr"
	"github.com/MSS23/vgc-mcp-sub003/provider"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Request describes what to synthesize a build for.
type Request struct {
	Species types.Species
	Format  string
	Rating  int
	Level   int
}

// Source reports which rung of the fallback chain produced a Build, for
// callers that want to surface provenance to the user.
type Source int

const (
	SourceSmogonUsage Source = iota
	SourceMetaSynergy
	SourceBlandFallback
)

func (s Source) String() string {
	switch s {
	case SourceSmogonUsage:
		return "smogon-usage"
	case SourceMetaSynergy:
		return "meta-synergy-table"
	default:
		return "bland-fallback"
	}
}

// Result is a synthesized Build plus which fallback rung produced it.
type Result struct {
	Build  types.Build
	Source Source
}

// Synthesize builds the top-1 spread/item/ability Build for req.Species,
// preferring live Smogon usage data, retried through engineerr.WithRetry
// on ProviderTransient failures, and falling back to a meta-synergy table
// and finally a bland neutral spread if usage data is unavailable.
func Synthesize(ctx context.Context, usage provider.UsageProvider, req Request) Result {
	if usage != nil {
		if record, ok := fetchUsage(ctx, usage, req); ok {
			if build, ok := buildFromUsage(req, record); ok {
				return Result{Build: build, Source: SourceSmogonUsage}
			}
		}
	}

	if build, ok := buildFromSynergyTable(req); ok {
		return Result{Build: build, Source: SourceMetaSynergy}
	}

	return Result{Build: blandFallback(req), Source: SourceBlandFallback}
}

func fetchUsage(ctx context.Context, usage provider.UsageProvider, req Request) (provider.UsageRecord, bool) {
	var record provider.UsageRecord
	var fetchErr error

	err := engineerr.WithRetry(engineerr.DefaultRetryConfig(), "smogon-usage-fetch", func() *engineerr.Error {
		record, fetchErr = usage.GetUsage(ctx, req.Species.Name, req.Format, req.Rating)
		if fetchErr == nil {
			return nil
		}
		return engineerr.NewProviderTransient(fetchErr)
	})
	return record, err == nil
}

func buildFromUsage(req Request, record provider.UsageRecord) (types.Build, bool) {
	if len(record.TopSpreads) == 0 {
		return types.Build{}, false
	}
	top := record.TopSpreads[0]

	item := ""
	if len(record.TopItems) > 0 {
		item = record.TopItems[0]
	}
	ability := ""
	if len(record.TopAbilities) > 0 {
		ability = record.TopAbilities[0]
	}

	return types.Build{
		Species: req.Species,
		Nature:  top.Nature,
		EVs:     top.EVs,
		IVs:     types.DefaultIVs(),
		Level:   effectiveLevel(req.Level),
		Item:    item,
		Ability: ability,
	}, true
}

func effectiveLevel(level int) int {
	if level <= 0 {
		return 50
	}
	return level
}
