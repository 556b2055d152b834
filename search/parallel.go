package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// SurviveDualParallel wraps SurviveDual's sequential HP loop in a
// fork-join parallel scan over HP breakpoints: each candidate's
// independent def/spd search runs concurrently, then the results are
// reduced to the same minimum-total triple the sequential core would
// produce, since the reduction step is deterministic regardless of
// completion order (spec.md 9's parallelism note). When no HP breakpoint
// is feasible it returns SurviveDual's best-effort result.
func SurviveDualParallel(ctx context.Context, attack1, attack2 SurvivalAttack, defenderSpecies types.Species, nature types.Nature, level int, targetSurvivalPercent float64) (DualSurvivalResult, error) {
	breakpoints := types.SpeedBreakpoints
	partial := make([]DualSurvivalResult, len(breakpoints))
	partialOK := make([]bool, len(breakpoints))

	g, gCtx := errgroup.WithContext(ctx)
	for i, hpEV := range breakpoints {
		i, hpEV := i, hpEV
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			r, ok := surviveDualAtHP(attack1, attack2, defenderSpecies, nature, level, hpEV, targetSurvivalPercent)
			partial[i] = r
			partialOK[i] = ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return DualSurvivalResult{}, err
	}

	best := reduceDualResults(partial, partialOK)
	if !best.Feasible {
		return SurviveDual(attack1, attack2, defenderSpecies, nature, level, targetSurvivalPercent), nil
	}
	return best, nil
}

// surviveDualAtHP evaluates a single HP breakpoint's best def/spd
// combination, factored out of SurviveDual's loop body so the sequential
// and parallel entry points share one implementation.
func surviveDualAtHP(attack1, attack2 SurvivalAttack, species types.Species, nature types.Nature, level, hpEV int, targetSurvivalPercent float64) (DualSurvivalResult, bool) {
	defStat1 := defendingStatFor(attack1.Move.Category)
	defStat2 := defendingStatFor(attack2.Move.Category)

	if defStat1 == defStat2 {
		sharedEV, sharedOK, m1, m2 := minSharedDefense(attack1, attack2, species, nature, level, hpEV, defStat1, targetSurvivalPercent)
		if !sharedOK {
			return DualSurvivalResult{}, false
		}
		evs := types.EVSpread{HP: hpEV}.With(defStat1, sharedEV)
		return DualSurvivalResult{EVs: evs, Feasible: true, MarginOne: m1, MarginTwo: m2}, true
	}

	defEV, defOK, m1 := minDefenseFor(attack1, species, nature, level, hpEV, defStat1, targetSurvivalPercent)
	spdEV, spdOK, m2 := minDefenseFor(attack2, species, nature, level, hpEV, defStat2, targetSurvivalPercent)
	if !defOK || !spdOK {
		return DualSurvivalResult{}, false
	}
	evs := types.EVSpread{HP: hpEV}.With(defStat1, defEV).With(defStat2, spdEV)
	if evs.Total() > types.MaxEVTotal {
		return DualSurvivalResult{}, false
	}
	return DualSurvivalResult{EVs: evs, Feasible: true, MarginOne: m1, MarginTwo: m2}, true
}

func reduceDualResults(partial []DualSurvivalResult, ok []bool) DualSurvivalResult {
	var best DualSurvivalResult
	for i, p := range partial {
		if !ok[i] {
			continue
		}
		if !best.Feasible || p.EVs.Total() < best.EVs.Total() {
			best = p
		}
	}
	return best
}
