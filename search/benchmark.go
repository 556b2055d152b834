// Package search implements the EV-optimization benchmarks of spec.md 4.8:
// speed, single- and dual-survival, combined speed+survival, and nature
// selection. The sequential core is deterministic; SurviveDualParallel
// wraps the dual-survival core with a fork-join parallel outer loop for
// throughput without changing the result (spec.md 9's parallelism note).
package search

import (
	"github.com/MSS23/vgc-mcp-sub003/damage"
	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// SpeedBenchmark returns the smallest EV breakpoint producing a Speed stat
// at least target, iterating ascending breakpoints (spec.md 4.8, O(32)).
func SpeedBenchmark(base, iv, level int, nature types.Nature, target int) (int, bool) {
	return stats.FindSpeedEVs(base, iv, level, nature.MultiplierTenths(types.Speed), target)
}

// defendingStatFor returns the stat the attacking move's category defends
// against (Defense for physical, SpDefense for special).
func defendingStatFor(category types.MoveCategory) types.Stat {
	if category == types.Physical {
		return types.Defense
	}
	return types.SpDefense
}

// SurvivalAttack bundles the attacker-side inputs a survival benchmark
// measures the defender against.
type SurvivalAttack struct {
	Move     types.Move
	Attacker types.Build
	Ctx      types.ModifierContext
}

func survives(attack SurvivalAttack, defender types.Build, targetSurvivalPercent float64) (bool, float64) {
	result := damage.Calculate(attack.Move, attack.Attacker, defender, attack.Ctx)
	if result.IsStatus {
		return true, 100
	}
	maxHP := result.DefenderHP
	survivalFraction := 1.0 - targetSurvivalPercent/100.0
	threshold := float64(maxHP) * survivalFraction
	margin := 100 - result.MaxPercent()
	return float64(result.MaxDamage) < threshold, margin
}

// SingleSurvivalBenchmark finds the minimum-EV (hp, defensive-stat) pair
// such that maxDamage < defenderHP * (1 - targetSurvivalPercent/100),
// searching HP-first ascending and the relevant defensive stat ascending,
// breaking on the first success per HP candidate (spec.md 4.8, O(32^2)).
func SingleSurvivalBenchmark(attack SurvivalAttack, defenderSpecies types.Species, nature types.Nature, level int, targetSurvivalPercent float64) (types.EVSpread, bool) {
	defStat := defendingStatFor(attack.Move.Category)

	best := types.EVSpread{}
	bestTotal := -1
	found := false

	for _, hpEV := range types.SpeedBreakpoints {
		for _, statEV := range types.SpeedBreakpoints {
			evs := types.EVSpread{HP: hpEV}.With(defStat, statEV)
			defender := types.Build{Species: defenderSpecies, Nature: nature, EVs: evs, IVs: types.DefaultIVs(), Level: level}

			ok, _ := survives(attack, defender, targetSurvivalPercent)
			if ok {
				total := hpEV + statEV
				if !found || total < bestTotal {
					best = evs
					bestTotal = total
					found = true
				}
				break
			}
		}
	}

	return best, found
}

// DualSurvivalResult is the outcome of a dual-survival search: either a
// feasible minimum-total triple, or, when none exists within budget, a
// best-effort triple and the two achieved survival margins plus an
// IMPOSSIBLE verdict (spec.md 4.8).
type DualSurvivalResult struct {
	EVs        types.EVSpread
	Feasible   bool
	MarginOne  float64
	MarginTwo  float64
}

// SurviveDual finds the minimum-total-EV (hp, def, spd) triple surviving
// both attacks at targetSurvivalPercent, using the greedy per-HP
// independent-defense-search algorithm spec.md 4.8 documents. If no
// feasible triple exists within the 508 EV budget, it returns the
// best-effort triple maximizing the worse of the two survival margins.
func SurviveDual(attack1, attack2 SurvivalAttack, defenderSpecies types.Species, nature types.Nature, level int, targetSurvivalPercent float64) DualSurvivalResult {
	var best DualSurvivalResult
	bestEffort := DualSurvivalResult{MarginOne: -1e18, MarginTwo: -1e18}
	bestWorstMargin := -1.0e18

	defStat1 := defendingStatFor(attack1.Move.Category)
	defStat2 := defendingStatFor(attack2.Move.Category)

	for _, hpEV := range types.SpeedBreakpoints {
		if r, ok := surviveDualAtHP(attack1, attack2, defenderSpecies, nature, level, hpEV, targetSurvivalPercent); ok {
			if !best.Feasible || r.EVs.Total() < best.EVs.Total() {
				best = r
			}
		}

		_, _, defMargin := minDefenseFor(attack1, defenderSpecies, nature, level, hpEV, defStat1, targetSurvivalPercent)
		_, _, spdMargin := minDefenseFor(attack2, defenderSpecies, nature, level, hpEV, defStat2, targetSurvivalPercent)
		worst := defMargin
		if spdMargin < worst {
			worst = spdMargin
		}
		if worst > bestWorstMargin {
			bestWorstMargin = worst
			bestEffort.MarginOne = defMargin
			bestEffort.MarginTwo = spdMargin
			bestEffort.EVs = types.EVSpread{HP: hpEV}
		}
	}

	if best.Feasible {
		return best
	}
	return bestEffort
}

// minDefenseFor returns the smallest EV breakpoint on stat that lets the
// defender survive attack at the given HP investment, plus the margin
// achieved (used for best-effort reporting when no breakpoint succeeds).
func minDefenseFor(attack SurvivalAttack, species types.Species, nature types.Nature, level, hpEV int, stat types.Stat, targetSurvivalPercent float64) (int, bool, float64) {
	bestMargin := -1.0e18
	for _, statEV := range types.SpeedBreakpoints {
		evs := types.EVSpread{HP: hpEV}.With(stat, statEV)
		defender := types.Build{Species: species, Nature: nature, EVs: evs, IVs: types.DefaultIVs(), Level: level}
		ok, margin := survives(attack, defender, targetSurvivalPercent)
		if margin > bestMargin {
			bestMargin = margin
		}
		if ok {
			return statEV, true, margin
		}
	}
	return types.MaxEV, false, bestMargin
}

// minSharedDefense handles the case where both attacks defend against the
// same stat (both physical or both special), requiring a single
// breakpoint that satisfies both simultaneously.
func minSharedDefense(attack1, attack2 SurvivalAttack, species types.Species, nature types.Nature, level, hpEV int, stat types.Stat, targetSurvivalPercent float64) (int, bool, float64, float64) {
	for _, statEV := range types.SpeedBreakpoints {
		evs := types.EVSpread{HP: hpEV}.With(stat, statEV)
		defender := types.Build{Species: species, Nature: nature, EVs: evs, IVs: types.DefaultIVs(), Level: level}
		ok1, m1 := survives(attack1, defender, targetSurvivalPercent)
		ok2, m2 := survives(attack2, defender, targetSurvivalPercent)
		if ok1 && ok2 {
			return statEV, true, m1, m2
		}
	}
	return 0, false, 0, 0
}
