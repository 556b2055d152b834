package search

import "github.com/MSS23/vgc-mcp-sub003/types"

// CombinedSpeedSurvival runs the speed benchmark first, then
// SingleSurvivalBenchmark, and reports failure when the two spreads
// together exceed the 508 budget. Any leftover EVs are handed out by
// distributeLeftoverToBulk, which does not balance HP against Defense.
func CombinedSpeedSurvival(base, iv, level int, nature types.Nature, speedTarget int, attack SurvivalAttack, defenderSpecies types.Species, targetSurvivalPercent float64) (types.EVSpread, bool) {
	speedEV, speedOK := SpeedBenchmark(base, iv, level, nature, speedTarget)
	if !speedOK {
		return types.EVSpread{}, false
	}

	survivalEVs, survivalOK := SingleSurvivalBenchmark(attack, defenderSpecies, nature, level, targetSurvivalPercent)
	if !survivalOK {
		return types.EVSpread{}, false
	}

	combined := survivalEVs.With(types.Speed, speedEV)
	if combined.Total() > types.MaxEVTotal {
		return combined, false
	}

	leftover := types.MaxEVTotal - combined.Total()
	combined = distributeLeftoverToBulk(combined, leftover)

	return combined, true
}

// distributeLeftoverToBulk hands unused EV budget to HP first, then
// Defense, then SpDefense, each up to the per-stat cap. The order is
// fixed: it does not depend on which defensive stat the survival search
// invested in, and HP is filled before any Defense is added.
func distributeLeftoverToBulk(evs types.EVSpread, leftover int) types.EVSpread {
	if leftover <= 0 {
		return evs
	}

	room := types.MaxEV - evs.HP
	if room > leftover {
		room = leftover
	}
	if room > 0 {
		evs.HP += room
		leftover -= room
	}

	for _, stat := range []types.Stat{types.Defense, types.SpDefense} {
		if leftover <= 0 {
			break
		}
		current := evs.Get(stat)
		room := types.MaxEV - current
		if room > leftover {
			room = leftover
		}
		if room > 0 {
			evs = evs.With(stat, current+room)
			leftover -= room
		}
	}

	return evs
}
