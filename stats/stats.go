// Package stats implements the Gen-9 stat formulas: HP and the other five
// stats from base/IV/EV/level/nature, plus the speed-benchmark helpers
// the search package builds on (spec.md 4.2).
package stats

import "github.com/MSS23/vgc-mcp-sub003/types"

// HP computes the HP stat: floor((2*base + iv + floor(ev/4)) * level / 100)
// + level + 10.
func HP(base, iv, ev, level int) int {
	inner := (2*base + iv + ev/4) * level / 100
	return inner + level + 10
}

// OtherStat computes a non-HP stat: floor((floor((2*base+iv+floor(ev/4))*level/100) + 5) * natureTenths / 10).
// natureTenths is 9, 10, or 11 for a lowered/neutral/boosted nature.
func OtherStat(base, iv, ev, level, natureTenths int) int {
	inner := (2*base+iv+ev/4)*level/100 + 5
	return inner * natureTenths / 10
}

// Stat computes the final value of stat s for a build-shaped set of raw
// inputs. HP uses the HP formula; all others use OtherStat with the
// nature's multiplier for that stat.
func Stat(s types.Stat, base types.BaseStats, ivs types.IVSpread, evs types.EVSpread, level int, nature types.Nature) int {
	b := base.Get(s)
	iv := ivs.Get(s)
	ev := evs.Get(s)
	if s == types.HP {
		return HP(b, iv, ev, level)
	}
	return OtherStat(b, iv, ev, level, nature.MultiplierTenths(s))
}

// AllStats computes all six final stats for a build's raw inputs.
func AllStats(base types.BaseStats, ivs types.IVSpread, evs types.EVSpread, level int, nature types.Nature) types.BaseStats {
	return types.BaseStats{
		HP:        Stat(types.HP, base, ivs, evs, level, nature),
		Attack:    Stat(types.Attack, base, ivs, evs, level, nature),
		Defense:   Stat(types.Defense, base, ivs, evs, level, nature),
		SpAttack:  Stat(types.SpAttack, base, ivs, evs, level, nature),
		SpDefense: Stat(types.SpDefense, base, ivs, evs, level, nature),
		Speed:     Stat(types.Speed, base, ivs, evs, level, nature),
	}
}

// BuildStat computes stat s for a full Build value.
func BuildStat(s types.Stat, b types.Build) int {
	return Stat(s, b.Species.BaseStats, b.IVs, b.EVs, b.EffectiveLevel(), b.Nature)
}

// MaxSpeed returns the maximum-achievable Speed stat for a species at
// level 50: +nature, 252 EV, 31 IV (spec.md 4.2).
func MaxSpeed(base int) int {
	return OtherStat(base, types.MaxIV, types.MaxEV, 50, 11)
}

// MinSpeed returns the minimum-achievable Speed stat for a species at
// level 50: -nature, 0 EV, 0 IV. Used as the invariant floor (spec.md
// testable property #1).
func MinSpeed(base int) int {
	return OtherStat(base, 0, 0, 50, 9)
}

// FindSpeedEVs returns the smallest EV breakpoint producing a Speed stat
// >= target, or (0, false) if unreachable at 252 EV (spec.md 4.2).
func FindSpeedEVs(base, iv, level int, natureTenths int, target int) (int, bool) {
	for _, ev := range types.SpeedBreakpoints {
		if OtherStat(base, iv, ev, level, natureTenths) >= target {
			return ev, true
		}
	}
	return 0, false
}
