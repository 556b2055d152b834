// Package matchup implements the team-vs-team matchup engine of spec.md
// 4.9: the 6x6 scoring matrix, threat ranking, lead-pair scoring,
// opponent-lead prediction, turn-1 priority ordering, and game-plan
// synthesis built on top of the damage, priority, and chip packages.
package matchup

import (
	"github.com/MSS23/vgc-mcp-sub003/damage"
	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Profile is one team member's full battle-relevant profile: its build,
// its known moves, and the flags the lead-prediction heuristic reads.
type Profile struct {
	Build   types.Build
	Moves   []types.Move
	Ability types.AbilityTag
	Item    types.ItemTag

	HasFakeOut       bool
	HasSetupPriority bool // Prankster Tailwind / Trick Room setter
	HasIntimidate    bool
}

// EffectiveSpeed returns the profile's Speed stat, ignoring in-battle
// modifiers (spec.md 4.9 treats matchup speed as the raw benchmark).
func (p Profile) EffectiveSpeed() int {
	return stats.BuildStat(types.Speed, p.Build)
}

// bestDamagingMove returns the move dealing the greatest max-roll damage
// against defender, plus its computed result. Status-only movesets return
// ok=false.
func bestDamagingMove(attacker, defender Profile, ctx types.ModifierContext) (types.Move, types.DamageResult, bool) {
	var bestMove types.Move
	var bestResult types.DamageResult
	found := false

	for _, m := range attacker.Moves {
		if !m.IsDamaging() {
			continue
		}
		result := damage.Calculate(m, attacker.Build, defender.Build, ctx)
		if !found || result.MaxDamage > bestResult.MaxDamage {
			bestMove = m
			bestResult = result
			found = true
		}
	}

	return bestMove, bestResult, found
}
