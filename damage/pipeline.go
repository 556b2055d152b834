// Package damage implements the Gen-9 VGC damage-modifier pipeline:
// stat selection and staging, stat- and power-modifying items/abilities,
// the base-damage formula, pre-random multipliers, and the sixteen
// per-roll multipliers, all computed in 4096-scale fixed-point integer
// arithmetic so that results are bit-identical across platforms.
package damage

import (
	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Calculate runs the full Phase A-G modifier pipeline for a single move
// use and returns the completed result, including the per-step audit
// trail and KO classification against the defender's current HP.
//
// Sheer Force + Life Orb recoil is intentionally out of scope: DamageResult
// carries no attacker-side HP delta, so Life Orb's 10% recoil on the
// attacker is not modeled here.

func Calculate(move types.Move, attacker, defender types.Build, ctx types.ModifierContext) types.DamageResult {
	if !move.IsDamaging() {
		return types.DamageResult{IsStatus: true}
	}

	defenderHP := stats.BuildStat(types.HP, defender)
	var audit []types.ModifierStep

	hits := ctx.MoveHits
	if hits < 1 {
		if move.MultiHit.IsMultiHit() {
			hits = move.MultiHit.MaxHits
		} else {
			hits = 1
		}
	}
	if move.MultiHit.AlwaysCrit {
		ctx.IsCritical = true
	}

	attackStat, a1 := selectAttackingStat(attacker, move.Category, ctx)
	audit = append(audit, a1...)
	defenseStat, a2 := selectDefendingStat(defender, move.Category, ctx)
	audit = append(audit, a2...)

	attackStat, defenseStat, a3 := applyStatModifiers(attackStat, defenseStat, move.Category, attacker, defender, ctx)
	audit = append(audit, a3...)

	basePower := move.BasePower
	basePower, a4 := applyPowerModifiers(basePower, move, ctx)
	audit = append(audit, a4...)

	level := attacker.EffectiveLevel()
	base := baseDamage(level, basePower, attackStat, defenseStat)

	preRandom, a5 := applyPreRandomMultipliers(base, move, ctx)
	audit = append(audit, a5...)

	rolls, typeMult, a6 := computeRolls(preRandom, move, attacker, defender, ctx)
	audit = append(audit, a6...)

	if move.MultiHit.IsMultiHit() {
		audit = append(audit, types.ModifierStep{Name: "multi-hit", Description: "per-hit damage multiplied by hit count"})
	}

	if typeMult == 0 {
		return types.DamageResult{
			MinDamage:  0,
			MaxDamage:  0,
			Rolls:      rolls,
			DefenderHP: defenderHP,
			KO:         types.NoKO,
			Audit:      audit,
		}
	}

	result := types.DamageResult{
		Rolls:      rolls,
		DefenderHP: defenderHP,
		Audit:      audit,
	}
	result.MinDamage = rolls[0] * hits
	result.MaxDamage = rolls[types.NumRolls-1] * hits
	result.KO = classifyKO(rolls, hits, defenderHP)

	return result
}
