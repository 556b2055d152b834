package damage

import (
	"fmt"

	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// stageMultiply applies the Gen-9 stat-stage multiplier (spec.md 4.3
// Phase B): (max(2, 2+stage)) / (max(2, 2-stage)), each side clamped at 2,
// applied as an exact integer ratio rather than a 4096-scale fixed point
// value since the denominator is always a small exact integer.
func stageMultiply(value, stage int) int {
	num := 2 + stage
	if num < 2 {
		num = 2
	}
	den := 2 - stage
	if den < 2 {
		den = 2
	}
	return value * num / den
}

// selectAttackingStat implements Phase A's attacker-side choice plus
// Phase B's stage multiplier, honoring the crit rule that a crit ignores
// the attacker's own negative attack stage (spec.md 4.3 Phase B).
func selectAttackingStat(attacker types.Build, category types.MoveCategory, ctx types.ModifierContext) (int, []types.ModifierStep) {
	var audit []types.ModifierStep
	var raw int
	var stage int
	if category == types.Physical {
		raw = stats.BuildStat(types.Attack, attacker)
		stage = ctx.AttackerStages.Attack
	} else {
		raw = stats.BuildStat(types.SpAttack, attacker)
		stage = ctx.AttackerStages.SpAttack
	}

	if ctx.IsCritical && stage < 0 {
		stage = 0
		audit = append(audit, types.ModifierStep{Name: "crit-ignore-negative-attack-stage", Description: "critical hit ignores attacker's negative attack stage"})
	}

	value := stageMultiply(raw, stage)
	if stage != 0 {
		audit = append(audit, types.ModifierStep{Name: "attack-stage", Description: fmt.Sprintf("stage %+d applied to attacking stat", stage)})
	}
	return value, audit
}

// selectDefendingStat implements Phase A's defender-side choice plus
// Phase B's stage multiplier, honoring the crit rule that a crit ignores
// the defender's positive defense stage only (spec.md 4.3 Phase B).
func selectDefendingStat(defender types.Build, category types.MoveCategory, ctx types.ModifierContext) (int, []types.ModifierStep) {
	var audit []types.ModifierStep
	var raw int
	var stage int
	if category == types.Physical {
		raw = stats.BuildStat(types.Defense, defender)
		stage = ctx.DefenderStages.Defense
	} else {
		raw = stats.BuildStat(types.SpDefense, defender)
		stage = ctx.DefenderStages.SpDefense
	}

	if ctx.IsCritical && stage > 0 {
		stage = 0
		audit = append(audit, types.ModifierStep{Name: "crit-ignore-positive-defense-stage", Description: "critical hit ignores defender's positive defense stage"})
	}

	value := stageMultiply(raw, stage)
	if stage != 0 {
		audit = append(audit, types.ModifierStep{Name: "defense-stage", Description: fmt.Sprintf("stage %+d applied to defending stat", stage)})
	}
	return value, audit
}

// applyStatModifiers implements Phase C: stat-modifying items and
// abilities, applied in the documented order, each floored (spec.md 4.3).
func applyStatModifiers(attackStat, defenseStat int, category types.MoveCategory, attacker, defender types.Build, ctx types.ModifierContext) (int, int, []types.ModifierStep) {
	var audit []types.ModifierStep

	atkItem := ItemTagOf(ctx.AttackerItem)
	defItem := ItemTagOf(ctx.DefenderItem)
	atkAbility := AbilityTagOf(ctx.AttackerAbility)

	// 1. Choice items.
	if category == types.Physical && atkItem == types.ItemChoiceBand {
		attackStat = apply(attackStat, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "choice-band", Description: "1.5x Attack"})
	}
	if category == types.Special && atkItem == types.ItemChoiceSpecs {
		attackStat = apply(attackStat, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "choice-specs", Description: "1.5x Special Attack"})
	}

	// 2. Huge Power / Pure Power.
	if category == types.Physical && (atkAbility == types.AbilityHugePower || atkAbility == types.AbilityPurePower) {
		attackStat = apply(attackStat, fx2_0)
		audit = append(audit, types.ModifierStep{Name: "huge-power", Description: "2x Attack"})
	}

	// 3. Commander.
	if ctx.CommanderActive {
		attackStat = apply(attackStat, fx2_0)
		audit = append(audit, types.ModifierStep{Name: "commander-attacker", Description: "2x all attacker stats"})
	}
	if ctx.DefenderCommanderActive {
		defenseStat = apply(defenseStat, fx2_0)
		audit = append(audit, types.ModifierStep{Name: "commander-defender", Description: "2x all defender stats"})
	}

	// 4. Ruin abilities stack multiplicatively on the foe's relevant stat.
	if ctx.Ruin.SwordOfRuin && category == types.Physical {
		defenseStat = apply(defenseStat, fx0_75)
		audit = append(audit, types.ModifierStep{Name: "sword-of-ruin", Description: "0.75x foe Defense"})
	}
	if ctx.Ruin.BeadsOfRuin && category == types.Special {
		defenseStat = apply(defenseStat, fx0_75)
		audit = append(audit, types.ModifierStep{Name: "beads-of-ruin", Description: "0.75x foe Special Defense"})
	}
	if ctx.Ruin.TabletsOfRuin && category == types.Physical {
		attackStat = apply(attackStat, fx0_75)
		audit = append(audit, types.ModifierStep{Name: "tablets-of-ruin", Description: "0.75x foe Attack"})
	}
	if ctx.Ruin.VesselOfRuin && category == types.Special {
		attackStat = apply(attackStat, fx0_75)
		audit = append(audit, types.ModifierStep{Name: "vessel-of-ruin", Description: "0.75x foe Special Attack"})
	}

	// 5. Paradox boosts.
	relevantAttackBoost := types.BoostAttack
	if category == types.Special {
		relevantAttackBoost = types.BoostSpAttack
	}
	if ctx.AttackerParadoxBoost == relevantAttackBoost {
		attackStat = apply(attackStat, fx1_3)
		audit = append(audit, types.ModifierStep{Name: "paradox-attacker", Description: "1.3x attacking stat"})
	}
	relevantDefenseBoost := types.BoostDefense
	if category == types.Special {
		relevantDefenseBoost = types.BoostSpDefense
	}
	if ctx.DefenderParadoxBoost == relevantDefenseBoost {
		defenseStat = apply(defenseStat, fx1_3)
		audit = append(audit, types.ModifierStep{Name: "paradox-defender", Description: "1.3x defending stat"})
	}

	// 6. Eviolite.
	if defender.Species.NotFullyEvolved && defItem == types.ItemEviolite {
		defenseStat = apply(defenseStat, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "eviolite", Description: "1.5x defending stat"})
	}

	// 7. Assault Vest (special defense only).
	if category == types.Special && defItem == types.ItemAssaultVest {
		defenseStat = apply(defenseStat, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "assault-vest", Description: "1.5x Special Defense"})
	}

	return attackStat, defenseStat, audit
}
