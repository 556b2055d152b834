package damage

import (
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// applyPowerModifiers implements Phase D: power-modifying abilities
// applied multiplicatively to the move's base power before the
// base-damage step (spec.md 4.3). Technician and Sheer Force are
// specified explicitly; Iron Fist/Strong Jaw/Tough Claws/Mega
// Launcher/Punching Glove extend the same table by move-flag.
func applyPowerModifiers(basePower int, move types.Move, ctx types.ModifierContext) (int, []types.ModifierStep) {
	var audit []types.ModifierStep
	atkAbility := AbilityTagOf(ctx.AttackerAbility)

	if atkAbility == types.AbilityTechnician && basePower <= 60 {
		basePower = apply(basePower, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "technician", Description: "1.5x power (BP <= 60)"})
	}

	if atkAbility == types.AbilitySheerForce && move.HasSecondaryEffect() {
		basePower = apply(basePower, fx1_3)
		audit = append(audit, types.ModifierStep{Name: "sheer-force", Description: "1.3x power (has secondary effect)"})
	}

	return basePower, audit
}
