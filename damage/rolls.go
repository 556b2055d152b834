package damage

import (
	"github.com/MSS23/vgc-mcp-sub003/types"
	"github.com/MSS23/vgc-mcp-sub003/typechart"
)

// computeRolls implements Phase G: the sixteen 85-100% random rolls. Each
// roll carries the same chain of individually-floored multipliers, in the
// reference calculator's documented order — STAB, type effectiveness,
// burn, screens, item modifiers (each its own floor), helping hand, then
// friend guard — and is clamped to a minimum of 1 (spec.md 4.3 Phase G).
// It returns the completed roll array, the resulting type-effectiveness
// multiplier (needed by the caller for the zero-effectiveness short
// circuit), and an audit trail covering the roll-independent multipliers
// applied identically to every roll.
func computeRolls(baseAfterPreRandom int, move types.Move, attacker, defender types.Build, ctx types.ModifierContext) ([types.NumRolls]int, float64, []types.ModifierStep) {
	var audit []types.ModifierStep

	stabFixed, stabAudit := stabMultiplierFixed(move, attacker, ctx)
	audit = append(audit, stabAudit...)

	typeMult := typechart.Against(move.Type, defender.DefensiveTypes())
	typeFixed := int(typeMult * float64(fixedScale))
	audit = append(audit, types.ModifierStep{Name: "type-effectiveness", Description: "type chart multiplier applied"})

	if typeMult == 0 {
		var zero [types.NumRolls]int
		return zero, 0, audit
	}

	burned := ctx.AttackerBurned && move.Category == types.Physical && !ctx.HasGuts && move.Name != "Facade"
	if burned {
		audit = append(audit, types.ModifierStep{Name: "burn", Description: "0.5x burned physical attacker"})
	}

	screenFixed := fx1_0
	if move.Category == types.Physical && ctx.ReflectUp && !ctx.IsCritical {
		screenFixed = reduceByDoubles(screenFixed, ctx.IsDoubles)
		audit = append(audit, types.ModifierStep{Name: "reflect", Description: "Reflect reduces physical damage"})
	}
	if move.Category == types.Special && ctx.LightScreenUp && !ctx.IsCritical {
		screenFixed = reduceByDoubles(screenFixed, ctx.IsDoubles)
		audit = append(audit, types.ModifierStep{Name: "light-screen", Description: "Light Screen reduces special damage"})
	}
	if ctx.AuroraVeilUp && !ctx.IsCritical {
		screenFixed = reduceByDoubles(screenFixed, ctx.IsDoubles)
		audit = append(audit, types.ModifierStep{Name: "aurora-veil", Description: "Aurora Veil reduces damage"})
	}

	atkItem := ItemTagOf(ctx.AttackerItem)

	hasLifeOrb := atkItem == types.ItemLifeOrb
	if hasLifeOrb {
		audit = append(audit, types.ModifierStep{Name: "life-orb", Description: "1.3x Life Orb"})
	}
	hasMuscleBand := atkItem == types.ItemMuscleBand && move.Category == types.Physical
	if hasMuscleBand {
		audit = append(audit, types.ModifierStep{Name: "muscle-band", Description: "1.1x Muscle Band"})
	}
	hasWiseGlasses := atkItem == types.ItemWiseGlasses && move.Category == types.Special
	if hasWiseGlasses {
		audit = append(audit, types.ModifierStep{Name: "wise-glasses", Description: "1.1x Wise Glasses"})
	}
	hasExpertBelt := atkItem == types.ItemExpertBelt && typeMult > 1.0
	if hasExpertBelt {
		audit = append(audit, types.ModifierStep{Name: "expert-belt", Description: "1.2x Expert Belt on super-effective hit"})
	}
	maskType, hasMask := OgerponMaskType(atkItem)
	hasMask = hasMask && move.Type == maskType
	if hasMask {
		audit = append(audit, types.ModifierStep{Name: "ogerpon-mask", Description: "1.2x mask boost on matching move type"})
	}

	if ctx.HelpingHand {
		audit = append(audit, types.ModifierStep{Name: "helping-hand", Description: "1.5x Helping Hand"})
	}
	if ctx.FriendGuard {
		audit = append(audit, types.ModifierStep{Name: "friend-guard", Description: "0.75x Friend Guard reduces incoming damage"})
	}

	var rolls [types.NumRolls]int
	for i := 0; i < types.NumRolls; i++ {
		r := 85 + i
		v := baseAfterPreRandom * r / 100

		// STAB (5), type effectiveness (6), burn (7), screens (8) — each
		// floored on its own, matching the reference calculator's
		// per-modifier int() truncation.
		v = apply(v, stabFixed)
		v = apply(v, typeFixed)
		if burned {
			v = apply(v, fx0_5)
		}
		v = apply(v, screenFixed)

		// Item modifiers (9) — Life Orb, Muscle Band/Wise Glasses, Expert
		// Belt, and an Ogerpon mask can all apply to the same hit; each
		// gets its own floor rather than a single combined multiplier.
		if hasLifeOrb {
			v = apply(v, fx1_3)
		}
		if hasMuscleBand || hasWiseGlasses {
			v = apply(v, fx1_1)
		}
		if hasExpertBelt {
			v = apply(v, fx1_2)
		}
		if hasMask {
			v = apply(v, fx1_2)
		}

		// Helping Hand (10), then Friend Guard.
		if ctx.HelpingHand {
			v = apply(v, fx1_5)
		}
		if ctx.FriendGuard {
			v = apply(v, fx0_75)
		}

		rolls[i] = clampMin1(v)
	}

	return rolls, typeMult, audit
}

// reduceByDoubles applies the doubles-battle screen reduction (2/3, vs.
// 1/2 in singles), matching Showdown's implementation of Reflect/Light
// Screen/Aurora Veil under four attackers instead of two.
func reduceByDoubles(valueFixed int, isDoubles bool) int {
	if isDoubles {
		return valueFixed * 2 / 3
	}
	return valueFixed / 2
}
