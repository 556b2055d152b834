package damage

import "github.com/MSS23/vgc-mcp-sub003/types"

// stabMultiplierFixed implements spec.md 4.3's STAB rule, including the
// Tera interactions: a Tera type matching the move's type grants 2.0x when
// it also matches an original type and 1.5x when it does not; an original
// type match without a Tera match keeps 1.5x; Adaptability stacks with
// a same-type Tera match by adding, not multiplying, its own bonus, but
// the combined bonus is capped at 2.0x per the open question decision
// recorded in the grounding ledger (rather than the uncapped 2.25x some
// community calculators allow).
func stabMultiplierFixed(move types.Move, attacker types.Build, ctx types.ModifierContext) (int, []types.ModifierStep) {
	originalTypes := attacker.OriginalTypes()
	hasOriginalSTAB := originalTypes.Has(move.Type)
	hasTeraSTAB := attacker.TeraActive && attacker.TeraType == move.Type
	adaptability := ctx.HasAdaptability

	if !hasOriginalSTAB && !hasTeraSTAB {
		return fx1_0, nil
	}

	var mult int
	var desc string
	switch {
	case hasTeraSTAB && hasOriginalSTAB && adaptability:
		mult = fx2_0
		desc = "2x STAB (Tera matches original type, Adaptability, capped)"
	case hasTeraSTAB && hasOriginalSTAB:
		mult = fx2_0
		desc = "2x STAB (Tera matches original type)"
	case hasTeraSTAB && adaptability:
		mult = fx2_0
		desc = "2x STAB (Tera type, Adaptability, capped)"
	case hasTeraSTAB:
		mult = fx1_5
		desc = "1.5x STAB (Tera type)"
	case adaptability:
		mult = fx2_0
		desc = "2x STAB (Adaptability)"
	default:
		mult = fx1_5
		desc = "1.5x STAB"
	}

	return mult, []types.ModifierStep{{Name: "stab", Description: desc}}
}
