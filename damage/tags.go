package damage

import (
	"strings"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// itemTags and abilityTags are the closed lookup tables the modifier
// pipeline matches ModifierContext's raw item/ability name fields
// against (spec.md section 3: "Matched against a closed table of ...
// effects"). Keeping the table here, rather than on types.Build, lets the
// external interface edge (spec.md design notes) carry raw strings while
// every internal match is over the closed AbilityTag/ItemTag enumeration.
var itemTags = map[string]types.ItemTag{
	"choice-band":      types.ItemChoiceBand,
	"choice-specs":     types.ItemChoiceSpecs,
	"choice-scarf":     types.ItemChoiceScarf,
	"eviolite":         types.ItemEviolite,
	"assault-vest":     types.ItemAssaultVest,
	"life-orb":         types.ItemLifeOrb,
	"muscle-band":      types.ItemMuscleBand,
	"wise-glasses":     types.ItemWiseGlasses,
	"expert-belt":      types.ItemExpertBelt,
	"metronome":        types.ItemMetronome,
	"leftovers":        types.ItemLeftovers,
	"black-sludge":     types.ItemBlackSludge,
	"hearthflame-mask": types.ItemHearthflameMask,
	"wellspring-mask":  types.ItemWellspringMask,
	"cornerstone-mask": types.ItemCornerstoneMask,
	"teal-mask":        types.ItemTealMask,
}

var abilityTags = map[string]types.AbilityTag{
	"huge-power":      types.AbilityHugePower,
	"pure-power":      types.AbilityPurePower,
	"sword-of-ruin":   types.AbilitySwordOfRuin,
	"beads-of-ruin":   types.AbilityBeadsOfRuin,
	"tablets-of-ruin": types.AbilityTabletsOfRuin,
	"vessel-of-ruin":  types.AbilityVesselOfRuin,
	"technician":      types.AbilityTechnician,
	"sheer-force":     types.AbilitySheerForce,
	"adaptability":    types.AbilityAdaptability,
	"guts":            types.AbilityGuts,
	"commander":       types.AbilityCommander,
	"prankster":       types.AbilityPrankster,
	"gale-wings":      types.AbilityGaleWings,
	"triage":          types.AbilityTriage,
	"magic-guard":     types.AbilityMagicGuard,
	"overcoat":        types.AbilityOvercoat,
	"sand-veil":       types.AbilitySandVeil,
	"sand-rush":       types.AbilitySandRush,
	"sand-force":      types.AbilitySandForce,
	"ice-body":        types.AbilityIceBody,
	"poison-heal":     types.AbilityPoisonHeal,
	"embody-aspect":   types.AbilityEmbodyAspect,
	"protosynthesis":  types.AbilityProtosynthesis,
	"quark-drive":     types.AbilityQuarkDrive,
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ItemTagOf resolves a raw item name to its closed ItemTag, or
// types.ItemNone if unrecognized or empty.
func ItemTagOf(name string) types.ItemTag {
	if tag, ok := itemTags[normalizeTagName(name)]; ok {
		return tag
	}
	return types.ItemNone
}

// AbilityTagOf resolves a raw ability name to its closed AbilityTag, or
// types.AbilityNone if unrecognized or empty.
func AbilityTagOf(name string) types.AbilityTag {
	if tag, ok := abilityTags[normalizeTagName(name)]; ok {
		return tag
	}
	return types.AbilityNone
}

// OgerponMaskType reports the type an Ogerpon mask item boosts moves of,
// and whether it grants the 1.2x boost at all (the Teal Mask does not;
// spec.md concrete scenario #5).
func OgerponMaskType(item types.ItemTag) (types.Type, bool) {
	switch item {
	case types.ItemHearthflameMask:
		return types.Fire, true
	case types.ItemWellspringMask:
		return types.Water, true
	case types.ItemCornerstoneMask:
		return types.Rock, true
	default:
		return 0, false
	}
}
