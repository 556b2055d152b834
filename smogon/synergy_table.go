package smogon

import "github.com/MSS23/vgc-mcp-sub003/types"

// synergyEntry is one built-in fallback spread, keyed by primary type, for
// species the live usage provider has no data for.
type synergyEntry struct {
	nature  types.Nature
	evs     types.EVSpread
	item    string
	ability string
}

// synergyTable is a small built-in meta-synergy table: a reasonable
// generic spread per primary defensive type, standing in for Smogon usage
// data when none is available. Not exhaustive by design — it exists only
// as the second rung of the fallback chain, not a replacement for real
// usage statistics.
var synergyTable = map[types.Type]synergyEntry{
	types.Fire:     {nature: types.Adamant, evs: types.EVSpread{HP: 4, Attack: 252, Speed: 252}, item: "choice-scarf", ability: ""},
	types.Water:    {nature: types.Bold, evs: types.EVSpread{HP: 252, Defense: 252, SpDefense: 4}, item: "leftovers", ability: ""},
	types.Grass:    {nature: types.Modest, evs: types.EVSpread{HP: 4, SpAttack: 252, Speed: 252}, item: "life-orb", ability: ""},
	types.Electric: {nature: types.Timid, evs: types.EVSpread{HP: 4, SpAttack: 252, Speed: 252}, item: "choice-specs", ability: ""},
	types.Steel:    {nature: types.Bold, evs: types.EVSpread{HP: 252, Defense: 252, SpDefense: 4}, item: "leftovers", ability: ""},
	types.Fairy:    {nature: types.Calm, evs: types.EVSpread{HP: 252, SpDefense: 252, Defense: 4}, item: "sitrus-berry", ability: ""},
	types.Dragon:   {nature: types.Adamant, evs: types.EVSpread{HP: 4, Attack: 252, Speed: 252}, item: "choice-band", ability: ""},
	types.Ground:   {nature: types.Jolly, evs: types.EVSpread{HP: 4, Attack: 252, Speed: 252}, item: "assault-vest", ability: ""},
}

// buildFromSynergyTable looks up req.Species's primary type in the
// built-in synergy table and returns a generic Build for it.
func buildFromSynergyTable(req Request) (types.Build, bool) {
	memberTypes := req.Species.Types.Types()
	if len(memberTypes) == 0 {
		return types.Build{}, false
	}

	entry, ok := synergyTable[memberTypes[0]]
	if !ok {
		return types.Build{}, false
	}

	return types.Build{
		Species: req.Species,
		Nature:  entry.nature,
		EVs:     entry.evs,
		IVs:     types.DefaultIVs(),
		Level:   effectiveLevel(req.Level),
		Item:    entry.item,
		Ability: entry.ability,
	}, true
}

// blandFallback is the last-resort rung: a flat bulky-neutral spread with
// no inferred item or ability, used only when neither live usage data nor
// the synergy table has anything for this species.
func blandFallback(req Request) types.Build {
	return types.Build{
		Species: req.Species,
		Nature:  types.Hardy,
		EVs:     types.EVSpread{HP: 84, Attack: 84, Defense: 84, SpAttack: 84, SpDefense: 84, Speed: 84},
		IVs:     types.DefaultIVs(),
		Level:   effectiveLevel(req.Level),
	}
}
