// Package typechart implements the Gen-9 18x18 type-effectiveness table
// and its composition rules against single- and dual-type defenders
// (spec.md 4.1).
package typechart

import "github.com/MSS23/vgc-mcp-sub003/types"

// Multiplier is a type-effectiveness multiplier expressed as sixteenths to
// stay exact: 0, 4, 8, 16, or 32 represent 0x, 1/4x, 1/2x, 1x, 2x.
// Composed dual-type results range over {0, 4, 8, 16, 32, 64} sixteenths,
// i.e. {0, 1/4, 1/2, 1, 2, 4}.
type Multiplier int

const (
	immune    Multiplier = 0
	quarter   Multiplier = 4
	half      Multiplier = 8
	neutral   Multiplier = 16
	superEff  Multiplier = 32
)

// Float64 returns the multiplier as a float64 (0, 0.25, 0.5, 1, 2, or 4).
func (m Multiplier) Float64() float64 { return float64(m) / 16 }

// table[attacker][defender] in sixteenths-of-neutral units.
var table [types.NumTypes][types.NumTypes]Multiplier

func set(atk, def types.Type, m Multiplier) {
	table[atk][def] = m
}

func init() {
	for a := 0; a < types.NumTypes; a++ {
		for d := 0; d < types.NumTypes; d++ {
			table[a][d] = neutral
		}
	}

	type rule struct {
		atk types.Type
		def types.Type
		m   Multiplier
	}
	rules := []rule{
		// Normal
		{types.Normal, types.Rock, half}, {types.Normal, types.Ghost, immune}, {types.Normal, types.Steel, half},
		// Fire
		{types.Fire, types.Fire, half}, {types.Fire, types.Water, half}, {types.Fire, types.Grass, superEff},
		{types.Fire, types.Ice, superEff}, {types.Fire, types.Bug, superEff}, {types.Fire, types.Rock, half},
		{types.Fire, types.Dragon, half}, {types.Fire, types.Steel, superEff},
		// Water
		{types.Water, types.Fire, superEff}, {types.Water, types.Water, half}, {types.Water, types.Grass, half},
		{types.Water, types.Ground, superEff}, {types.Water, types.Rock, superEff}, {types.Water, types.Dragon, half},
		// Electric
		{types.Electric, types.Water, superEff}, {types.Electric, types.Electric, half}, {types.Electric, types.Grass, half},
		{types.Electric, types.Ground, immune}, {types.Electric, types.Flying, superEff}, {types.Electric, types.Dragon, half},
		// Grass
		{types.Grass, types.Fire, half}, {types.Grass, types.Water, superEff}, {types.Grass, types.Grass, half},
		{types.Grass, types.Poison, half}, {types.Grass, types.Ground, superEff}, {types.Grass, types.Flying, half},
		{types.Grass, types.Bug, half}, {types.Grass, types.Rock, superEff}, {types.Grass, types.Dragon, half},
		{types.Grass, types.Steel, half},
		// Ice
		{types.Ice, types.Fire, half}, {types.Ice, types.Water, half}, {types.Ice, types.Grass, superEff},
		{types.Ice, types.Ice, half}, {types.Ice, types.Ground, superEff}, {types.Ice, types.Flying, superEff},
		{types.Ice, types.Dragon, superEff}, {types.Ice, types.Steel, half},
		// Fighting
		{types.Fighting, types.Normal, superEff}, {types.Fighting, types.Ice, superEff}, {types.Fighting, types.Poison, half},
		{types.Fighting, types.Flying, half}, {types.Fighting, types.Psychic, half}, {types.Fighting, types.Bug, half},
		{types.Fighting, types.Rock, superEff}, {types.Fighting, types.Ghost, immune}, {types.Fighting, types.Dark, superEff},
		{types.Fighting, types.Steel, superEff}, {types.Fighting, types.Fairy, half},
		// Poison
		{types.Poison, types.Grass, superEff}, {types.Poison, types.Poison, half}, {types.Poison, types.Ground, half},
		{types.Poison, types.Rock, half}, {types.Poison, types.Ghost, half}, {types.Poison, types.Steel, immune},
		{types.Poison, types.Fairy, superEff},
		// Ground
		{types.Ground, types.Fire, superEff}, {types.Ground, types.Electric, superEff}, {types.Ground, types.Grass, half},
		{types.Ground, types.Poison, superEff}, {types.Ground, types.Flying, immune}, {types.Ground, types.Bug, half},
		{types.Ground, types.Rock, superEff}, {types.Ground, types.Steel, superEff},
		// Flying
		{types.Flying, types.Electric, half}, {types.Flying, types.Grass, superEff}, {types.Flying, types.Fighting, superEff},
		{types.Flying, types.Bug, superEff}, {types.Flying, types.Rock, half}, {types.Flying, types.Steel, half},
		// Psychic
		{types.Psychic, types.Fighting, superEff}, {types.Psychic, types.Poison, superEff}, {types.Psychic, types.Psychic, half},
		{types.Psychic, types.Dark, immune}, {types.Psychic, types.Steel, half},
		// Bug
		{types.Bug, types.Fire, half}, {types.Bug, types.Grass, superEff}, {types.Bug, types.Fighting, half},
		{types.Bug, types.Poison, half}, {types.Bug, types.Flying, half}, {types.Bug, types.Psychic, superEff},
		{types.Bug, types.Ghost, half}, {types.Bug, types.Dark, superEff}, {types.Bug, types.Steel, half},
		{types.Bug, types.Fairy, half},
		// Rock
		{types.Rock, types.Fire, superEff}, {types.Rock, types.Ice, superEff}, {types.Rock, types.Fighting, half},
		{types.Rock, types.Ground, half}, {types.Rock, types.Flying, superEff}, {types.Rock, types.Bug, superEff},
		{types.Rock, types.Steel, half},
		// Ghost
		{types.Ghost, types.Normal, immune}, {types.Ghost, types.Psychic, superEff}, {types.Ghost, types.Ghost, superEff},
		{types.Ghost, types.Dark, half},
		// Dragon
		{types.Dragon, types.Dragon, superEff}, {types.Dragon, types.Steel, half}, {types.Dragon, types.Fairy, immune},
		// Dark
		{types.Dark, types.Fighting, half}, {types.Dark, types.Psychic, superEff}, {types.Dark, types.Ghost, superEff},
		{types.Dark, types.Dark, half}, {types.Dark, types.Fairy, half},
		// Steel
		{types.Steel, types.Fire, half}, {types.Steel, types.Water, half}, {types.Steel, types.Electric, half},
		{types.Steel, types.Ice, superEff}, {types.Steel, types.Rock, superEff}, {types.Steel, types.Steel, half},
		{types.Steel, types.Fairy, superEff},
		// Fairy
		{types.Fairy, types.Fire, half}, {types.Fairy, types.Fighting, superEff}, {types.Fairy, types.Poison, half},
		{types.Fairy, types.Dragon, superEff}, {types.Fairy, types.Dark, superEff}, {types.Fairy, types.Steel, half},
	}
	for _, r := range rules {
		set(r.atk, r.def, r.m)
	}
}

// Single returns the effectiveness multiplier of attackType against a
// single defending type.
func Single(attackType, defendType types.Type) Multiplier {
	return table[attackType][defendType]
}

// Against returns the composed effectiveness multiplier of attackType
// against a (possibly dual-type) defender (spec.md 4.1). The result is
// always one of {0, 1/4, 1/2, 1, 2, 4} (testable property #3).
func Against(attackType types.Type, defender types.TypeList) float64 {
	m := Single(attackType, defender.Primary).Float64()
	if defender.HasSecond {
		m *= Single(attackType, defender.Secondary).Float64()
	}
	return m
}

// AgainstTera returns the effectiveness multiplier of attackType against a
// Tera-active defender, whose type list is replaced by the single Tera
// type for this lookup only (spec.md 4.1).
func AgainstTera(attackType, teraType types.Type) float64 {
	return Single(attackType, teraType).Float64()
}
