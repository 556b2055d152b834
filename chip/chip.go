// Package chip implements the per-turn residual HP deltas spec.md 4.7
// documents: weather, status, terrain, and item chip damage/healing, plus
// the multi-turn roll-up that applies them with clamping and an
// early-faint stop.
package chip

import "github.com/MSS23/vgc-mcp-sub003/types"

// Context carries every per-turn condition a single Pokemon's chip-damage
// total depends on. All boolean fields default false.
type Context struct {
	MaxHP int

	DefenderTypes    types.TypeList
	DefenderGrounded bool

	Weather types.Weather
	Terrain types.Terrain

	Ability types.AbilityTag
	Item    types.ItemTag

	Burned        bool
	Poisoned      bool
	BadlyPoisoned bool
	// ToxicCounter is the number of turns badly poisoned has been active,
	// clamped to 15 per spec.md 4.7.
	ToxicCounter int

	SaltCure bool
}

func hasTypeImmunity(tl types.TypeList, candidates ...types.Type) bool {
	for _, c := range candidates {
		if tl.Has(c) {
			return true
		}
	}
	return false
}

func (c Context) clampedToxicCounter() int {
	if c.ToxicCounter > 15 {
		return 15
	}
	if c.ToxicCounter < 1 {
		return 1
	}
	return c.ToxicCounter
}

// TurnDelta returns the signed HP change for one turn of residual effects
// (spec.md 4.7), summing every active source. Positive is healing,
// negative is damage.
func TurnDelta(c Context) int {
	delta := 0
	maxHP := c.MaxHP

	switch c.Weather {
	case types.Sand:
		if !hasTypeImmunity(c.DefenderTypes, types.Rock, types.Ground, types.Steel) && !sandImmuneAbility(c.Ability) {
			delta -= maxHP / 16
		}
	case types.Hail, types.Snow:
		if c.Ability == types.AbilityIceBody {
			delta += maxHP / 16
		} else if !hasTypeImmunity(c.DefenderTypes, types.Ice) && !weatherImmuneAbility(c.Ability) {
			delta -= maxHP / 16
		}
	}

	if c.Burned && c.Ability != types.AbilityMagicGuard {
		delta -= maxHP / 16
	}

	if c.Ability != types.AbilityMagicGuard {
		switch {
		case c.Poisoned && c.Ability == types.AbilityPoisonHeal:
			delta += maxHP / 8
		case c.Poisoned:
			delta -= maxHP / 8
		case c.BadlyPoisoned && c.Ability == types.AbilityPoisonHeal:
			delta += maxHP / 8
		case c.BadlyPoisoned:
			delta -= maxHP * c.clampedToxicCounter() / 16
		}
	}

	if c.Terrain == types.TerrainGrassy && c.DefenderGrounded && c.Ability != types.AbilityMagicGuard {
		delta += maxHP / 16
	}

	if c.SaltCure && c.Ability != types.AbilityMagicGuard {
		if hasTypeImmunity(c.DefenderTypes, types.Water, types.Steel) {
			delta -= maxHP / 4
		} else {
			delta -= maxHP / 8
		}
	}

	switch c.Item {
	case types.ItemLeftovers:
		delta += maxHP / 16
	case types.ItemBlackSludge:
		if hasTypeImmunity(c.DefenderTypes, types.Poison) {
			delta += maxHP / 16
		} else {
			delta -= maxHP / 8
		}
	}

	return delta
}

func sandImmuneAbility(a types.AbilityTag) bool {
	switch a {
	case types.AbilityMagicGuard, types.AbilityOvercoat, types.AbilitySandVeil, types.AbilitySandRush, types.AbilitySandForce:
		return true
	default:
		return false
	}
}

func weatherImmuneAbility(a types.AbilityTag) bool {
	switch a {
	case types.AbilityMagicGuard, types.AbilityOvercoat:
		return true
	default:
		return false
	}
}

// TurnResult is one entry of a RollUp: the HP total after the turn's
// deltas were applied and clamped, and whether the Pokemon fainted.
type TurnResult struct {
	Turn    int
	HP      int
	Delta   int
	Fainted bool
}

// RollUp applies TurnDelta turn-by-turn starting from startingHP, clamping
// to [0, MaxHP] and stopping early on faint (spec.md 4.7). Badly poisoned
// contexts must have the caller increment ToxicCounter between turns; this
// function applies whatever ToxicCounter each element of perTurn carries.
func RollUp(startingHP int, perTurn []Context) []TurnResult {
	hp := startingHP
	out := make([]TurnResult, 0, len(perTurn))
	for i, ctx := range perTurn {
		if hp <= 0 {
			break
		}
		delta := TurnDelta(ctx)
		hp += delta
		if hp > ctx.MaxHP {
			hp = ctx.MaxHP
		}
		fainted := hp <= 0
		if fainted {
			hp = 0
		}
		out = append(out, TurnResult{Turn: i + 1, HP: hp, Delta: delta, Fainted: fainted})
		if fainted {
			break
		}
	}
	return out
}

// BadlyPoisonedSeries builds the per-turn Context slice for a Pokemon that
// has been badly poisoned since turn 1 with no other residual effects, the
// toxic counter incrementing each turn (spec.md concrete scenario #11).
func BadlyPoisonedSeries(maxHP, turns int) []Context {
	out := make([]Context, turns)
	for i := range out {
		out[i] = Context{MaxHP: maxHP, BadlyPoisoned: true, ToxicCounter: i + 1}
	}
	return out
}
