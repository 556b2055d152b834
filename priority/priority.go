// Package priority implements turn-order resolution over Gen-9 priority
// brackets and Speed, including the conditional priority boosts and the
// Speed-affecting status/item/ability interactions spec.md 4.6 documents.
package priority

import (
	"sort"

	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

const speedFixedScale = 12

func speedApply(value, mult int) int { return value * mult / speedFixedScale }

// Actor is one of the battle's four (or two) participants for a single
// turn: its build, the move it is about to use, and the surrounding
// conditions priority resolution must account for.
type Actor struct {
	Name    string
	Build   types.Build
	Move    types.Move
	Ability types.AbilityTag
	Item    types.ItemTag

	// TargetIsDarkType marks a Prankster-boosted status move whose sole or
	// primary target is Dark-type, which strips the priority bonus without
	// preventing the move itself (spec.md 4.6).
	TargetIsDarkType bool

	AtFullHP     bool
	GrassyTerrain bool

	Paralyzed      bool
	TailwindActive bool
	QuickFeet      bool
}

// EffectivePriority returns the move's priority bracket after every
// conditional boost the actor currently qualifies for (spec.md 4.6).
func EffectivePriority(a Actor) int {
	p := a.Move.Priority

	switch a.Ability {
	case types.AbilityPrankster:
		if a.Move.Category == types.Status && !a.TargetIsDarkType {
			p++
		}
	case types.AbilityGaleWings:
		if a.Move.Type == types.Flying && a.AtFullHP {
			p++
		}
	case types.AbilityTriage:
		if a.Move.HealsUser {
			p += 3
		}
	}

	if a.GrassyTerrain && a.Move.Name == "Grassy Glide" {
		p++
	}

	return p
}

// EffectiveSpeed returns the actor's Speed stat after paralysis, Tailwind,
// Choice Scarf, and Quick Feet are applied, computed as an exact
// twelfths-scale fixed-point multiplier chain to avoid floating-point
// order-flipping at a tie (spec.md 4.6 step 4).
func EffectiveSpeed(a Actor) int {
	speed := stats.BuildStat(types.Speed, a.Build)
	mult := speedFixedScale

	if a.Paralyzed {
		if a.QuickFeet {
			mult = mult * 3 / 2
		} else {
			mult = mult / 2
		}
	} else if a.QuickFeet {
		// Quick Feet only boosts while afflicted by a status condition;
		// an unparalyzed Quick Feet user gets no bonus here.
	}

	if a.TailwindActive {
		mult *= 2
	}
	if a.Item == types.ItemChoiceScarf {
		mult = mult * 3 / 2
	}

	return speedApply(speed, mult)
}

// Ranked is one actor's resolved position for a turn: its effective
// priority and Speed, and whether it tied with another actor at both.
type Ranked struct {
	Actor      Actor
	Priority   int
	Speed      int
	TiedSpeed  bool
}

// Resolve orders actors for a single turn per spec.md 4.6: higher
// effective priority first, then higher (or, under Trick Room, lower)
// effective Speed, with exact speed ties flagged rather than silently
// broken.
func Resolve(actors []Actor, trickRoomActive bool) []Ranked {
	ranked := make([]Ranked, len(actors))
	for i, a := range actors {
		ranked[i] = Ranked{Actor: a, Priority: EffectivePriority(a), Speed: EffectiveSpeed(a)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		if trickRoomActive {
			return ranked[i].Speed < ranked[j].Speed
		}
		return ranked[i].Speed > ranked[j].Speed
	})

	for i := range ranked {
		for j := range ranked {
			if i != j && ranked[i].Priority == ranked[j].Priority && ranked[i].Speed == ranked[j].Speed {
				ranked[i].TiedSpeed = true
			}
		}
	}

	return ranked
}
