package matchup

import (
	"github.com/MSS23/vgc-mcp-sub003/priority"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Turn1Action is one lead's projected opening move, ordered by
// EffectivePriority then (Trick-Room-aware) EffectiveSpeed.
type Turn1Action struct {
	Name     string
	Move     types.Move
	Priority int
	Speed    int
}

// ProjectTurn1Order projects each of the four leads' most likely move (its
// highest base-power damaging move, falling back to the first known move
// for a pure-status profile) and orders the resulting actions the same way
// the priority package orders a real turn (spec.md 4.9).
func ProjectTurn1Order(yourLeft, yourRight, theirLeft, theirRight Profile, trickRoomActive bool) []Turn1Action {
	leads := []struct {
		name string
		p    Profile
	}{
		{"yours-1", yourLeft},
		{"yours-2", yourRight},
		{"theirs-1", theirLeft},
		{"theirs-2", theirRight},
	}

	actors := make([]priority.Actor, 0, 4)
	for _, lead := range leads {
		move := likelyMove(lead.p)
		actors = append(actors, priority.Actor{
			Name:     lead.name,
			Build:    lead.p.Build,
			Move:     move,
			Ability:  lead.p.Ability,
			Item:     lead.p.Item,
			AtFullHP: true,
		})
	}

	ranked := priority.Resolve(actors, trickRoomActive)

	actions := make([]Turn1Action, len(ranked))
	for i, r := range ranked {
		actions[i] = Turn1Action{Name: r.Actor.Name, Move: r.Actor.Move, Priority: r.Priority, Speed: r.Speed}
	}
	return actions
}

// likelyMove returns the profile's best-power damaging move, or its first
// known move when it carries none (a pure support/status lead).
func likelyMove(p Profile) types.Move {
	var best types.Move
	found := false
	for _, m := range p.Moves {
		if !m.IsDamaging() {
			continue
		}
		if !found || m.BasePower > best.BasePower {
			best = m
			found = true
		}
	}
	if found {
		return best
	}
	if len(p.Moves) > 0 {
		return p.Moves[0]
	}
	return types.Move{}
}
