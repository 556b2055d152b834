package matchup

import (
	"github.com/MSS23/vgc-mcp-sub003/typechart"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Matrix is the 6x6 scoring grid: Matrix[i][j] scores yours[i] against
// theirs[j], positive favouring yours[i] (spec.md 4.9).
type Matrix [6][6]int

// BuildMatrix scores every (yours[i], theirs[j]) pair by combining speed
// advantage, best-case offensive damage each way, type-advantage count,
// and priority-move ownership, clamped to roughly [-100, 100].
func BuildMatrix(yours, theirs [6]Profile) Matrix {
	var m Matrix
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			m[i][j] = scoreCell(yours[i], theirs[j])
		}
	}
	return m
}

func scoreCell(a, b Profile) int {
	score := 0

	switch {
	case a.EffectiveSpeed() > b.EffectiveSpeed():
		score += 15
	case a.EffectiveSpeed() < b.EffectiveSpeed():
		score -= 15
	}

	ctxAB := types.ModifierContext{}
	ctxBA := types.ModifierContext{}
	_, resultAB, okAB := bestDamagingMove(a, b, ctxAB)
	_, resultBA, okBA := bestDamagingMove(b, a, ctxBA)

	if okAB {
		score += int(resultAB.MaxPercent())
	}
	if okBA {
		score -= int(resultBA.MaxPercent())
	}

	score += typeAdvantageCount(a.Build.DefensiveTypes().Types(), b.Build.DefensiveTypes())
	score -= typeAdvantageCount(b.Build.DefensiveTypes().Types(), a.Build.DefensiveTypes())

	if hasPriorityMove(a) && !hasPriorityMove(b) {
		score += 10
	} else if hasPriorityMove(b) && !hasPriorityMove(a) {
		score -= 10
	}

	return clampScore(score)
}

func clampScore(s int) int {
	if s > 100 {
		return 100
	}
	if s < -100 {
		return -100
	}
	return s
}

// typeAdvantageCount counts how many of attackerTypes are super-effective
// against defenderTypes, using the attacking types as candidate move types.
func typeAdvantageCount(attackerTypes []types.Type, defenderTypes types.TypeList) int {
	count := 0
	for _, t := range attackerTypes {
		if typechart.Against(t, defenderTypes) > 1.0 {
			count++
		}
	}
	return count
}

func hasPriorityMove(p Profile) bool {
	for _, m := range p.Moves {
		if m.Priority > 0 {
			return true
		}
	}
	return false
}
