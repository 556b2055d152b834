package matchup

import (
	"fmt"
	"strings"
)

// WinCondition is the closed set of high-level strategies a game plan can
// recommend, classified from the aggregate matrix sign and magnitude
// (spec.md 4.9).
type WinCondition int

const (
	BalancedPlay WinCondition = iota
	OffensivePressure
	DefensivePivoting
)

func (w WinCondition) String() string {
	switch w {
	case OffensivePressure:
		return "Offensive pressure"
	case DefensivePivoting:
		return "Defensive pivoting"
	default:
		return "Balanced play"
	}
}

// GamePlan is the synthesized matchup report: the scoring matrix, ranked
// threats, top lead pairs, the turn-1 action sequence, a win-condition
// classification, and a bring-4 recommendation (spec.md 4.9).
type GamePlan struct {
	Matrix       Matrix
	Threats      []Threat
	LeadPairs    []LeadPair
	Turn1Order   []Turn1Action
	WinCondition WinCondition
	BringFour    []Profile
}

// BuildGamePlan runs the full matchup pipeline: matrix, threat ranking,
// opponent-lead prediction, lead-pair scoring, turn-1 ordering, and the
// win-condition and bring-4 synthesis.
func BuildGamePlan(yours, theirs [6]Profile, trickRoomActive bool) GamePlan {
	matrix := BuildMatrix(yours, theirs)
	threats := RankThreats(yours, theirs)
	opponentLead := PredictOpponentLead(theirs)
	leadPairs := ScoreLeadPairs(yours, opponentLead)

	var turn1 []Turn1Action
	if len(leadPairs) > 0 {
		turn1 = ProjectTurn1Order(leadPairs[0].First, leadPairs[0].Second, opponentLead.First, opponentLead.Second, trickRoomActive)
	}

	return GamePlan{
		Matrix:       matrix,
		Threats:      threats,
		LeadPairs:    leadPairs,
		Turn1Order:   turn1,
		WinCondition: classifyWinCondition(matrix),
		BringFour:    bringFour(yours, matrix),
	}
}

// classifyWinCondition reads the matrix's aggregate sign and magnitude: a
// strongly positive team total favours pressing the offensive advantage,
// a strongly negative total favours pivoting defensively, and anything in
// between is balanced (spec.md 4.9).
func classifyWinCondition(m Matrix) WinCondition {
	total := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			total += m[i][j]
		}
	}

	switch {
	case total >= 300:
		return OffensivePressure
	case total <= -300:
		return DefensivePivoting
	default:
		return BalancedPlay
	}
}

// bringFour ranks all six team members by their matrix row sum (how well
// they fare against the whole opposing roster) and returns the top four,
// the recommended Bring 4 (spec.md 4.9).
func bringFour(yours [6]Profile, m Matrix) []Profile {
	type scored struct {
		profile Profile
		sum     int
	}
	ranked := make([]scored, 6)
	for i := 0; i < 6; i++ {
		sum := 0
		for j := 0; j < 6; j++ {
			sum += m[i][j]
		}
		ranked[i] = scored{profile: yours[i], sum: sum}
	}

	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].sum > ranked[j-1].sum; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	top := make([]Profile, 0, 4)
	for i := 0; i < 4 && i < len(ranked); i++ {
		top = append(top, ranked[i].profile)
	}
	return top
}

// RenderMarkdown formats the game plan as the Markdown report spec.md 4.9
// describes: the matrix table, the threat list, the top lead pairs with
// reasoning, the turn-1 action sequence, and the win condition.
func (g GamePlan) RenderMarkdown(yourNames, theirNames [6]string) string {
	var b strings.Builder

	b.WriteString("## Matchup Matrix\n\n")
	b.WriteString("| |")
	for _, n := range theirNames {
		fmt.Fprintf(&b, " %s |", n)
	}
	b.WriteString("\n|---|")
	for range theirNames {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for i, n := range yourNames {
		fmt.Fprintf(&b, "| %s |", n)
		for j := range theirNames {
			fmt.Fprintf(&b, " %d |", g.Matrix[i][j])
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Threats\n\n")
	for _, t := range g.Threats {
		fmt.Fprintf(&b, "- **%s**: outspeeds %d, OHKOs %d, 2HKOs %d\n", t.Level, t.Outspeeds, t.OHKOs, t.TwoHKOs)
	}

	b.WriteString("\n## Top Lead Pairs\n\n")
	for _, lp := range g.LeadPairs {
		fmt.Fprintf(&b, "- score %d: %s\n", lp.Score, lp.Reasoning)
	}

	b.WriteString("\n## Turn 1\n\n")
	for i, action := range g.Turn1Order {
		fmt.Fprintf(&b, "%d. %s uses %s (priority %d, speed %d)\n", i+1, action.Name, action.Move.Name, action.Priority, action.Speed)
	}

	fmt.Fprintf(&b, "\n## Win Condition\n\n%s\n", g.WinCondition)

	return b.String()
}
