package matchup

import "github.com/MSS23/vgc-mcp-sub003/types"

// ThreatLevel is the closed set of severities a threat rating can take.
type ThreatLevel int

const (
	ThreatLow ThreatLevel = iota
	ThreatMedium
	ThreatHigh
	ThreatCritical
)

func (t ThreatLevel) String() string {
	switch t {
	case ThreatCritical:
		return "CRITICAL"
	case ThreatHigh:
		return "HIGH"
	case ThreatMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Threat summarizes how dangerous one opposing Pokemon is to the whole team:
// how many of yours it outspeeds, and how many it OHKOs or 2HKOs with its
// best move (spec.md 4.9).
type Threat struct {
	Opponent  Profile
	Outspeeds int
	OHKOs     int
	TwoHKOs   int
	Level     ThreatLevel
}

// RankThreats scores every opposing Pokemon against the whole team and
// sorts the result most dangerous first.
func RankThreats(yours [6]Profile, theirs [6]Profile) []Threat {
	threats := make([]Threat, 0, 6)
	for _, opp := range theirs {
		threats = append(threats, scoreThreat(opp, yours))
	}

	for i := 1; i < len(threats); i++ {
		for j := i; j > 0 && threatLess(threats[j], threats[j-1]); j-- {
			threats[j], threats[j-1] = threats[j-1], threats[j]
		}
	}
	return threats
}

func scoreThreat(opp Profile, yours [6]Profile) Threat {
	t := Threat{Opponent: opp}
	ctx := types.ModifierContext{}

	for _, mine := range yours {
		if opp.EffectiveSpeed() > mine.EffectiveSpeed() {
			t.Outspeeds++
		}
		_, result, ok := bestDamagingMove(opp, mine, ctx)
		if !ok {
			continue
		}
		switch result.KO {
		case types.GuaranteedOHKO, types.PossibleOHKO:
			t.OHKOs++
		case types.Guaranteed2HKO, types.Possible2HKO:
			t.TwoHKOs++
		}
	}

	t.Level = classifyThreatLevel(t)
	return t
}

func classifyThreatLevel(t Threat) ThreatLevel {
	switch {
	case t.OHKOs >= 4 || (t.OHKOs >= 2 && t.Outspeeds >= 4):
		return ThreatCritical
	case t.OHKOs >= 2 || t.TwoHKOs >= 4 || t.Outspeeds >= 5:
		return ThreatHigh
	case t.OHKOs >= 1 || t.TwoHKOs >= 2 || t.Outspeeds >= 3:
		return ThreatMedium
	default:
		return ThreatLow
	}
}

// threatLess orders threats highest-severity first, using OHKO count then
// 2HKO count then outspeed count as tiebreakers, following the
// multi-criteria comparator style used elsewhere in this engine for
// ranking.
func threatLess(a, b Threat) bool {
	if a.Level != b.Level {
		return a.Level > b.Level
	}
	if a.OHKOs != b.OHKOs {
		return a.OHKOs > b.OHKOs
	}
	if a.TwoHKOs != b.TwoHKOs {
		return a.TwoHKOs > b.TwoHKOs
	}
	return a.Outspeeds > b.Outspeeds
}
