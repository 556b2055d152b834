package matchup

// leadPredictionScore scores one opposing member for the lead-prediction
// heuristic; PredictOpponentLead takes the top two (spec.md 4.9):
//
//	100*hasFakeOut + 80*hasSetupPriority + 40*hasIntimidate + speed/2
func leadPredictionScore(p Profile) int {
	score := p.EffectiveSpeed() / 2
	if p.HasFakeOut {
		score += 100
	}
	if p.HasSetupPriority {
		score += 80
	}
	if p.HasIntimidate {
		score += 40
	}
	return score
}

// PredictedLead is the opponent's two most likely lead Pokemon, sorted by
// prediction score descending.
type PredictedLead struct {
	First  Profile
	Second Profile
}

// PredictOpponentLead ranks theirs by leadPredictionScore and returns the
// top two as the predicted lead pair.
func PredictOpponentLead(theirs [6]Profile) PredictedLead {
	idx := [6]int{0, 1, 2, 3, 4, 5}
	for i := 1; i < 6; i++ {
		for j := i; j > 0 && leadPredictionScore(theirs[idx[j]]) > leadPredictionScore(theirs[idx[j-1]]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return PredictedLead{First: theirs[idx[0]], Second: theirs[idx[1]]}
}

// LeadPair is one candidate pair of our own Pokemon, scored against the
// predicted opponent lead.
type LeadPair struct {
	First     Profile
	Second    Profile
	Score     int
	Reasoning string
}

// ScoreLeadPairs scores all 15 unordered pairs of yours against the
// predicted opponent lead pair and returns the top three, highest score
// first.
func ScoreLeadPairs(yours [6]Profile, opponentLead PredictedLead) []LeadPair {
	pairs := make([]LeadPair, 0, 15)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			pairs = append(pairs, scoreLeadPair(yours[i], yours[j], opponentLead))
		}
	}

	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j].Score > pairs[j-1].Score; j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}

	if len(pairs) > 3 {
		pairs = pairs[:3]
	}
	return pairs
}

func scoreLeadPair(a, b Profile, lead PredictedLead) LeadPair {
	matrix := BuildMatrix([6]Profile{a, b}, [6]Profile{lead.First, lead.Second})
	total := matrix[0][0] + matrix[0][1] + matrix[1][0] + matrix[1][1]

	reasoning := "balanced matchup against the predicted lead"
	switch {
	case total >= 60:
		reasoning = "strongly favoured against the predicted lead"
	case total >= 20:
		reasoning = "favoured against the predicted lead"
	case total <= -60:
		reasoning = "strongly disadvantaged against the predicted lead"
	case total <= -20:
		reasoning = "disadvantaged against the predicted lead"
	}

	return LeadPair{First: a, Second: b, Score: total, Reasoning: reasoning}
}
