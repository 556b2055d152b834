package damage

import "github.com/MSS23/vgc-mcp-sub003/types"

// convolve combines two damage-sum distributions (sum -> combination
// count) into the distribution of their addition, used to build up the
// exact combination count for N uses of a move without enumerating
// 16^N rolls directly.
func convolve(a, b map[int]int64) map[int]int64 {
	out := make(map[int]int64, len(a)*len(b))
	for sa, ca := range a {
		for sb, cb := range b {
			out[sa+sb] += ca * cb
		}
	}
	return out
}

// perUseDistribution returns the exact damage-sum distribution for a
// single use of the move (one roll if the move is not a multi-hit move,
// or the convolution of `hits` independent rolls otherwise).
func perUseDistribution(rolls [types.NumRolls]int, hits int) map[int]int64 {
	single := make(map[int]int64, types.NumRolls)
	for _, r := range rolls {
		single[r]++
	}
	dist := map[int]int64{0: 1}
	for i := 0; i < hits; i++ {
		dist = convolve(dist, single)
	}
	return dist
}

// classifyKO implements spec.md 4.5's exact combinatorial KO
// classification: for each candidate use count from 1 to 4, the exact
// count of roll combinations whose total damage reaches the defender's
// HP is computed via convolution, compared against the total combination
// count (16^(uses*hits)) to distinguish guaranteed from merely possible.
// The lowest use count with any nonzero probability is reported, matching
// the convention that a move able to 2HKO is reported as a 2HKO even if
// it could also, less reliably, take three turns.
func classifyKO(rolls [types.NumRolls]int, hits, defenderHP int) types.KOClass {
	if defenderHP <= 0 {
		return types.GuaranteedOHKO
	}

	perUse := perUseDistribution(rolls, hits)

	cumulative := map[int]int64{0: 1}
	for uses := 1; uses <= 4; uses++ {
		cumulative = convolve(cumulative, perUse)

		var koCombinations, total int64
		for sum, count := range cumulative {
			total += count
			if sum >= defenderHP {
				koCombinations += count
			}
		}

		if koCombinations == 0 {
			continue
		}

		guaranteed := koCombinations == total
		switch uses {
		case 1:
			if guaranteed {
				return types.GuaranteedOHKO
			}
			return types.PossibleOHKO
		case 2:
			if guaranteed {
				return types.Guaranteed2HKO
			}
			return types.Possible2HKO
		case 3:
			if guaranteed {
				return types.Guaranteed3HKO
			}
			return types.Possible3HKO
		case 4:
			if guaranteed {
				return types.Guaranteed4HKO
			}
			return types.Possible4HKO
		}
	}

	return types.FivePlusHKO
}
