package rules

import "github.com/shopspring/decimal"

// WinnerEstimate is the number of audience members expected to earn a
// reward. IsMaximum marks the count as an upper bound rather than an exact
// prediction: a threshold qualifier depends on future performance data, so
// the best the engine can say ahead of time is "at most everyone".
type WinnerEstimate struct {
	Count     int
	IsMaximum bool
}

// EstimateWinners computes the winner count for a qualifier over an
// audience of the given size. Top-N is exact (rank order always yields N
// winners, fewer only when the audience is smaller), everyone is exact by
// definition, threshold is an upper bound.
func EstimateWinners(qualifier QualifierType, qualifierValue, audienceSize int) WinnerEstimate {
	mustQualifier(qualifier)
	switch qualifier {
	case QualifierEveryone:
		return WinnerEstimate{Count: audienceSize}
	case QualifierThreshold:
		return WinnerEstimate{Count: audienceSize, IsMaximum: true}
	default: // QualifierTopN
		n := qualifierValue
		if audienceSize < n {
			n = audienceSize
		}
		if n < 0 {
			n = 0
		}
		return WinnerEstimate{Count: n}
	}
}

// AssignRanks assigns a rank number to each entry of a score list sorted in
// descending order. Tied scores share a rank; what happens after the tie
// group depends on the rule:
//
//	standard: 1,2,2,4 (the next distinct rank skips the tie group)
//	dense:    1,2,2,3 (the next distinct rank is the following integer)
func AssignRanks(scores []decimal.Decimal, rule TieBreakerRule) []int {
	mustTieBreakerRule(rule)
	ranks := make([]int, len(scores))
	for i := range scores {
		if i == 0 {
			ranks[0] = 1
			continue
		}
		if scores[i].Equal(scores[i-1]) {
			ranks[i] = ranks[i-1]
			continue
		}
		if rule == TieBreakDense {
			ranks[i] = ranks[i-1] + 1
		} else {
			ranks[i] = i + 1
		}
	}
	return ranks
}

// RankPayouts maps each ranked entry to its reward amount from the tier
// schedule (tiers[0] pays rank 1). Ranks beyond the schedule pay zero.
//
// With a full payout every member of a tie group receives the whole tier
// amount, so total spend for that rank grows with the group size. With a
// split payout the tier amount is divided evenly across the group and total
// spend for the rank stays constant.
func RankPayouts(ranks []int, tiers []decimal.Decimal, payout TieBreakerPayout) []decimal.Decimal {
	mustTieBreakerPayout(payout)

	groupSize := make(map[int]int, len(ranks))
	for _, r := range ranks {
		groupSize[r]++
	}

	amounts := make([]decimal.Decimal, len(ranks))
	for i, r := range ranks {
		if r < 1 || r > len(tiers) {
			amounts[i] = decimal.Zero
			continue
		}
		tier := tiers[r-1]
		if payout == PayoutSplit && groupSize[r] > 1 {
			amounts[i] = tier.Div(decimal.NewFromInt(int64(groupSize[r])))
		} else {
			amounts[i] = tier
		}
	}
	return amounts
}
