package handoracle

import (
	"fmt"

	"cardtable/pkg/deck"
)

// CPU heuristic thresholds on the WinProbability scale
const (
	// ProbabilityCall is the 50% line
	ProbabilityCall = 128
	// ProbabilityRaise is the 75% line
	ProbabilityRaise = 192
	// ProbabilityRaiseAlways is the 87.5% line
	ProbabilityRaiseAlways = 224
)

// maximum Chen score (a pair of aces), doubled to stay in integers
const maxChenScoreX2 = 40

// WinProbability estimates the pre-flop strength of a two-card holding on a
// 0..255 fixed-point scale. It is a Chen-formula lookup, not an equity
// calculation: the CPU seats only compare it against fixed thresholds.
func (Live) WinProbability(hole deck.Hand) uint8 {
	if len(hole) != 2 {
		panic(fmt.Sprintf("win probability needs exactly two cards, got %d", len(hole)))
	}

	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}

	// all scores are doubled so the half-point card values stay integral
	score := chenPointsX2(high)

	if high == low {
		score *= 2
		if score < 10 {
			score = 10
		}
	} else {
		gap := high - low - 1

		switch {
		case gap == 1:
			score -= 2
		case gap == 2:
			score -= 4
		case gap == 3:
			score -= 8
		case gap >= 4:
			score -= 10
		}

		// straight potential bonus for close, sub-queen cards
		if gap < 2 && high < deck.Queen {
			score += 2
		}
	}

	if hole[0].Suit == hole[1].Suit {
		score += 4
	}

	if score < 0 {
		score = 0
	}

	probability := score * 255 / maxChenScoreX2
	if probability > 255 {
		probability = 255
	}

	return uint8(probability)
}

// chenPointsX2 is the Chen formula's high-card value, doubled
func chenPointsX2(rank int) int {
	switch rank {
	case deck.Ace:
		return 20
	case deck.King:
		return 16
	case deck.Queen:
		return 14
	case deck.Jack:
		return 12
	default:
		return rank
	}
}
