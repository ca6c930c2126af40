package handoracle

import (
	"testing"

	"cardtable/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func hand(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestLive_Evaluate(t *testing.T) {
	a := assert.New(t)

	oracle := Live{}
	community := hand("2c,7d,9h,11s,13c")

	pairOfAces := oracle.Evaluate(community, hand("14c,14d"))
	kingHigh := oracle.Evaluate(community, hand("3d,4h"))

	a.Greater(pairOfAces, kingHigh)
	a.Greater(kingHigh, WorstRank)

	// royal flush is the best possible hand
	royal := oracle.Evaluate(hand("10s,11s,12s,13s,14s"), nil)
	quads := oracle.Evaluate(hand("14c,14d,14h,14s,13c"), nil)
	a.Greater(royal, quads)

	// seven-card evaluation picks the best five
	sevenCards := oracle.Evaluate(hand("2c,7d,9h,11s,13c"), hand("2d,2h"))
	trips := oracle.Evaluate(hand("2c,2d,2h,11s,13c"), nil)
	a.Equal(trips, sevenCards)
}

func TestLive_Evaluate_totalOrder(t *testing.T) {
	a := assert.New(t)

	oracle := Live{}
	community := hand("5c,8d,10h,12s,3c")

	// identical holdings tie regardless of order
	a.Equal(
		oracle.Evaluate(community, hand("14c,6d")),
		oracle.Evaluate(community, hand("6d,14c")),
	)
}

func TestHandDescription(t *testing.T) {
	a := assert.New(t)
	a.Equal("Straight Flush", HandDescription(hand("10s,11s,12s,13s,14s"), nil))
	a.Equal("Pair", HandDescription(hand("2c,2d,9h,11s,13c"), nil))
}

func TestLive_WinProbability(t *testing.T) {
	a := assert.New(t)

	oracle := Live{}

	aces := oracle.WinProbability(hand("14c,14d"))
	kings := oracle.WinProbability(hand("13c,13d"))
	suitedAceKing := oracle.WinProbability(hand("14s,13s"))
	trash := oracle.WinProbability(hand("7c,2d"))

	a.Equal(uint8(255), aces)
	a.Greater(aces, kings)
	a.Greater(kings, suitedAceKing)
	a.Greater(suitedAceKing, trash)

	// aces clear every CPU threshold; trash clears none
	a.GreaterOrEqual(aces, uint8(ProbabilityRaiseAlways))
	a.Less(trash, uint8(ProbabilityCall))

	// suit order doesn't matter
	a.Equal(
		oracle.WinProbability(hand("9c,10d")),
		oracle.WinProbability(hand("10d,9c")),
	)

	a.Panics(func() {
		oracle.WinProbability(hand("2c,3c,4c"))
	})
}
