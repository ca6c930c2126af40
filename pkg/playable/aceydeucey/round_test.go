package aceydeucey

import (
	"testing"

	"cardtable/pkg/deck"
	"cardtable/pkg/money"

	"github.com/stretchr/testify/assert"
)

// riggedDeck returns a deck that deals the given cards in order
func riggedDeck(cards string) *deck.Deck {
	d := deck.New()
	d.SetSeed(1)
	d.Cards = deck.CardsFromString(cards)
	return d
}

func testRound(t *testing.T, pot int, cards string) (*Round, *money.Money, *money.Money) {
	t.Helper()

	potMoney := money.New(pot)
	balance := money.New(1000)
	return NewRound(0, riggedDeck(cards), potMoney, balance, 25), potMoney, balance
}

func TestRound_connectorBurn(t *testing.T) {
	a := assert.New(t)

	round, pot, balance := testRound(t, 100, "5c,6d")
	a.NoError(round.DealCard())
	a.Equal(RoundStateFirstCardDealt, round.State)

	// adjacent posts leave no gap; the only move is the burn
	a.NoError(round.DealCard())
	a.Equal(RoundStatePendingBurn, round.State)
	a.EqualError(round.SetBet(50, false), "cannot place a bet from state: pending-burn")
	a.EqualError(round.SetPass(), "cannot pass from state: pending-burn")
	a.EqualError(round.DealCard(), "cannot deal card from state: pending-burn")

	a.NoError(round.Burn())
	a.Equal(RoundStateRoundOver, round.State)
	a.Equal(SingleGameResultBurned, round.Game.Result)
	a.Equal(-25, round.Adjustments())
	a.Equal(125, pot.Balance())
	a.Equal(975, balance.Balance())
}

func TestRound_pairBurn(t *testing.T) {
	a := assert.New(t)

	round, pot, balance := testRound(t, 200, "5c,5d")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())
	a.Equal(RoundStatePendingBurn, round.State)

	a.NoError(round.Burn())
	a.Equal(SingleGameResultBurned, round.Game.Result)
	a.Equal(-25, round.Adjustments())
	a.Equal(225, pot.Balance())
	a.Equal(975, balance.Balance())

	// the round is settled; nothing more to burn
	a.EqualError(round.Burn(), "round is over")
}

func TestRound_win(t *testing.T) {
	a := assert.New(t)

	round, pot, balance := testRound(t, 100, "5c,10d,7h")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())
	a.Equal(RoundStatePendingBet, round.State)

	a.NoError(round.SetBet(50, false))
	a.Equal(RoundStateBetPlaced, round.State)

	a.NoError(round.DealCard())
	a.Equal(RoundStateRoundOver, round.State)
	a.Equal(SingleGameResultWon, round.Game.Result)
	a.Equal(50, round.Adjustments())
	a.Equal(50, pot.Balance())
	a.Equal(1050, balance.Balance())
}

func TestRound_lose(t *testing.T) {
	a := assert.New(t)

	round, pot, balance := testRound(t, 100, "5c,10d,12h")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())
	a.NoError(round.SetBet(50, false))
	a.NoError(round.DealCard())

	a.Equal(SingleGameResultLost, round.Game.Result)
	a.Equal(-50, round.Adjustments())
	a.Equal(150, pot.Balance())
	a.Equal(950, balance.Balance())
}

func TestRound_post(t *testing.T) {
	a := assert.New(t)

	// the middle card pairs an end card, so the penalty is double the bet
	round, pot, balance := testRound(t, 100, "5c,10d,10h")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())
	a.NoError(round.SetBet(50, false))
	a.NoError(round.DealCard())

	a.Equal(SingleGameResultPost, round.Game.Result)
	a.Equal(-100, round.Adjustments())
	a.Equal(200, pot.Balance())
	a.Equal(900, balance.Balance())
}

func TestRound_aceDecision(t *testing.T) {
	a := assert.New(t)

	round, _, _ := testRound(t, 200, "14c,3d,2h")
	a.NoError(round.DealCard())
	a.Equal(RoundStatePendingAceDecision, round.State)

	a.EqualError(round.DealCard(), "cannot deal card from state: pending-ace-decision")

	a.NoError(round.SetAce(false))
	a.Equal(RoundStateFirstCardDealt, round.State)
	a.Equal(deck.LowAce, round.Game.firstCardRank())

	// ace low vs a 3 leaves a one-card gap
	a.NoError(round.DealCard())
	a.Equal(RoundStatePendingBet, round.State)
	a.True(round.canBetTheGap())

	a.NoError(round.SetBet(betTheGapAmount, true))
	a.NoError(round.DealCard())
	a.Equal(SingleGameResultWon, round.Game.Result)

	// a half-pot win pays half the pot, not the bet
	a.Equal(100, round.Adjustments())
}

func TestRound_aceHigh(t *testing.T) {
	a := assert.New(t)

	round, _, _ := testRound(t, 200, "14c,10d,12h")
	a.NoError(round.DealCard())
	a.NoError(round.SetAce(true))
	a.Equal(deck.Ace, round.Game.firstCardRank())

	a.NoError(round.DealCard())
	a.NoError(round.SetBet(50, false))
	a.NoError(round.DealCard())
	a.Equal(SingleGameResultWon, round.Game.Result)
}

func TestRound_SetBet_validation(t *testing.T) {
	a := assert.New(t)

	round, _, _ := testRound(t, 200, "5c,10d,7h")
	a.EqualError(round.SetBet(50, false), "cannot place a bet from state: start")

	a.NoError(round.DealCard())
	a.NoError(round.DealCard())

	a.EqualError(round.SetBet(0, false), "bet must be at least ${25}")
	a.EqualError(round.SetBet(30, false), "bet must be in increments of ${25}")
	a.EqualError(round.SetBet(225, false), "bet of ${225} exceeds the max bet of ${200}")
	a.EqualError(round.SetBet(50, true), "bet the gap for half-pot requires a one-card gap")
}

func TestRound_maxBet(t *testing.T) {
	a := assert.New(t)

	round, _, balance := testRound(t, 200, "5c,10d")
	a.Equal(200, round.getMaxBet())

	round.HalfPotMax = true
	a.Equal(100, round.getMaxBet())

	// the max bet never exceeds the player's balance
	round.HalfPotMax = false
	_ = balance.TakeAllBut(0)
	a.Equal(0, round.getMaxBet())
}

func TestRound_pass(t *testing.T) {
	a := assert.New(t)

	round, pot, balance := testRound(t, 200, "5c,10d")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())

	a.NoError(round.SetPass())
	a.Equal(RoundStatePassed, round.State)

	round.PassRound()
	a.Equal(RoundStateRoundOver, round.State)
	a.Equal(SingleGameResultPassed, round.Game.Result)
	a.Equal(200, pot.Balance())
	a.Equal(1000, balance.Balance())
}

func TestRound_deckExhaustion(t *testing.T) {
	a := assert.New(t)

	round, _, _ := testRound(t, 200, "5c,10d")
	a.NoError(round.DealCard())
	a.NoError(round.DealCard())
	a.NoError(round.SetBet(50, false))

	// the shoe is empty; the middle card comes from a rebuilt shoe that
	// excludes the two cards on the table
	a.Equal(0, round.deck.CardsLeft())
	a.NoError(round.DealCard())

	game := round.Game
	a.NotNil(game.MiddleCard)
	a.False(game.MiddleCard.Equal(game.FirstCard))
	a.False(game.MiddleCard.Equal(game.LastCard))
}
