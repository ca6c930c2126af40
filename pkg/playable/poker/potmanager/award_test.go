package potmanager

import (
	"testing"

	"cardtable/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestPot_Award(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(200))
	pot.PushBet(2, balances[2], Fold)
	pot.PushBet(0, balances[0], Fold)

	// folded chips are swept too
	a.Equal(300, pot.Award(balances[1]))
	a.Equal(1100, balances[1].Balance())
	a.Equal(0, pot.chips.Balance())

	total := 0
	for _, b := range balances {
		total += b.Balance()
	}
	a.Equal(3000, total)
}

func TestPot_AwardMultiple(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(300, 500, 800)
	for seat := range balances {
		pot.PushBet(seat, balances[seat], Bet(money.Max))
	}

	layers := pot.Eligibilities(intBalances(balances))
	a.Equal(3, len(layers))

	// seat 0 takes the main pot, seat 1 the side pot, seat 2 its own refund
	pot.AwardMultiple([]SeatAward{
		{Seat: 0, Amount: layers[0].Amount},
		{Seat: 1, Amount: layers[1].Amount},
		{Seat: 2, Amount: layers[2].Amount},
	}, balances)

	a.Equal(900, balances[0].Balance())
	a.Equal(400, balances[1].Balance())
	a.Equal(300, balances[2].Balance())

	total := 0
	for _, b := range balances {
		total += b.Balance()
	}
	a.Equal(1600, total)
}

func TestPot_AwardMultiple_anyWinnerAssignmentDrains(t *testing.T) {
	a := assert.New(t)

	// for every choice of layer winners the pile must come out exactly empty
	for _, winners := range [][]int{{0, 1, 2}, {1, 1, 2}, {2, 2, 2}, {0, 2, 2}} {
		pot, balances := setupPot(300, 500, 800)
		for seat := range balances {
			pot.PushBet(seat, balances[seat], Bet(money.Max))
		}

		layers := pot.Eligibilities(intBalances(balances))
		awards := make([]SeatAward, len(layers))
		for i, layer := range layers {
			awards[i] = SeatAward{Seat: winners[i], Amount: layer.Amount}
		}

		a.NotPanics(func() {
			pot.AwardMultiple(awards, balances)
		})
		a.Equal(0, pot.chips.Balance())
	}
}

func TestPot_AwardMultiple_badMath(t *testing.T) {
	a := assert.New(t)

	// asking for more than the pot holds
	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(100))
	a.Panics(func() {
		pot.AwardMultiple([]SeatAward{{Seat: 0, Amount: 300}}, balances)
	})

	// leaving money behind
	pot, balances = setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(100))
	a.Panics(func() {
		pot.AwardMultiple([]SeatAward{{Seat: 0, Amount: 100}}, balances)
	})

	// unknown seat
	pot, balances = setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	a.Panics(func() {
		pot.AwardMultiple([]SeatAward{{Seat: 5, Amount: 100}}, balances)
	})
}
