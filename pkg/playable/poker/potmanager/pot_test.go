package potmanager

import (
	"testing"

	"cardtable/pkg/money"

	"github.com/stretchr/testify/assert"
)

// setupPot returns a pot and one balance per stack
func setupPot(stacks ...int) (*Pot, []*money.Money) {
	balances := make([]*money.Money, len(stacks))
	for i, stack := range stacks {
		balances[i] = money.New(stack)
	}

	return New(), balances
}

func intBalances(balances []*money.Money) []int {
	ints := make([]int, len(balances))
	for i, b := range balances {
		ints[i] = b.Balance()
	}

	return ints
}

func TestPot_PushBet(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(100, 100)

	pot.PushBet(0, balances[0], Bet(25))
	a.Equal(75, balances[0].Balance())
	a.Equal(25, pot.AmountFor(0))
	a.True(pot.HasActed(0))
	a.False(pot.HasActed(1))
	a.Equal(25, pot.Total())

	// a bet of money.Max puts the seat all-in for exactly its balance
	pot.PushBet(1, balances[1], Bet(money.Max))
	a.Equal(0, balances[1].Balance())
	a.Equal(100, pot.AmountFor(1))
	a.Equal(125, pot.Total())
	a.Equal(100, pot.CallAmount())

	pot.PushBet(0, balances[0], Fold)
	a.True(pot.HasFolded(0))
	a.False(pot.HasFolded(1))

	// historical bets before the fold still count
	a.Equal(25, pot.AmountFor(0))
	a.Equal(125, pot.Total())

	a.Panics(func() {
		pot.PushBet(0, balances[0], Bet(25))
	})

	a.Panics(func() {
		pot.PushBet(-1, balances[0], Bet(25))
	})
}

func TestPot_NewRound(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(100))

	pot.NewRound()

	a.False(pot.HasActed(0))
	a.False(pot.HasActed(1))

	// contributions survive the round boundary
	a.Equal(100, pot.AmountFor(0))
	a.Equal(100, pot.CallAmount())
	a.Equal(200, pot.Total())

	outcome, _ := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeUndetermined, outcome)
}

func TestPot_CallAmount(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(5))
	pot.PushBet(1, balances[1], Bet(10))
	a.Equal(10, pot.CallAmount())

	// call amount is a max, not position dependent
	for _, stacks := range [][]int{{300, 500, 800}, {800, 300, 500}, {500, 800, 300}} {
		pot, balances := setupPot(stacks...)
		for seat := range balances {
			pot.PushBet(seat, balances[seat], Bet(money.Max))
		}

		a.Equal(800, pot.CallAmount())
	}
}

func TestPot_RoundOutcome(t *testing.T) {
	a := assert.New(t)

	// [5, 10] with both seats still holding chips: contributions differ
	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(5))
	pot.PushBet(1, balances[1], Bet(10))
	outcome, _ := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeUndetermined, outcome)

	// both all-in at different depths: neither owes a match
	pot, balances = setupPot(300, 500)
	pot.PushBet(0, balances[0], Bet(money.Max))
	pot.PushBet(1, balances[1], Bet(money.Max))
	outcome, _ = pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAdvanceToNext, outcome)

	// all-in against two folds: uncontested award
	pot, balances = setupPot(300, 1000, 1000)
	pot.PushBet(0, balances[0], Bet(money.Max))
	pot.PushBet(1, balances[1], Fold)
	pot.PushBet(2, balances[2], Fold)
	outcome, winner := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAwardNow, outcome)
	a.Equal(0, winner)

	// same, with the all-in seat in the middle
	pot, balances = setupPot(1000, 300, 1000)
	pot.PushBet(0, balances[0], Fold)
	pot.PushBet(1, balances[1], Bet(money.Max))
	pot.PushBet(2, balances[2], Fold)
	outcome, winner = pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAwardNow, outcome)
	a.Equal(1, winner)
}

func TestPot_RoundOutcome_waitingOnSeat(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(100))

	// seat 2 hasn't acted yet
	outcome, _ := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeUndetermined, outcome)

	pot.PushBet(2, balances[2], Bet(100))
	outcome, _ = pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAdvanceToNext, outcome)
}

func TestPot_RoundOutcome_seatNeverPlayed(t *testing.T) {
	a := assert.New(t)

	// seat 2 is broke and never contributed; it must not count as a
	// survivor nor hold up the round
	pot, balances := setupPot(1000, 1000, 0)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Fold)

	outcome, winner := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAwardNow, outcome)
	a.Equal(0, winner)
}

func TestPot_RoundOutcome_raiseReopens(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(200))

	// seat 1 raised; seat 0 already acted but no longer matches
	outcome, _ := pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeUndetermined, outcome)

	pot.PushBet(0, balances[0], Bet(100))
	outcome, _ = pot.RoundOutcome(intBalances(balances))
	a.Equal(OutcomeAdvanceToNext, outcome)
}

func TestPot_Clone(t *testing.T) {
	a := assert.New(t)

	pot, balances := setupPot(1000, 1000)
	pot.PushBet(0, balances[0], Bet(100))
	pot.PushBet(1, balances[1], Bet(100))

	clone := pot.Clone()
	a.Equal(200, clone.Total())
	a.Equal(100, clone.AmountFor(0))
	a.True(clone.HasActed(0))

	// chips moved, not duplicated
	a.Equal(0, pot.chips.Balance())
	a.Equal(200, clone.chips.Balance())

	winner := money.New(0)
	a.Equal(200, clone.Award(winner))
	a.Equal(200, winner.Balance())
}
