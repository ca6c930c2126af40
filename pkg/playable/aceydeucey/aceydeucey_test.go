package aceydeucey

import (
	"testing"

	"cardtable/internal/rng"
	"cardtable/pkg/deck"
	"cardtable/pkg/playable"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testTable(t *testing.T, cpu bool, balances ...int) *table.Table {
	t.Helper()

	tbl := table.New(logrus.StandardLogger())
	for _, balance := range balances {
		var personality *table.CPU
		if cpu {
			personality = table.NewCPU("cpu")
		}

		_, err := tbl.AddSeat("seat", balance, personality)
		assert.NoError(t, err)
	}

	return tbl
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, false, 1000, 1000)
	opts := DefaultOptions()
	opts.Seed = 1

	game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
	a.NoError(err)
	a.Equal(50, game.Pot())
	a.Equal([]int{975, 975}, tbl.Balances())
	a.Equal("Acey Deucey", game.Name())

	_, err = NewGame(logrus.StandardLogger(), testTable(t, false, 1000), opts, rng.NewSeeded(1))
	a.EqualError(err, "game requires at least two players")

	_, err = NewGame(logrus.StandardLogger(), testTable(t, false, 1000, 0), opts, rng.NewSeeded(1))
	a.EqualError(err, "seat cannot cover the ante")
}

func TestNameFromOptions(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.GameType = GameTypeContinuousShoe
	a.Equal("Acey Deucey (Continuous Shoe)", NameFromOptions(opts))

	opts.AllowPass = true
	a.Equal("Acey Deucey (Continuous Shoe and With Passing)", NameFromOptions(opts))
}

func TestGame_playThrough(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, false, 1000, 1000)
	opts := DefaultOptions()
	opts.Seed = 1

	game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
	a.NoError(err)

	// rig the shoe: seat 0 wins its bet on a 7 between 5 and 10
	game.deck.Cards = deck.CardsFromString("5c,10d,7h")

	for {
		updated, err := game.Advance()
		a.NoError(err)
		if !updated {
			break
		}
	}

	round := game.getCurrentRound()
	a.Equal(RoundStatePendingBet, round.State)
	a.Equal(0, game.CurrentSeat())

	// seat 0 can only bet; half-pot max caps it during the first cycle
	a.Equal([]Action{ActionBet}, game.getActionsForParticipant(1))
	a.Equal(25, round.getMaxBet())

	res, updated, err := game.Action(1, &playable.PayloadIn{
		Subject:        "bet",
		AdditionalData: playable.AdditionalData{"amount": float64(25)},
	})
	a.NoError(err)
	a.True(updated)
	a.Equal("OK", res.Value)

	// one more step deals the middle card and settles the bet
	updated, err = game.Advance()
	a.NoError(err)
	a.True(updated)

	a.Equal(RoundStateRoundOver, round.State)
	a.Equal(SingleGameResultWon, round.Game.Result)
	a.Equal(25, game.Pot())
	a.Equal(1000, tbl.Seat(0).Balance.Balance())

	// the next step hands the remaining pot to seat 1's round
	updated, err = game.Advance()
	a.NoError(err)
	a.True(updated)
	a.Equal(1, game.CurrentSeat())
}

func TestGame_Action_validation(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, false, 1000, 1000)
	opts := DefaultOptions()
	opts.Seed = 1

	game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
	a.NoError(err)

	game.deck.Cards = deck.CardsFromString("5c,10d,7h")
	for {
		updated, err := game.Advance()
		a.NoError(err)
		if !updated {
			break
		}
	}

	_, _, err = game.Action(1, &playable.PayloadIn{Subject: "shove"})
	a.EqualError(err, "invalid action: shove")

	// seat 2 is not on the clock
	_, _, err = game.Action(2, &playable.PayloadIn{Subject: "bet"})
	a.EqualError(err, "you cannot perform the action: Bet")

	// passing isn't enabled by default
	_, _, err = game.Action(1, &playable.PayloadIn{Subject: "pass"})
	a.EqualError(err, "you cannot perform the action: Pass")
}

func TestGame_cpuBurnsOnConnector(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, true, 1000, 1000)
	opts := DefaultOptions()
	opts.Seed = 1

	game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
	a.NoError(err)

	// adjacent posts; the CPU owes the burn
	game.deck.Cards = deck.CardsFromString("8h,7s")

	round := game.getCurrentRound()
	for round.State != RoundStateRoundOver {
		acted, err := game.StepCPU()
		a.NoError(err)
		a.True(acted)
	}

	a.Equal(SingleGameResultBurned, round.Game.Result)
	a.Equal(-25, round.Adjustments())
	a.Equal(75, game.Pot())
	a.Equal(950, tbl.Seat(0).Balance.Balance())
}

func TestGame_cpuPassRequiresOption(t *testing.T) {
	a := assert.New(t)

	// seat 0 goes broke on the ante, so its max bet is zero
	newBrokeGame := func(allowPass bool) *Game {
		tbl := testTable(t, true, 25, 1000)
		opts := DefaultOptions()
		opts.Seed = 1
		opts.AllowPass = allowPass

		game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
		a.NoError(err)

		game.deck.Cards = deck.CardsFromString("2c,9d")
		for i := 0; i < 2; i++ {
			_, err := game.StepCPU()
			a.NoError(err)
		}

		a.Equal(RoundStatePendingBet, game.getCurrentRound().State)
		return game
	}

	// passing allowed: the CPU passes
	game := newBrokeGame(true)
	acted, err := game.StepCPU()
	a.NoError(err)
	a.True(acted)
	a.Equal(RoundStatePassed, game.getCurrentRound().State)

	// passing disallowed: the CPU tries the minimum bet instead of quietly
	// passing anyway
	game = newBrokeGame(false)
	_, err = game.StepCPU()
	a.EqualError(err, "bet of ${25} exceeds the max bet of ${0}")
	a.Equal(RoundStatePendingBet, game.getCurrentRound().State)
}

func TestGame_cpuPlaysToCompletion(t *testing.T) {
	a := assert.New(t)

	tbl := testTable(t, true, 1000, 1000, 1000)
	opts := DefaultOptions()
	opts.Seed = 1
	opts.AllowPass = true

	game, err := NewGame(logrus.StandardLogger(), tbl, opts, rng.NewSeeded(1))
	a.NoError(err)

	for i := 0; i < 100000; i++ {
		updated, err := game.StepCPU()
		a.NoError(err)
		if !updated {
			break
		}
	}

	a.Equal(RoundStateComplete, game.getCurrentRound().State)

	// every chip is either on a seat or still in the pot
	a.Equal(3000, tbl.Total()+game.Pot())

	details, over := game.GetEndOfGameDetails()
	a.True(over)

	sum := 0
	for _, adjustment := range details.BalanceAdjustments {
		sum += adjustment
	}
	a.Equal(-game.Pot(), sum)
}
