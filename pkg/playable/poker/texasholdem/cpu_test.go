package texasholdem

import (
	"testing"

	"cardtable/internal/rng"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testCPUGame(t *testing.T, balances ...int) (*Game, *table.Table, *scriptedOracle) {
	t.Helper()
	a := assert.New(t)

	tbl := table.New(logrus.StandardLogger())
	for _, balance := range balances {
		_, err := tbl.AddSeat("cpu", balance, table.NewCPU("cpu"))
		a.NoError(err)
	}

	oracle := newScriptedOracle()
	opts := DefaultOptions()
	opts.Seed = 1

	game, err := NewGame(logrus.StandardLogger(), tbl, 0, opts, oracle, rng.NewSeeded(1))
	a.NoError(err)
	a.NoError(game.Deal())

	return game, tbl, oracle
}

func TestGame_StepCPU_humanTurn(t *testing.T) {
	a := assert.New(t)

	tbl := table.New(logrus.StandardLogger())
	_, _ = tbl.AddSeat("human", 1000, nil)
	_, _ = tbl.AddSeat("cpu", 1000, table.NewCPU("cpu"))

	opts := DefaultOptions()
	opts.Seed = 1
	game, err := NewGame(logrus.StandardLogger(), tbl, 0, opts, newScriptedOracle(), rng.NewSeeded(1))
	a.NoError(err)
	a.NoError(game.Deal())

	// heads-up the human dealer opens, so the CPU has nothing to do
	acted, err := game.StepCPU()
	a.NoError(err)
	a.False(acted)
}

func TestGame_StepCPU_weakHandsFoldOut(t *testing.T) {
	a := assert.New(t)

	game, tbl, _ := testCPUGame(t, 1000, 1000)

	// both holdings score zero: the opener folds to the big blind
	acted, err := game.StepCPU()
	a.NoError(err)
	a.True(acted)

	a.Equal(DealerStateDone, game.State())
	a.Equal([]int{925, 1075}, tbl.Balances())
}

func TestGame_StepCPU_strongHandRaises(t *testing.T) {
	a := assert.New(t)

	game, tbl, oracle := testCPUGame(t, 1000, 1000)
	oracle.probs[game.Hand(0).String()] = 255

	acted, err := game.StepCPU()
	a.NoError(err)
	a.True(acted)

	// the raise is one lower-limit bet over the call amount
	a.Equal(225, game.CallAmount())

	// the big blind's zero-strength hand folds to it
	acted, err = game.StepCPU()
	a.NoError(err)
	a.True(acted)

	a.Equal(DealerStateDone, game.State())
	a.Equal([]int{1125, 875}, tbl.Balances())
}

func TestGame_StepCPU_gameOver(t *testing.T) {
	a := assert.New(t)

	game, _, _ := testCPUGame(t, 1000, 1000)
	_, _ = game.StepCPU()

	acted, err := game.StepCPU()
	a.NoError(err)
	a.False(acted)
}
