package aceydeucey

import (
	"errors"
	"fmt"
	"strings"

	"cardtable/internal/rng"
	"cardtable/pkg/deck"
	"cardtable/pkg/money"
	"cardtable/pkg/playable"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

// Game is a game of Acey Deucey. Every seat antes into a shared pot; turns
// rotate around the table until the pot is empty.
type Game struct {
	options Options
	logger  logrus.FieldLogger
	table   *table.Table
	gen     rng.Generator
	deck    *deck.Deck
	pot     *money.Money
	logChan chan []*playable.LogMessage

	turnIndex        int
	rounds           []*Round
	startingBalances []int
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, tbl *table.Table, opts Options, gen rng.Generator) (*Game, error) {
	if tbl.Len() < 2 {
		return nil, errors.New("game requires at least two players")
	}

	if opts.Ante <= 0 {
		return nil, errors.New("ante must be > 0")
	}

	if opts.Ante%money.Unit > 0 {
		return nil, fmt.Errorf("ante must be divisible by ${%d}", money.Unit)
	}

	pot := money.New(0)
	for _, seat := range tbl.Seats() {
		if moved := money.Move(seat.Balance, pot, opts.Ante); moved < opts.Ante {
			return nil, fmt.Errorf("%s cannot cover the ante", seat.Name)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = int64(gen.Intn(1<<31-1)) + 1
	}

	d := deck.New()
	d.Shuffle(seed)

	g := &Game{
		options:          opts,
		logger:           logger,
		table:            tbl,
		gen:              gen,
		deck:             d,
		pot:              pot,
		logChan:          make(chan []*playable.LogMessage, 256),
		startingBalances: tbl.Balances(),
	}

	for i, balance := range g.startingBalances {
		g.startingBalances[i] = balance + opts.Ante
	}

	g.newRound()
	return g, nil
}

// NameFromOptions returns the name for the options
func NameFromOptions(opts Options) string {
	options := make([]string, 0, 2)
	switch opts.GameType {
	case GameTypeContinuousShoe:
		options = append(options, "Continuous Shoe")
	case GameTypeChaos:
		options = append(options, "Chaos")
	}

	if opts.AllowPass {
		options = append(options, "With Passing")
	}

	const name = "Acey Deucey"
	if len(options) > 0 {
		return fmt.Sprintf("%s (%s)", name, strings.Join(options, " and "))
	}

	return name
}

// Name returns the name of the game
func (g *Game) Name() string {
	return NameFromOptions(g.options)
}

// Key returns a unique key
func (g *Game) Key() string {
	return "acey-deucey"
}

// Pot returns the chips currently in the pot
func (g *Game) Pot() int {
	return g.pot.Balance()
}

// Action performs with a message
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (*playable.Response, bool, error) {
	action, err := ActionFromString(message.Subject)
	if err != nil {
		return nil, false, err
	}

	isValidAction := false
	for _, validAction := range g.getActionsForParticipant(playerID) {
		if action == validAction {
			isValidAction = true
			break
		}
	}

	if !isValidAction {
		return nil, false, fmt.Errorf("you cannot perform the action: %s", action)
	}

	round := g.getCurrentRound()

	switch action {
	case ActionPickAceLow:
		err = round.SetAce(false)
	case ActionPickAceHigh:
		err = round.SetAce(true)
	case ActionPass:
		err = round.SetPass()
	case ActionBurn:
		err = round.Burn()
	case ActionBetTheGap:
		err = round.SetBet(betTheGapAmount, true)
	case ActionBet:
		amount, _ := message.AdditionalData.GetInt("amount")
		err = round.SetBet(amount, false)
	default:
		err = fmt.Errorf("unhandled action: %s", action)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the current state of the game for the player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.getParticipantState(playerID),
	}, nil
}

// GetEndOfGameDetails returns the details after a game is over.
// If the game is still in progress, nil will be returned and the second param will be false.
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if g.getCurrentRound().State != RoundStateComplete {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for i, balance := range g.table.Balances() {
		adjustments[int64(i)+1] = balance - g.startingBalances[i]
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.rounds,
	}, true
}

// LogChan should return a channel that a game will send log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// CurrentSeat returns the seat whose round it is
func (g *Game) CurrentSeat() int {
	return g.turnIndex
}

// nextTurn moves to the next seat that can still afford to play
func (g *Game) nextTurn() bool {
	n := g.table.Len()
	for i := 1; i <= n; i++ {
		index := (g.turnIndex + i) % n
		if g.table.Seat(index).Balance.Balance() > 0 {
			g.turnIndex = index
			return true
		}
	}

	return false
}

// newRound starts a new round.
// NOTE: do not call this method until the correct seat is lined up.
func (g *Game) newRound() {
	if g.options.GameType == GameTypeContinuousShoe {
		g.deck.Shuffle(int64(g.gen.Intn(1<<31-1)) + 1)
	}

	r := NewRound(g.turnIndex, g.deck, g.pot, g.table.Seat(g.turnIndex).Balance, g.options.Ante)
	r.logChan = g.logChan
	g.rounds = append(g.rounds, r)

	// limit the bet to half the pot until everyone has had a turn
	r.HalfPotMax = len(g.rounds) <= g.table.Len()
}

func (g *Game) endRound() error {
	if g.pot.Balance() > 0 && g.nextTurn() {
		g.newRound()
		return nil
	}

	g.getCurrentRound().State = RoundStateComplete
	return nil
}

// Advance runs the automatic state transitions: dealing cards, settling
// passes, and rotating games and rounds. It returns true if the state
// changed; false means the game is waiting on a player decision or is over.
func (g *Game) Advance() (bool, error) {
	currentRound := g.getCurrentRound()
	switch currentRound.State {
	case RoundStateStart, RoundStateFirstCardDealt, RoundStateBetPlaced:
		if g.options.GameType == GameTypeChaos {
			// permute what's left of the shoe before every card
			g.deck.ShuffleDiscards(g.deck.Cards)
		}

		if err := currentRound.DealCard(); err != nil {
			return false, err
		}

		return true, nil
	case RoundStatePassed:
		currentRound.PassRound()
		return true, nil
	case RoundStateRoundOver:
		if err := g.endRound(); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

func (g *Game) getCurrentRound() *Round {
	return g.rounds[len(g.rounds)-1]
}
