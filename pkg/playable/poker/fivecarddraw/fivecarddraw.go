package fivecarddraw

import (
	"errors"
	"fmt"
	"sort"

	"cardtable/internal/rng"
	"cardtable/pkg/deck"
	"cardtable/pkg/money"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/poker/handoracle"
	"cardtable/pkg/playable/poker/potmanager"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

// maxTrade is how many cards a seat may trade in the draw phase
const maxTrade = 3

var errBettingRoundIsOver = errors.New("betting round is over")

// ErrNotYourTurn is an error when a seat acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// Game is a single hand of Five Card Draw. Everyone antes, bets once on the
// dealt cards, trades up to three, and bets again before the showdown.
type Game struct {
	options     Options
	logger      logrus.FieldLogger
	oracle      handoracle.Oracle
	gen         rng.Generator
	table       *table.Table
	dealerIndex int

	dealerState DealerState
	deck        *deck.Deck
	hands       []deck.Hand
	discards    deck.Hand
	pot         *potmanager.Pot
	actorIndex  int
	traded      map[int]bool

	startingBalances []int
	results          map[int]int
	revealed         map[int]bool
	logChan          chan []*playable.LogMessage
}

// Options configures how Five Card Draw is played
type Options struct {
	Ante       int
	LowerLimit int
	// Seed shuffles the deck deterministically when nonzero
	Seed int64
}

// DefaultOptions returns the default options for Five Card Draw
func DefaultOptions() Options {
	return Options{
		Ante:       25,
		LowerLimit: 100,
	}
}

func validateOptions(opts Options) error {
	if opts.Ante <= 0 {
		return errors.New("ante must be > 0")
	}

	if opts.Ante%money.Unit > 0 {
		return fmt.Errorf("ante must be divisible by ${%d}", money.Unit)
	}

	if opts.LowerLimit <= 0 {
		return errors.New("lower limit must be > 0")
	}

	if opts.LowerLimit%money.Unit > 0 {
		return fmt.Errorf("lower limit must be divisible by ${%d}", money.Unit)
	}

	return nil
}

// NewGame returns a new hand of Five Card Draw
func NewGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, opts Options, oracle handoracle.Oracle, gen rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if tbl.Len() < 2 {
		return nil, errors.New("there must be at least two players")
	}

	if dealerIndex < 0 || dealerIndex >= tbl.Len() {
		return nil, fmt.Errorf("invalid dealer index: %d", dealerIndex)
	}

	return &Game{
		options:     opts,
		logger:      logger,
		oracle:      oracle,
		gen:         gen,
		table:       tbl,
		dealerIndex: dealerIndex,
		dealerState: DealerStateUndealt,
		traded:      make(map[int]bool),
		results:     make(map[int]int),
		revealed:    make(map[int]bool),
		logChan:     make(chan []*playable.LogMessage, 256),
	}, nil
}

// Deal shuffles, collects the antes, deals five cards down to each funded
// seat, and opens the first betting round
func (g *Game) Deal() error {
	if g.dealerState != DealerStateUndealt {
		return fmt.Errorf("cannot deal from state %s", g.dealerState)
	}

	g.startingBalances = g.table.Balances()

	if len(g.dealtSeats()) < 2 {
		return errors.New("not enough funded players to deal")
	}

	seed := g.options.Seed
	if seed == 0 {
		seed = int64(g.gen.Intn(1<<31-1)) + 1
	}

	g.deck = deck.New()
	g.deck.Shuffle(seed)
	g.hands = make([]deck.Hand, g.table.Len())
	g.pot = potmanager.New()

	dealt := make(map[int]bool)
	for _, seat := range g.dealtSeats() {
		dealt[seat] = true
	}
	for seat := 0; seat < g.table.Len(); seat++ {
		if !dealt[seat] {
			g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Fold)
		}
	}

	for _, seat := range g.dealtSeats() {
		g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(g.options.Ante))
	}

	// antes don't burn anyone's option
	g.pot.NewRound()

	for i := 0; i < 5; i++ {
		for _, seat := range g.dealtSeats() {
			card, err := g.drawCard()
			if err != nil {
				return err
			}

			g.hands[seat].AddCard(card)
		}
	}

	g.dealerState = DealerStateFirstBet
	g.actorIndex = g.nextActorAfter(g.dealerIndex)

	return nil
}

func (g *Game) dealtSeats() []int {
	seats := make([]int, 0, g.table.Len())
	for i := 1; i <= g.table.Len(); i++ {
		seat := (g.dealerIndex + i) % g.table.Len()
		if g.startingBalances[seat] > 0 && !g.table.Seat(seat).SitOut {
			seats = append(seats, seat)
		}
	}

	return seats
}

// CurrentTurn returns the seat currently making a decision, in a betting
// round or in the draw phase
func (g *Game) CurrentTurn() (int, error) {
	if !g.dealerState.IsBettingRound() && g.dealerState != DealerStateDraw {
		return 0, errBettingRoundIsOver
	}

	if g.actorIndex < 0 {
		return 0, errBettingRoundIsOver
	}

	return g.actorIndex, nil
}

// Hand returns the cards for a seat
func (g *Game) Hand(seat int) deck.Hand {
	if g.hands == nil {
		return nil
	}

	return g.hands[seat]
}

// State returns the current dealer state
func (g *Game) State() DealerState {
	return g.dealerState
}

// CallAmount returns the amount a seat must match to stay in
func (g *Game) CallAmount() int {
	if g.pot == nil {
		return 0
	}

	return g.pot.CallAmount()
}

// PotTotal returns the total chips in the pot
func (g *Game) PotTotal() int {
	if g.pot == nil {
		return 0
	}

	return g.pot.Total()
}

// Results returns each seat's winnings after the hand is done
func (g *Game) Results() map[int]int {
	return g.results
}

func (g *Game) checkTurn(seat int) error {
	if !g.dealerState.IsBettingRound() {
		return errBettingRoundIsOver
	}

	if seat != g.actorIndex {
		return ErrNotYourTurn
	}

	return nil
}

// Fold throws the seat's hand away
func (g *Game) Fold(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Fold)
	g.sendLogMessage(seat, "{} folds")

	g.advanceActor()
	g.progress()
	return nil
}

// Check passes the action without betting. Only legal with no outstanding bet.
func (g *Game) Check(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	if g.pot.AmountFor(seat) != g.pot.CallAmount() {
		return errors.New("you cannot check with an active bet")
	}

	g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(0))
	g.sendLogMessage(seat, "{} checks")

	g.advanceActor()
	g.progress()
	return nil
}

// Call matches the outstanding bet, going all-in if the stack is short
func (g *Game) Call(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	owed := g.pot.CallAmount() - g.pot.AmountFor(seat)
	if owed <= 0 {
		return errors.New("you cannot call without an active bet")
	}

	g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(owed))
	g.sendLogMessage(seat, "{} calls ${%d}", g.pot.AmountFor(seat))

	g.advanceActor()
	g.progress()
	return nil
}

// Raise raises the seat's cumulative total to raiseTo
func (g *Game) Raise(seat int, raiseTo int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	if raiseTo%money.Unit > 0 {
		return fmt.Errorf("raise must be in increments of ${%d}", money.Unit)
	}

	if raiseTo < g.pot.CallAmount()+money.Unit {
		return fmt.Errorf("raise must be at least ${%d}", g.pot.CallAmount()+money.Unit)
	}

	g.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(raiseTo-g.pot.AmountFor(seat)))
	g.sendLogMessage(seat, "{} raises to ${%d}", g.pot.AmountFor(seat))

	g.advanceActor()
	g.progress()
	return nil
}

// Trade swaps up to three of the seat's cards for fresh ones. An empty trade
// stands pat. Only legal on the seat's draw-phase turn.
func (g *Game) Trade(seat int, cards []*deck.Card) error {
	if g.dealerState != DealerStateDraw {
		return errors.New("it is not the draw phase")
	}

	if seat != g.actorIndex {
		return ErrNotYourTurn
	}

	if len(cards) > maxTrade {
		return fmt.Errorf("you may trade at most %d cards", maxTrade)
	}

	// the caller may hand us a slice of the live hand, which Discard will
	// shift underneath us
	trade := make([]*deck.Card, len(cards))
	copy(trade, cards)

	hand := g.hands[seat]
	for _, card := range trade {
		if !hand.HasCard(card) {
			return fmt.Errorf("you do not have the %s", card)
		}
	}

	for _, card := range trade {
		g.hands[seat].Discard(card)
		g.discards.AddCard(card)
	}

	for i := 0; i < len(trade); i++ {
		card, err := g.drawCard()
		if err != nil {
			return err
		}

		g.hands[seat].AddCard(card)
	}

	if len(cards) == 0 {
		g.sendLogMessage(seat, "{} stands pat")
	} else {
		g.sendLogMessage(seat, "{} trades %d", len(cards))
	}

	g.traded[seat] = true
	g.advanceDrawTurn()
	return nil
}

// advanceActor moves the betting action to the next seat that can still act
func (g *Game) advanceActor() {
	g.actorIndex = g.nextActorAfter(g.actorIndex)
}

func (g *Game) nextActorAfter(from int) int {
	n := g.table.Len()
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if len(g.hands[seat]) == 0 {
			continue
		}

		if g.pot.HasFolded(seat) {
			continue
		}

		if g.table.Seat(seat).Balance.Balance() == 0 {
			continue
		}

		return seat
	}

	return -1
}

// advanceDrawTurn moves the draw phase along; once every live seat has
// traded, the second betting round opens
func (g *Game) advanceDrawTurn() {
	n := g.table.Len()
	for i := 1; i <= n; i++ {
		seat := (g.actorIndex + i) % n
		if len(g.hands[seat]) == 0 || g.pot.HasFolded(seat) || g.traded[seat] {
			continue
		}

		g.actorIndex = seat
		return
	}

	g.dealerState = DealerStateSecondBet
	g.pot.NewRound()
	g.actorIndex = g.nextActorAfter(g.dealerIndex)
	g.progress()
}

// progress drives the state machine off the pot's round outcome
func (g *Game) progress() {
	for g.dealerState.IsBettingRound() {
		outcome, winner := g.pot.RoundOutcome(g.table.Balances())

		switch outcome {
		case potmanager.OutcomeUndetermined:
			return
		case potmanager.OutcomeAwardNow:
			g.awardUncontested(winner)
			return
		case potmanager.OutcomeAdvanceToNext:
			g.advancePhase()
		}
	}
}

func (g *Game) advancePhase() {
	switch g.dealerState {
	case DealerStateFirstBet:
		g.dealerState = DealerStateDraw
		g.actorIndex = g.firstDrawSeat()
		if g.actorIndex < 0 {
			// everyone is all-in; nobody draws
			g.dealerState = DealerStateSecondBet
			g.pot.NewRound()
		}
	case DealerStateSecondBet:
		g.showdown()
	default:
		panic(fmt.Sprintf("cannot advance phase from state %s", g.dealerState))
	}
}

// firstDrawSeat returns the first live seat after the dealer that hasn't
// traded yet; all-in seats still get to draw
func (g *Game) firstDrawSeat() int {
	n := g.table.Len()
	for i := 1; i <= n; i++ {
		seat := (g.dealerIndex + i) % n
		if len(g.hands[seat]) == 0 || g.pot.HasFolded(seat) || g.traded[seat] {
			continue
		}

		return seat
	}

	return -1
}

// drawCard draws the next card, reshuffling the discards back in if the
// deck runs out
func (g *Game) drawCard() (*deck.Card, error) {
	card, err := g.deck.Draw()
	if err == nil {
		return card, nil
	}

	if err != deck.ErrEndOfDeck {
		return nil, err
	}

	if len(g.discards) == 0 {
		return nil, deck.ErrEndOfDeck
	}

	g.deck.ShuffleDiscards(g.discards)
	g.discards = nil
	g.logger.Warn("deck exhausted; reshuffled the discards")

	return g.deck.Draw()
}

// awardUncontested settles the pot when everyone else has folded
func (g *Game) awardUncontested(winner int) {
	amount := g.pot.Award(g.table.Seat(winner).Balance)
	g.results[winner] = amount
	g.sendLogMessage(winner, "{} wins ${%d} uncontested", amount)
	g.dealerState = DealerStateDone
}

// showdown evaluates every live hand and settles the pot layer by layer
func (g *Game) showdown() {
	g.dealerState = DealerStateShowdown

	balances := g.table.Balances()

	wm := potmanager.NewWinManager()
	for _, seat := range g.dealtSeats() {
		if g.pot.HasFolded(seat) {
			continue
		}

		g.revealed[seat] = true
		wm.AddSeat(seat, g.oracle.Evaluate(nil, g.hands[seat]))
		g.sendLogMessage(seat, "{} shows %s (%s)", g.hands[seat].String(),
			handoracle.HandDescription(nil, g.hands[seat]))
	}

	tiers := wm.GetSortedTiers()

	awards := make(map[int]int)
	for _, layer := range g.pot.Eligibilities(balances) {
		winners := winnersForLayer(tiers, layer)
		g.splitLayer(layer.Amount, winners, awards)
	}

	seatAwards := make([]potmanager.SeatAward, 0, len(awards))
	for seat, amount := range awards {
		seatAwards = append(seatAwards, potmanager.SeatAward{Seat: seat, Amount: amount})
	}
	sort.Slice(seatAwards, func(i, j int) bool {
		return seatAwards[i].Seat < seatAwards[j].Seat
	})

	g.pot.AwardMultiple(seatAwards, g.table.MoneyHolders())

	for _, award := range seatAwards {
		g.results[award.Seat] = award.Amount
		g.sendLogMessage(award.Seat, "{} wins ${%d}", award.Amount)
	}

	g.dealerState = DealerStateDone
}

func winnersForLayer(tiers [][]int, layer potmanager.Layer) []int {
	eligible := make(map[int]bool, len(layer.Contributors))
	for _, seat := range layer.Contributors {
		eligible[seat] = true
	}

	for _, tier := range tiers {
		winners := make([]int, 0, len(tier))
		for _, seat := range tier {
			if eligible[seat] {
				winners = append(winners, seat)
			}
		}

		if len(winners) > 0 {
			return winners
		}
	}

	return tiers[0]
}

func (g *Game) splitLayer(amount int, winners []int, awards map[int]int) {
	n := g.table.Len()
	ordered := make([]int, len(winners))
	copy(ordered, winners)
	sort.Slice(ordered, func(i, j int) bool {
		oi := (ordered[i] - g.dealerIndex - 1 + n) % n
		oj := (ordered[j] - g.dealerIndex - 1 + n) % n
		return oi < oj
	})

	chips := amount / money.Unit
	base := chips / len(ordered) * money.Unit
	extras := chips % len(ordered)

	for i, seat := range ordered {
		share := base
		if i < extras {
			share += money.Unit
		}

		awards[seat] += share
	}

	if leftover := amount % money.Unit; leftover > 0 {
		awards[ordered[0]] += leftover
	}
}

// sendLogMessage emits a log line about a seat. Player IDs on the wire are
// 1-based; seat indexes are 0-based.
func (g *Game) sendLogMessage(seat int, format string, a ...interface{}) {
	msg := playable.SimpleLogMessageSlice(int64(seat)+1, format, a...)

	select {
	case g.logChan <- msg:
	default:
	}
}
