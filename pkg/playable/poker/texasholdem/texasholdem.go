package texasholdem

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

var errBettingRoundIsOver = errors.New("betting round is over")

// ErrNotYourTurn is an error when a seat acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// Game is a single hand of Limit Texas Hold'em. The table persists across
// hands; the Game does not. Create a new Game per deal.
type Game struct {
	options     Options
	logger      logrus.FieldLogger
	oracle      handoracle.Oracle
	gen         rng.Generator
	table       *table.Table
	dealerIndex int

	dealerState DealerState
	round       *roundState

	startingBalances []int
	results          map[int]int
	revealed         map[int]bool
	logChan          chan []*playable.LogMessage
}

// Options configures how Texas Hold'em is played
type Options struct {
	Ante       int
	LowerLimit int
	UpperLimit int
	// Seed shuffles the deck deterministically when nonzero
	Seed int64
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		Ante:       25,
		LowerLimit: 100,
		UpperLimit: 200,
	}
}

func validateOptions(opts Options) error {
	if opts.Ante < 0 {
		return errors.New("ante must be >= 0")
	}

	if opts.LowerLimit <= 0 {
		return errors.New("lower limit must be > 0")
	}

	if opts.Ante > opts.LowerLimit {
		return errors.New("ante must be less than the lower limit")
	}

	if opts.Ante%money.Unit > 0 {
		return fmt.Errorf("ante must be divisible by ${%d}", money.Unit)
	}

	if opts.LowerLimit%money.Unit > 0 {
		return fmt.Errorf("lower limit must be divisible by ${%d}", money.Unit)
	}

	return nil
}

// NewGame returns a new hand of Texas Hold'em for the seats at the table.
// dealerIndex is the seat with the button.
func NewGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, opts Options, oracle handoracle.Oracle, gen rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	opts.UpperLimit = opts.LowerLimit * 2

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
		results:     make(map[int]int),
		revealed:    make(map[int]bool),
		logChan:     make(chan []*playable.LogMessage, 256),
	}, nil
}

// Deal shuffles, deals hole cards, posts antes and blinds, and opens the
// pre-flop betting round
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

	d := deck.New()
	d.Shuffle(seed)

	round := &roundState{
		deck:      d,
		community: make(deck.Hand, 0, 5),
		hands:     make([]deck.Hand, g.table.Len()),
		pot:       potmanager.New(),
	}
	g.round = round

	for i := 0; i < 2; i++ {
		for _, seat := range g.dealtSeats() {
			card, err := g.drawCard()
			if err != nil {
				return err
			}

			round.hands[seat].AddCard(card)
		}
	}

	// a seat that's sitting out but still holds chips must not stall the
	// round-completion check, so it starts folded
	dealt := make(map[int]bool)
	for _, seat := range g.dealtSeats() {
		dealt[seat] = true
	}
	for seat := 0; seat < g.table.Len(); seat++ {
		if !dealt[seat] {
			round.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Fold)
		}
	}

	// antes
	if g.options.Ante > 0 {
		for _, seat := range g.dealtSeats() {
			round.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(g.options.Ante))
		}
	}

	// blinds; heads-up the dealer posts the small blind
	smallBlindSeat, bigBlindSeat := g.blindSeats()
	smallBlind := (g.options.LowerLimit / 2 / money.Unit) * money.Unit
	if smallBlind == 0 {
		smallBlind = g.options.LowerLimit
	}

	round.pot.PushBet(smallBlindSeat, g.table.Seat(smallBlindSeat).Balance, potmanager.Bet(smallBlind))
	round.pot.PushBet(bigBlindSeat, g.table.Seat(bigBlindSeat).Balance, potmanager.Bet(g.options.LowerLimit))

	g.sendGeneralMessage("%s posts the small blind (${%d}), %s posts the big blind (${%d})",
		g.table.Seat(smallBlindSeat).Name, smallBlind, g.table.Seat(bigBlindSeat).Name, g.options.LowerLimit)

	// blinds and antes don't burn anyone's option
	round.pot.NewRound()

	g.dealerState = DealerStatePreFlop
	round.actorIndex = g.preFlopOpener(bigBlindSeat)

	return nil
}

// dealtSeats returns the seats that are in this hand: occupied and holding
// chips when the hand started
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

func (g *Game) blindSeats() (int, int) {
	seats := g.dealtSeats()
	if len(seats) == 2 {
		// dealtSeats starts left of the button, so the dealer is last
		return seats[1], seats[0]
	}

	return seats[0], seats[1]
}

func (g *Game) preFlopOpener(bigBlindSeat int) int {
	seats := g.dealtSeats()
	if len(seats) == 2 {
		// heads-up, the small blind (dealer) opens
		return seats[1]
	}

	for i, seat := range seats {
		if seat == bigBlindSeat {
			return seats[(i+1)%len(seats)]
		}
	}

	return seats[0]
}

// CurrentTurn returns the seat currently making a decision.
// Returns an error unless the game is in a betting round.
func (g *Game) CurrentTurn() (int, error) {
	if !g.dealerState.IsBettingRound() {
		return 0, errBettingRoundIsOver
	}

	if g.round.actorIndex < 0 {
		return 0, errBettingRoundIsOver
	}

	return g.round.actorIndex, nil
}

// Community returns the community cards dealt so far
func (g *Game) Community() deck.Hand {
	if g.round == nil {
		return nil
	}

	return g.round.community
}

// Hand returns the hole cards for a seat
func (g *Game) Hand(seat int) deck.Hand {
	if g.round == nil {
		return nil
	}

	return g.round.hands[seat]
}

// State returns the current dealer state
func (g *Game) State() DealerState {
	return g.dealerState
}

// CallAmount returns the amount a seat must match to stay in
func (g *Game) CallAmount() int {
	if g.round == nil {
		return 0
	}

	return g.round.pot.CallAmount()
}

// PotTotal returns the total chips in the pot
func (g *Game) PotTotal() int {
	if g.round == nil {
		return 0
	}

	return g.round.pot.Total()
}

// Results returns each seat's winnings after the hand is done
func (g *Game) Results() map[int]int {
	return g.results
}

func (g *Game) checkTurn(seat int) error {
	current, err := g.CurrentTurn()
	if err != nil {
		return err
	}

	if current != seat {
		return ErrNotYourTurn
	}

	return nil
}

// Fold throws the seat's hand away
func (g *Game) Fold(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	g.round.pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Fold)
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

	pot := g.round.pot
	if pot.AmountFor(seat) != pot.CallAmount() {
		return errors.New("you cannot check with an active bet")
	}

	pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(0))
	g.sendLogMessage(seat, "{} checks")

	g.advanceActor()
	g.progress()
	return nil
}

// Call matches the outstanding bet. A short stack calls all-in for whatever
// it has left.
func (g *Game) Call(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	pot := g.round.pot
	owed := pot.CallAmount() - pot.AmountFor(seat)
	if owed <= 0 {
		return errors.New("you cannot call without an active bet")
	}

	pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(owed))
	g.sendLogMessage(seat, "{} calls ${%d}", pot.AmountFor(seat))

	g.advanceActor()
	g.progress()
	return nil
}

// Raise raises the seat's cumulative total to raiseTo. The new total must be
// at least the call amount plus one chip; raising beyond the seat's stack is
// clamped to all-in.
func (g *Game) Raise(seat int, raiseTo int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	pot := g.round.pot
	if raiseTo%money.Unit > 0 {
		return fmt.Errorf("raise must be in increments of ${%d}", money.Unit)
	}

	if raiseTo < pot.CallAmount()+money.Unit {
		return fmt.Errorf("raise must be at least ${%d}", pot.CallAmount()+money.Unit)
	}

	// a raise beyond the stack silently becomes all-in
	pot.PushBet(seat, g.table.Seat(seat).Balance, potmanager.Bet(raiseTo-pot.AmountFor(seat)))
	g.sendLogMessage(seat, "{} raises to ${%d}", pot.AmountFor(seat))

	g.advanceActor()
	g.progress()
	return nil
}

// advanceActor moves the action to the next seat that can still act
func (g *Game) advanceActor() {
	g.round.actorIndex = g.nextActorAfter(g.round.actorIndex)
}

// nextActorAfter returns the next seat after from, wrapping, that is dealt
// in, hasn't folded, and still holds chips. Returns -1 if nobody can act.
func (g *Game) nextActorAfter(from int) int {
	n := g.table.Len()
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if len(g.round.hands[seat]) == 0 {
			continue
		}

		if g.round.pot.HasFolded(seat) {
			continue
		}

		if g.table.Seat(seat).Balance.Balance() == 0 {
			continue
		}

		return seat
	}

	return -1
}

// progress drives the state machine off the pot's round outcome until a seat
// owes a decision or the hand settles. Phases with everyone all-in advance
// straight through to showdown.
func (g *Game) progress() {
	for g.dealerState.IsBettingRound() {
		outcome, winner := g.round.pot.RoundOutcome(g.table.Balances())

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

// advancePhase deals the next community tranche in a fresh round bundle, or
// moves to showdown after the river
func (g *Game) advancePhase() {
	next := g.round.next(g.nextActorAfter(g.dealerIndex))

	switch g.dealerState {
	case DealerStatePreFlop:
		g.dealCommunity(next, 3)
		g.dealerState = DealerStateFlop
	case DealerStateFlop:
		g.dealCommunity(next, 1)
		g.dealerState = DealerStateTurn
	case DealerStateTurn:
		g.dealCommunity(next, 1)
		g.dealerState = DealerStateRiver
	case DealerStateRiver:
		g.round = next
		g.showdown()
		return
	default:
		panic(fmt.Sprintf("cannot advance phase from state %s", g.dealerState))
	}

	g.round = next
	g.sendGeneralMessage("community: %s", next.community.String())
}

func (g *Game) dealCommunity(round *roundState, count int) {
	// burn first; an exhausted deck is rebuilt and the burn comes off the top
	if err := round.deck.Burn(); err != nil {
		if _, err := g.drawCardFrom(round.deck, round); err != nil {
			panic(err)
		}
	}

	for i := 0; i < count; i++ {
		card, err := g.drawCardFrom(round.deck, round)
		if err != nil {
			panic(err)
		}

		round.community.AddCard(card)
	}
}

func (g *Game) drawCard() (*deck.Card, error) {
	return g.drawCardFrom(g.round.deck, g.round)
}

// drawCardFrom draws the next card. An exhausted deck is recovered locally:
// the cards not visible in the hand are reshuffled and play continues.
func (g *Game) drawCardFrom(d *deck.Deck, round *roundState) (*deck.Card, error) {
	card, err := d.Draw()
	if err == nil {
		return card, nil
	}

	if err != deck.ErrEndOfDeck {
		return nil, err
	}

	inPlay := make(map[int]bool)
	for _, hand := range round.hands {
		for _, c := range hand {
			inPlay[c.Index()] = true
		}
	}
	for _, c := range round.community {
		inPlay[c.Index()] = true
	}

	unseen := make([]*deck.Card, 0, 52)
	for i := 0; i < 52; i++ {
		if !inPlay[i] {
			unseen = append(unseen, deck.CardFromIndex(i))
		}
	}

	d.ShuffleDiscards(unseen)
	g.logger.Warn("deck exhausted; reshuffled")

	return d.Draw()
}

// awardUncontested settles the pot when everyone else has folded
func (g *Game) awardUncontested(winner int) {
	amount := g.round.pot.Award(g.table.Seat(winner).Balance)
	g.results[winner] = amount
	g.sendLogMessage(winner, "{} wins ${%d} uncontested", amount)
	g.dealerState = DealerStateDone
}

// showdown evaluates every live hand, partitions the pot into layers, and
// pays each layer to its strongest eligible contributors
func (g *Game) showdown() {
	g.dealerState = DealerStateShowdown

	balances := g.table.Balances()
	pot := g.round.pot

	wm := potmanager.NewWinManager()
	for _, seat := range g.dealtSeats() {
		if pot.HasFolded(seat) {
			continue
		}

		g.revealed[seat] = true
		strength := g.oracle.Evaluate(g.round.community, g.round.hands[seat])
		wm.AddSeat(seat, strength)
		g.sendLogMessage(seat, "{} shows %s (%s)", g.round.hands[seat].String(),
			handoracle.HandDescription(g.round.community, g.round.hands[seat]))
	}

	tiers := wm.GetSortedTiers()

	awards := make(map[int]int)
	for _, layer := range pot.Eligibilities(balances) {
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

	pot.AwardMultiple(seatAwards, g.table.MoneyHolders())

	for _, award := range seatAwards {
		g.results[award.Seat] = award.Amount
		g.sendLogMessage(award.Seat, "{} wins ${%d}", award.Amount)
	}

	g.dealerState = DealerStateDone
}

// winnersForLayer picks the strongest tier with a live stake in the layer.
// If every contributor folded, the layer goes to the best live hand overall.
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

// splitLayer splits a layer among its winners in chips, remainder chips
// going to the earliest seats after the button
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

	// sweep any stray sub-chip amount so nothing is dropped
	if leftover := amount % money.Unit; leftover > 0 {
		awards[ordered[0]] += leftover
	}
}

// sendLogMessage emits a log line about a seat. Player IDs on the wire are
// 1-based; seat indexes are 0-based.
func (g *Game) sendLogMessage(seat int, format string, a ...interface{}) {
	g.send(playable.SimpleLogMessageSlice(int64(seat)+1, format, a...))
}

func (g *Game) sendGeneralMessage(format string, a ...interface{}) {
	g.send(playable.SimpleLogMessageSlice(0, format, a...))
}

func (g *Game) send(msg []*playable.LogMessage) {
	select {
	case g.logChan <- msg:
	default:
	}
}
