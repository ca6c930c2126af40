package aceydeucey

import (
	"encoding/json"
	"errors"
	"fmt"

	"cardtable/pkg/deck"
	"cardtable/pkg/money"
	"cardtable/pkg/playable"

	"github.com/google/uuid"
)

var errorRoundIsOver = errors.New("round is over")

// betTheGapAmount is the standard bet for a half-pot bet the gap
const betTheGapAmount = 50

// Round is one player's turn at the shoe.
// Money flows directly between the player's balance and the pot.
type Round struct {
	SeatIndex int
	Game      *SingleGame
	State     RoundState
	// HalfPotMax will limit the bet to half-pot if true
	HalfPotMax bool

	pot     *money.Money
	balance *money.Money
	deck    *deck.Deck
	ante    int
	logChan chan []*playable.LogMessage
}

// MarshalJSON provides custom JSON marshalling for round
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		Game:           r.Game,
		State:          r.State,
		Pot:            r.pot.Balance(),
		CardsRemaining: r.deck.CardsLeft(),
	})
}

type roundJSON struct {
	Game           *SingleGame `json:"game"`
	State          RoundState  `json:"state"`
	Pot            int         `json:"pot"`
	CardsRemaining int         `json:"cardsRemaining"`
}

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateStart is before any cards have been dealt
	RoundStateStart RoundState = "start"

	// RoundStateFirstCardDealt means only the first card has been dealt
	RoundStateFirstCardDealt RoundState = "first-card-dealt"

	// RoundStatePendingAceDecision means the first card is an ace and the player needs to pick high/low
	RoundStatePendingAceDecision RoundState = "pending-ace-decision"

	// RoundStatePendingBet means the last card has been dealt and we are waiting for a bet
	RoundStatePendingBet RoundState = "pending-bet"

	// RoundStatePendingBurn means the posts left no gap and the player owes the burn
	RoundStatePendingBurn RoundState = "pending-burn"

	// RoundStateBetPlaced means a bet has been successfully placed
	RoundStateBetPlaced RoundState = "bet-placed"

	// RoundStatePassed means the player declined to bet
	RoundStatePassed RoundState = "passed"

	// RoundStateRoundOver means the game has finished
	RoundStateRoundOver RoundState = "round-over"

	// RoundStateComplete means there are no more rounds to be played
	RoundStateComplete RoundState = "complete"
)

// NewRound returns a new Round for the seat. The pot and the seat's balance
// are the round's only money endpoints; ante is the burn penalty.
func NewRound(seatIndex int, d *deck.Deck, pot, balance *money.Money, ante int) *Round {
	return &Round{
		SeatIndex: seatIndex,
		Game:      newSingleGame(),
		State:     RoundStateStart,
		pot:       pot,
		balance:   balance,
		deck:      d,
		ante:      ante,
	}
}

// DealCard deals a card in Acey Deucey
func (r *Round) DealCard() error {
	if _, err := r.activeGame(); err != nil {
		return err
	}

	card, err := r.drawCard()
	if err != nil {
		return err
	}

	switch r.State {
	case RoundStateStart:
		r.sendLogMessage("Left card dealt", card, 0)
		r.dealFirstCard(card)
		return nil
	case RoundStateFirstCardDealt:
		if err := r.dealLastCard(card); err != nil {
			r.deck.UndoDraw(card)
			return err
		}

		r.sendLogMessage("Right card dealt", card, 0)
		return nil
	case RoundStateBetPlaced:
		r.sendLogMessage("Middle card dealt", card, 0)
		r.dealMiddleCard(card)
		return nil
	}

	r.deck.UndoDraw(card)
	return fmt.Errorf("cannot deal card from state: %s", r.State)
}

// SetBet will set an active bet
func (r *Round) SetBet(bet int, isHalfPotBet bool) error {
	game, err := r.activeGame()
	if err != nil {
		return err
	}

	if r.State != RoundStatePendingBet {
		return fmt.Errorf("cannot place a bet from state: %s", r.State)
	}

	if _, err := money.NewNonZero(bet); err != nil {
		return fmt.Errorf("bet must be at least ${%d}", money.Unit)
	}

	if bet%money.Unit > 0 {
		return fmt.Errorf("bet must be in increments of ${%d}", money.Unit)
	}

	if maxBet := r.getMaxBet(); bet > maxBet {
		return fmt.Errorf("bet of ${%d} exceeds the max bet of ${%d}", bet, maxBet)
	}

	if isHalfPotBet && !r.canBetTheGap() {
		return errors.New("bet the gap for half-pot requires a one-card gap")
	}

	game.Bet = Bet{
		Amount:  bet,
		HalfPot: isHalfPotBet,
	}

	if game.Bet.HalfPot {
		r.sendLogMessage(fmt.Sprintf("{} bet ${%d} for half-pot", game.Bet.Amount), nil, r.playerID())
	} else {
		r.sendLogMessage(fmt.Sprintf("{} bet ${%d}", game.Bet.Amount), nil, r.playerID())
	}

	r.State = RoundStateBetPlaced
	return nil
}

// SetPass declines to bet on the current game
func (r *Round) SetPass() error {
	if _, err := r.activeGame(); err != nil {
		return err
	}

	if r.State != RoundStatePendingBet {
		return fmt.Errorf("cannot pass from state: %s", r.State)
	}

	r.State = RoundStatePassed
	return nil
}

// Burn pays the no-gap penalty. A pair or adjacent posts can't be bet on, so
// the player sends the ante into the pot and the game ends without a middle
// card.
func (r *Round) Burn() error {
	game, err := r.activeGame()
	if err != nil {
		return err
	}

	if r.State != RoundStatePendingBurn {
		return fmt.Errorf("cannot burn from state: %s", r.State)
	}

	game.gameOver = true
	r.finalizeGame(game, SingleGameResultBurned, r.ante)
	return nil
}

// PassRound finishes a passed game without money movement
func (r *Round) PassRound() {
	game := r.Game
	game.gameOver = true
	r.finalizeGame(game, SingleGameResultPassed, 0)
}

// dealFirstCard must only be called from DealCard()
func (r *Round) dealFirstCard(card *deck.Card) {
	r.Game.FirstCard = card
	if card.Rank == deck.Ace {
		r.State = RoundStatePendingAceDecision
		return
	}

	r.State = RoundStateFirstCardDealt
}

// dealLastCard must only be called from DealCard()
func (r *Round) dealLastCard(card *deck.Card) error {
	game, err := r.activeGame()
	if err != nil {
		return err
	}

	if first := game.FirstCard; first.Rank == deck.Ace && !game.aceDecided {
		panic("ace high/low was never decided")
	}

	game.LastCard = card

	firstCardRank := game.firstCardRank()

	// a pair or adjacent posts leave no gap to bet on; the player burns
	if firstCardRank == card.Rank || abs(card.Rank-firstCardRank) == 1 {
		r.State = RoundStatePendingBurn
		return nil
	}

	r.State = RoundStatePendingBet
	return nil
}

// finalizeGame moves the money and sets the state. A post pays double the
// bet into the pot; a loss pays the bet; a burn pays the ante; a win draws
// from the pot. All movement saturates at the player's balance.
func (r *Round) finalizeGame(g *SingleGame, result SingleGameResult, amount int) {
	switch result {
	case SingleGameResultWon:
		g.Adjustment = money.Move(r.pot, r.balance, amount)
		r.sendLogMessage(fmt.Sprintf("{} won ${%d}", g.Adjustment), nil, r.playerID())
	case SingleGameResultLost:
		g.Adjustment = -money.Move(r.balance, r.pot, amount)
		r.sendLogMessage(fmt.Sprintf("{} lost ${%d}", -g.Adjustment), nil, r.playerID())
	case SingleGameResultPost:
		g.Adjustment = -money.Move(r.balance, r.pot, amount)
		r.sendLogMessage(fmt.Sprintf("{} posted and lost ${%d}", -g.Adjustment), nil, r.playerID())
	case SingleGameResultBurned:
		g.Adjustment = -money.Move(r.balance, r.pot, amount)
		r.sendLogMessage(fmt.Sprintf("{} burned ${%d}", -g.Adjustment), nil, r.playerID())
	case SingleGameResultPassed:
		r.sendLogMessage("{} passed", nil, r.playerID())
	}

	g.Result = result
	r.State = RoundStateRoundOver
}

// dealMiddleCard must only be called from DealCard()
func (r *Round) dealMiddleCard(card *deck.Card) {
	game := r.Game
	game.MiddleCard = card

	firstCardRank := game.firstCardRank()

	if card.Rank == firstCardRank || card.Rank == game.LastCard.Rank {
		r.finalizeGame(game, SingleGameResultPost, 2*game.Bet.Amount)
		return
	}

	lowCard, highCard := firstCardRank, game.LastCard.Rank
	if lowCard > highCard {
		lowCard, highCard = highCard, lowCard
	}

	if card.Rank > lowCard && card.Rank < highCard {
		if game.Bet.HalfPot {
			r.finalizeGame(game, SingleGameResultWon, r.getHalfPot())
		} else {
			r.finalizeGame(game, SingleGameResultWon, game.Bet.Amount)
		}

		return
	}

	r.finalizeGame(game, SingleGameResultLost, game.Bet.Amount)
}

// getHalfPot returns half of the pot, rounded down to the nearest chip
func (r *Round) getHalfPot() int {
	halfPot := r.pot.Balance() / 2
	halfPot -= halfPot % money.Unit

	return halfPot
}

// drawCard will draw a card and it should always succeed.
// On exhaustion the shoe is rebuilt from every card not sitting on the table.
func (r *Round) drawCard() (*deck.Card, error) {
	if !r.deck.CanDraw(1) {
		inPlay := make(map[int]bool)
		for _, card := range r.getCardsInPlay() {
			inPlay[card.Index()] = true
		}

		unseen := make([]*deck.Card, 0, 52)
		for i := 0; i < 52; i++ {
			if !inPlay[i] {
				unseen = append(unseen, deck.CardFromIndex(i))
			}
		}

		r.deck.ShuffleDiscards(unseen)
	}

	return r.deck.Draw()
}

func (r *Round) isRoundOver() bool {
	return r.State == RoundStateRoundOver
}

func (r *Round) activeGame() (*SingleGame, error) {
	if r.isRoundOver() {
		return nil, errorRoundIsOver
	}

	if r.Game.isGameOver() {
		return nil, errors.New("game is over")
	}

	return r.Game, nil
}

func (r *Round) canBetTheGap() bool {
	game, err := r.activeGame()
	if err != nil {
		return false
	}

	if r.State != RoundStatePendingBet {
		return false
	}

	if r.pot.Balance() < betTheGapAmount*2 {
		return false
	}

	return abs(game.firstCardRank()-game.LastCard.Rank) == 2
}

// SetAce will set whether the first ace is low or high
func (r *Round) SetAce(highAce bool) error {
	game, err := r.activeGame()
	if err != nil {
		return err
	}

	if r.State != RoundStatePendingAceDecision {
		return fmt.Errorf("cannot choose ace low/high from state: %s", r.State)
	}

	if game.FirstCard.Rank != deck.Ace {
		panic(fmt.Sprintf("first card is %s, but the state is %s", game.FirstCard, r.State))
	}

	chose := "low"
	if highAce {
		chose = "high"
	}

	r.sendLogMessage(fmt.Sprintf("{} chose ace %s", chose), nil, r.playerID())
	game.aceLow = !highAce
	game.aceDecided = true
	r.State = RoundStateFirstCardDealt
	return nil
}

// getCardsInPlay will return the posts still on the table.
// The intent for this method is to handle end-of-deck scenarios where some
// cards have been dealt already.
func (r *Round) getCardsInPlay() []*deck.Card {
	if r.isRoundOver() || r.Game.isGameOver() {
		return nil
	}

	cards := make([]*deck.Card, 0, 2)
	if r.Game.FirstCard != nil {
		cards = append(cards, r.Game.FirstCard)
	}

	if r.Game.LastCard != nil {
		cards = append(cards, r.Game.LastCard)
	}

	if len(cards) == 0 {
		return nil
	}

	return cards
}

// Adjustments returns the net money movement for the round's seat
func (r *Round) Adjustments() int {
	return r.Game.Adjustment
}

func (r *Round) playerID() int64 {
	return int64(r.SeatIndex) + 1
}

func (r *Round) sendLogMessage(message string, card *deck.Card, playerID int64) {
	if r.logChan == nil {
		return
	}

	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card}
	}

	select {
	case r.logChan <- []*playable.LogMessage{
		{
			UUID:      uuid.New().String(),
			PlayerIDs: playerIDs,
			Cards:     cards,
			Message:   message,
		},
	}:
	default:
	}
}

func (r *Round) getMaxBet() int {
	max := r.pot.Balance()
	if max == 0 {
		return 0
	}

	if r.HalfPotMax {
		if halfPot := r.getHalfPot(); halfPot >= 2*money.Unit {
			max = halfPot
		} else {
			max = money.Unit
		}
	}

	// you can't bet more than you have
	if balance := r.balance.Balance(); balance < max {
		max = balance
	}

	return max
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
