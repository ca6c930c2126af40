package fivecarddraw

import (
	"fmt"

	"cardtable/pkg/deck"
	"cardtable/pkg/playable"
)

// ensure Game satisfies the Playable interface
var _ playable.Playable = (*Game)(nil)

type seatState struct {
	PlayerID int64     `json:"playerId"`
	Name     string    `json:"name"`
	Balance  int       `json:"balance"`
	Bet      int       `json:"bet"`
	Folded   bool      `json:"folded"`
	Traded   bool      `json:"traded"`
	Hand     deck.Hand `json:"hand"`
}

// GameState is the JSON-friendly view of the hand for one player
type GameState struct {
	State       DealerState  `json:"state"`
	Pot         int          `json:"pot"`
	CallAmount  int          `json:"callAmount"`
	CurrentTurn int64        `json:"currentTurn"`
	Seats       []*seatState `json:"seats"`
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Five Card Draw"
}

// LogChan returns a channel that log messages are sent to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action from a player message
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (*playable.Response, bool, error) {
	seat := int(playerID) - 1
	if seat < 0 || seat >= g.table.Len() {
		return nil, false, fmt.Errorf("unknown player: %d", playerID)
	}

	var err error
	switch message.Subject {
	case "fold":
		err = g.Fold(seat)
	case "check":
		err = g.Check(seat)
	case "call":
		err = g.Call(seat)
	case "raise":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, fmt.Errorf("raise is missing the amount")
		}

		err = g.Raise(seat, amount)
	case "trade":
		err = g.Trade(seat, message.Cards)
	default:
		err = fmt.Errorf("unknown action: %s", message.Subject)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the state of the game for the given player.
// Other players' cards are hidden until they show at the end.
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	state := &GameState{
		State:      g.dealerState,
		Pot:        g.PotTotal(),
		CallAmount: g.CallAmount(),
	}

	if turn, err := g.CurrentTurn(); err == nil {
		state.CurrentTurn = int64(turn) + 1
	}

	for i, seat := range g.table.Seats() {
		ss := &seatState{
			PlayerID: int64(i) + 1,
			Name:     seat.Name,
			Balance:  seat.Balance.Balance(),
		}

		if g.pot != nil {
			ss.Bet = g.pot.AmountFor(i)
			ss.Folded = g.pot.HasFolded(i)
			ss.Traded = g.traded[i]

			if int64(i)+1 == playerID || g.revealed[i] {
				ss.Hand = g.hands[i]
			}
		}

		state.Seats = append(state.Seats, ss)
	}

	return &playable.Response{
		Key:   "game",
		Value: "five-card-draw",
		Data:  state,
	}, nil
}

// GetEndOfGameDetails returns the details after the hand is over
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if g.dealerState != DealerStateDone {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for i, balance := range g.table.Balances() {
		adjustments[int64(i)+1] = balance - g.startingBalances[i]
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.results,
	}, true
}
