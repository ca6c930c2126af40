package aceydeucey

import (
	"cardtable/pkg/playable"
)

// ensure Game satisfies the Playable interface
var _ playable.Playable = (*Game)(nil)

// ParticipantState is the participant's current state
type ParticipantState struct {
	GameState *GameState `json:"gameState"`
	Actions   []Action   `json:"actions"`
}

// seatState is the public view of one seat
type seatState struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
}

// GameState is the current state of the game
type GameState struct {
	CurrentTurn int64        `json:"currentTurn"`
	Round       *Round       `json:"round"`
	Seats       []*seatState `json:"seats"`
	Pot         int          `json:"pot"`
	MaxBet      int          `json:"maxBet"`
}

func (g *Game) getParticipantState(playerID int64) *ParticipantState {
	return &ParticipantState{
		GameState: g.getGameState(),
		Actions:   g.getActionsForParticipant(playerID),
	}
}

func (g *Game) getGameState() *GameState {
	seats := make([]*seatState, g.table.Len())
	for i, seat := range g.table.Seats() {
		seats[i] = &seatState{
			PlayerID: int64(i) + 1,
			Name:     seat.Name,
			Balance:  seat.Balance.Balance(),
		}
	}

	round := g.getCurrentRound()
	return &GameState{
		CurrentTurn: int64(g.turnIndex) + 1,
		Round:       round,
		Seats:       seats,
		Pot:         g.pot.Balance(),
		MaxBet:      round.getMaxBet(),
	}
}
