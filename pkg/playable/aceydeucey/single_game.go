package aceydeucey

import (
	"cardtable/pkg/deck"

	"github.com/google/uuid"
)

// Bet represents a bet
type Bet struct {
	// Amount is the bet amount
	Amount int `json:"amount"`
	// HalfPot means that if they win, they win half the pot, not the amount
	HalfPot bool `json:"halfPot"`
}

// SingleGame is an individual game of Acey Deucey
type SingleGame struct {
	UUID       string           `json:"uuid"`
	FirstCard  *deck.Card       `json:"firstCard"`
	MiddleCard *deck.Card       `json:"middleCard"`
	LastCard   *deck.Card       `json:"lastCard"`
	Bet        Bet              `json:"bet"`
	Adjustment int              `json:"adjustment"`
	Result     SingleGameResult `json:"result"`

	// an ace dealt first can play low; the player decides
	aceLow     bool
	aceDecided bool

	// gameOver short-circuits the game over (a burned or passed game has no
	// middle card)
	gameOver bool
}

// SingleGameResult is the result of a single game
type SingleGameResult string

// SingleGameResult constants
const (
	SingleGameResultBurned SingleGameResult = "burned"
	SingleGameResultLost   SingleGameResult = "lost"
	SingleGameResultPost   SingleGameResult = "post"
	SingleGameResultWon    SingleGameResult = "won"
	SingleGameResultPassed SingleGameResult = "passed"
)

func newSingleGame() *SingleGame {
	return &SingleGame{
		UUID: uuid.New().String(),
	}
}

// firstCardRank will return the rank of the first card.
// The first card may be a low-ace, so we'll check and handle that situation specifically.
func (g *SingleGame) firstCardRank() int {
	if g.FirstCard == nil {
		panic("FirstCard is not set")
	}

	if g.FirstCard.Rank == deck.Ace && g.aceLow {
		return deck.LowAce
	}

	return g.FirstCard.Rank
}

func (g *SingleGame) isGameOver() bool {
	return g.MiddleCard != nil || g.gameOver
}
