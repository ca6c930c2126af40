package aceydeucey

import (
	"fmt"
	"strings"
)

// GameType is the Acey Deucey shuffle discipline
type GameType int

// GameType constants
const (
	// GameTypeStandard plays through the shoe, reshuffling only on exhaustion
	GameTypeStandard GameType = iota
	// GameTypeContinuousShoe reshuffles before every round
	GameTypeContinuousShoe
	// GameTypeChaos reshuffles before every card
	GameTypeChaos
)

// String returns the game type
func (g GameType) String() string {
	switch g {
	case GameTypeStandard:
		return "Standard"
	case GameTypeContinuousShoe:
		return "Continuous Shoe"
	case GameTypeChaos:
		return "Chaos"
	}

	panic(fmt.Sprintf("unknown game type: %d", g))
}

// GetGameType returns the GameType based on the string
func GetGameType(s string) (GameType, error) {
	switch strings.ToLower(s) {
	case "standard":
		return GameTypeStandard, nil
	case "continuous shoe":
		return GameTypeContinuousShoe, nil
	case "chaos":
		return GameTypeChaos, nil
	}

	return -1, fmt.Errorf("unknown game type: %s", s)
}

// Options contains options for creating a new game of Acey Deucey
type Options struct {
	Ante      int
	AllowPass bool
	GameType  GameType
	// Seed shuffles the deck deterministically when nonzero
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Ante:      25,
		AllowPass: false,
		GameType:  GameTypeStandard,
	}
}
