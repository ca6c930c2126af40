package texasholdem

import (
	"encoding/json"
)

// DealerState represents the phase of a hand
type DealerState int

// constants for DealerState
// Transitions are one-way and only happen off a pot round outcome.
const (
	DealerStateUndealt DealerState = iota
	DealerStatePreFlop
	DealerStateFlop
	DealerStateTurn
	DealerStateRiver
	DealerStateShowdown
	DealerStateDone
)

func (d DealerState) String() string {
	switch d {
	case DealerStateUndealt:
		return "undealt"
	case DealerStatePreFlop:
		return "pre-flop"
	case DealerStateFlop:
		return "flop"
	case DealerStateTurn:
		return "turn"
	case DealerStateRiver:
		return "river"
	case DealerStateShowdown:
		return "showdown"
	case DealerStateDone:
		return "done"
	}

	return ""
}

// IsBettingRound returns true if the state accepts betting actions
func (d DealerState) IsBettingRound() bool {
	switch d {
	case DealerStatePreFlop, DealerStateFlop, DealerStateTurn, DealerStateRiver:
		return true
	}

	return false
}

// MarshalJSON encodes JSON
func (d DealerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}
