package fivecarddraw

import (
	"encoding/json"
)

// DealerState represents the phase of a hand
type DealerState int

// constants for DealerState
const (
	DealerStateUndealt DealerState = iota
	DealerStateFirstBet
	DealerStateDraw
	DealerStateSecondBet
	DealerStateShowdown
	DealerStateDone
)

func (d DealerState) String() string {
	switch d {
	case DealerStateUndealt:
		return "undealt"
	case DealerStateFirstBet:
		return "first-bet"
	case DealerStateDraw:
		return "draw"
	case DealerStateSecondBet:
		return "second-bet"
	case DealerStateShowdown:
		return "showdown"
	case DealerStateDone:
		return "done"
	}

	return ""
}

// IsBettingRound returns true if the state accepts betting actions
func (d DealerState) IsBettingRound() bool {
	return d == DealerStateFirstBet || d == DealerStateSecondBet
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
