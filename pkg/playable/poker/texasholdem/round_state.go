package texasholdem

import (
	"cardtable/pkg/deck"
	"cardtable/pkg/playable/poker/potmanager"
)

// roundState is the per-phase bundle: everything that gets replaced wholesale
// when the dealer state advances. The previous bundle is dropped after a
// transition and never mutated again.
type roundState struct {
	deck       *deck.Deck
	community  deck.Hand
	hands      []deck.Hand
	pot        *potmanager.Pot
	actorIndex int
}

// next builds the bundle for the following betting round. The deck and pot
// are cloned (the pot's chips move to the clone), the acted set is cleared,
// and the action re-opens at the given seat.
func (r *roundState) next(openerIndex int) *roundState {
	hands := make([]deck.Hand, len(r.hands))
	for i, hand := range r.hands {
		hands[i] = hand.Clone()
	}

	pot := r.pot.Clone()
	pot.NewRound()

	return &roundState{
		deck:       r.deck.Clone(),
		community:  r.community.Clone(),
		hands:      hands,
		pot:        pot,
		actorIndex: openerIndex,
	}
}
