package fivecarddraw

import (
	"sort"

	"cardtable/pkg/deck"
	"cardtable/pkg/playable/poker/handoracle"
	"cardtable/pkg/table"
)

// StepCPU makes one decision for the seat on the clock if it's a CPU seat.
// Returns false when the hand is over or a human is up.
func (g *Game) StepCPU() (bool, error) {
	seat, err := g.CurrentTurn()
	if err != nil {
		return false, nil
	}

	s := g.table.Seat(seat)
	if s.IsHuman() {
		return false, nil
	}

	if g.dealerState == DealerStateDraw {
		return true, g.Trade(seat, cpuTradeCards(g.hands[seat]))
	}

	facingBet := g.pot.CallAmount() > g.pot.AmountFor(seat)

	switch s.CPU.Decide(g.strength(seat), facingBet, g.gen) {
	case table.DecisionFold:
		if !facingBet {
			return true, g.Check(seat)
		}

		return true, g.Fold(seat)
	case table.DecisionCheckOrCall:
		if facingBet {
			return true, g.Call(seat)
		}

		return true, g.Check(seat)
	case table.DecisionRaise:
		return true, g.Raise(seat, g.pot.CallAmount()+g.options.LowerLimit)
	}

	panic("unreachable")
}

// strength maps the seat's five cards onto the 0..255 scale the CPU decision
// thresholds are defined over
func (g *Game) strength(seat int) uint8 {
	scaled := g.oracle.Evaluate(nil, g.hands[seat]) * 255 / handoracle.BestRank
	if scaled > 255 {
		scaled = 255
	}

	return uint8(scaled)
}

// cpuTradeCards picks the cards a CPU seat throws away: the lowest cards
// that aren't part of a pair or better, at most three
func cpuTradeCards(hand deck.Hand) []*deck.Card {
	counts := make(map[int]int)
	for _, card := range hand {
		counts[card.Rank]++
	}

	singles := make([]*deck.Card, 0, len(hand))
	for _, card := range hand {
		if counts[card.Rank] == 1 {
			singles = append(singles, card)
		}
	}

	sort.Slice(singles, func(i, j int) bool {
		return singles[i].Rank < singles[j].Rank
	})

	if len(singles) > maxTrade {
		singles = singles[:maxTrade]
	}

	return singles
}
