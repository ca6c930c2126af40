package texasholdem

import (
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

	pot := g.round.pot
	facingBet := pot.CallAmount() > pot.AmountFor(seat)

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
		raiseTo := pot.CallAmount() + g.betSize()
		return true, g.Raise(seat, raiseTo)
	}

	panic("unreachable")
}

// strength maps the seat's holding onto the 0..255 scale the CPU decision
// thresholds are defined over
func (g *Game) strength(seat int) uint8 {
	if g.dealerState == DealerStatePreFlop {
		return g.oracle.WinProbability(g.round.hands[seat])
	}

	scaled := g.oracle.Evaluate(g.round.community, g.round.hands[seat]) * 255 / handoracle.BestRank
	if scaled > 255 {
		scaled = 255
	}

	return uint8(scaled)
}

// betSize returns the fixed raise increment for the current street
func (g *Game) betSize() int {
	switch g.dealerState {
	case DealerStatePreFlop, DealerStateFlop:
		return g.options.LowerLimit
	default:
		return g.options.UpperLimit
	}
}
