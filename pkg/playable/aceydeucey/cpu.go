package aceydeucey

import (
	"cardtable/pkg/money"
)

// StepCPU advances the automatic transitions and, when a CPU seat owes a
// decision, makes it. Returns false when the game is waiting on a human or
// is over.
func (g *Game) StepCPU() (bool, error) {
	if updated, err := g.Advance(); updated || err != nil {
		return updated, err
	}

	round := g.getCurrentRound()
	if round.State == RoundStateComplete {
		return false, nil
	}

	seat := g.table.Seat(round.SeatIndex)
	if seat.IsHuman() {
		return false, nil
	}

	switch round.State {
	case RoundStatePendingAceDecision:
		// a high ace leaves more room under the spread more often than not
		return true, round.SetAce(g.gen.Intn(4) > 0)
	case RoundStatePendingBurn:
		return true, round.Burn()
	case RoundStatePendingBet:
		spread := abs(round.Game.firstCardRank()-round.Game.LastCard.Rank) - 1

		bet := seat.CPU.BetForSpread(spread, g.pot.Balance(), g.gen)
		if maxBet := round.getMaxBet(); bet > maxBet {
			bet = maxBet
		}

		if bet == 0 && g.options.AllowPass {
			return true, round.SetPass()
		}

		// passing isn't available, so put in the minimum
		if bet < money.Unit {
			bet = money.Unit
		}

		return true, round.SetBet(bet, false)
	}

	return false, nil
}
