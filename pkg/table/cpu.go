package table

import (
	"cardtable/internal/rng"
	"cardtable/pkg/money"
	"cardtable/pkg/playable/poker/handoracle"
)

// Decision is what a CPU seat wants to do on its turn
type Decision int

// Decision constants
const (
	DecisionFold Decision = iota
	DecisionCheckOrCall
	DecisionRaise
)

func (d Decision) String() string {
	switch d {
	case DecisionFold:
		return "fold"
	case DecisionCheckOrCall:
		return "check-or-call"
	case DecisionRaise:
		return "raise"
	}

	return ""
}

// CPU is the decision profile for a computer-controlled seat. Decisions are
// pure functions of hand strength and the injected rng stream, so a seeded
// stream replays identically.
type CPU struct {
	// Name is the profile name shown in logs
	Name string
}

// NewCPU returns a CPU profile
func NewCPU(name string) *CPU {
	return &CPU{Name: name}
}

// Decide picks a betting decision from the win probability of the holding.
// Above the 87.5% line the CPU always raises; above 75% it raises half the
// time; above 50% it calls; below that it folds to a bet and otherwise
// checks along.
func (c *CPU) Decide(probability uint8, facingBet bool, gen rng.Generator) Decision {
	switch {
	case probability >= handoracle.ProbabilityRaiseAlways:
		return DecisionRaise
	case probability >= handoracle.ProbabilityRaise:
		if gen.Intn(2) == 0 {
			return DecisionRaise
		}

		return DecisionCheckOrCall
	case probability >= handoracle.ProbabilityCall:
		return DecisionCheckOrCall
	default:
		if facingBet {
			return DecisionFold
		}

		return DecisionCheckOrCall
	}
}

// BetForSpread picks an Acey Deucey bet from the spread between the posts.
// spread is the count of middle ranks that win; pot caps the bet.
func (c *CPU) BetForSpread(spread, pot int, gen rng.Generator) int {
	if pot < money.Unit {
		return 0
	}

	var bet int
	switch {
	case spread >= 8:
		// wide spread, bet big
		bet = pot / 2
	case spread >= 5:
		bet = money.Unit * (1 + gen.Intn(3))
	default:
		bet = money.Unit
	}

	bet -= bet % money.Unit
	if bet > pot {
		bet = pot
	}
	if bet < money.Unit {
		bet = money.Unit
	}

	return bet
}
