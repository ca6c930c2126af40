package potmanager

// Outcome describes whether a betting round is complete
type Outcome int

// Outcome constants
const (
	// OutcomeUndetermined means at least one seat still owes a decision
	OutcomeUndetermined Outcome = iota
	// OutcomeAdvanceToNext means the round completed with the hand still contested
	OutcomeAdvanceToNext
	// OutcomeAwardNow means everyone else folded; the winner takes the pot uncontested
	OutcomeAwardNow
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUndetermined:
		return "undetermined"
	case OutcomeAdvanceToNext:
		return "advance-to-next"
	case OutcomeAwardNow:
		return "award-now"
	}

	return ""
}

// RoundOutcome decides whether the betting round is over, given each seat's
// current balance. Call it after every PushBet. The winner return is only
// meaningful when the outcome is OutcomeAwardNow.
//
// A seat at zero balance is all-in: it is exempt from matching the call
// amount (it has nothing left to match with) but still counts as a live seat
// for the single-survivor check. A seat at zero balance that never
// contributed must not be playing at all, and counts for nothing.
func (p *Pot) RoundOutcome(balances []int) (Outcome, int) {
	// every seat that can still put chips in must have acted this round
	for seat := range balances {
		if p.HasFolded(seat) || balances[seat] == 0 {
			continue
		}

		if !p.HasActed(seat) {
			return OutcomeUndetermined, 0
		}
	}

	// those same seats must all have matching contributions; a mismatch
	// means a raise reopened the round
	matched := -1
	for seat := range balances {
		if p.HasFolded(seat) || balances[seat] == 0 {
			continue
		}

		amount := p.AmountFor(seat)
		if matched == -1 {
			matched = amount
		} else if amount != matched {
			return OutcomeUndetermined, 0
		}
	}

	// if exactly one live seat remains unfolded, it wins without a showdown.
	// amount==0 && balance==0 identifies a seat that never played this hand.
	winner := -1
	live := 0
	for seat := range balances {
		if p.HasFolded(seat) {
			continue
		}

		if p.AmountFor(seat) == 0 && balances[seat] == 0 {
			// must not be playing
			continue
		}

		winner = seat
		live++
	}

	if live == 1 {
		return OutcomeAwardNow, winner
	}

	return OutcomeAdvanceToNext, 0
}
