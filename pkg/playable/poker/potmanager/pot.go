package potmanager

import (
	"fmt"

	"cardtable/pkg/money"
)

// MaxPlayers is the fixed seat capacity of a pot
const MaxPlayers = 8

// Pot is the betting ledger for a single hand. Every action a seat takes is
// appended to that seat's log; contribution totals persist for the life of the
// hand while the acted set is cleared at each new betting round. The chips
// themselves live in the pot's pile, so the sum of the logs always equals the
// pile balance.
//
// Pot performs no legality checks on amounts. Call and raise minimums are the
// game driver's responsibility before an action gets here.
type Pot struct {
	logs  [MaxPlayers][]Action
	acted uint16
	chips *money.Money
}

// New returns an empty Pot
func New() *Pot {
	return &Pot{
		chips: money.New(0),
	}
}

// PushBet appends an action to the seat's log and marks the seat as having
// acted this round. A bet also moves the chips out of balance into the pot;
// the log records what actually moved, so betting money.Max is a legal way to
// put a seat all-in.
func (p *Pot) PushBet(seat int, balance *money.Money, a Action) {
	checkSeat(seat)

	if p.HasFolded(seat) {
		panic(fmt.Sprintf("potmanager: seat %d already folded", seat))
	}

	if !a.IsFold() {
		a.amount = money.Move(balance, p.chips, a.amount)
	}

	p.logs[seat] = append(p.logs[seat], a)
	p.acted |= 1 << uint(seat)
}

// NewRound clears the acted set for the next betting round. The contribution
// logs are untouched.
func (p *Pot) NewRound() {
	p.acted = 0
}

// HasActed returns true if the seat acted this betting round
func (p *Pot) HasActed(seat int) bool {
	checkSeat(seat)
	return p.acted&(1<<uint(seat)) != 0
}

// HasFolded returns true if the seat has folded at any point in the hand
func (p *Pot) HasFolded(seat int) bool {
	checkSeat(seat)
	for _, a := range p.logs[seat] {
		if a.IsFold() {
			return true
		}
	}

	return false
}

// AmountFor returns the seat's cumulative contribution: the sum of its bets
// up to (and excluding) any fold. Bets made before a fold still count.
func (p *Pot) AmountFor(seat int) int {
	checkSeat(seat)

	total := 0
	for _, a := range p.logs[seat] {
		if a.IsFold() {
			break
		}

		total = satAdd(total, a.amount)
	}

	return total
}

// CallAmount returns the maximum cumulative contribution across all seats;
// the target every active seat must match to stay in the hand.
func (p *Pot) CallAmount() int {
	max := 0
	for seat := range p.logs {
		if amount := p.AmountFor(seat); amount > max {
			max = amount
		}
	}

	return max
}

// Total returns the pot total across all seats, folded contributions included
func (p *Pot) Total() int {
	total := 0
	for seat := range p.logs {
		total = satAdd(total, p.AmountFor(seat))
	}

	return total
}

// Clone copies the betting logs into a fresh Pot and moves the chips over.
// The receiver is left drained and must be dropped; this keeps the money
// total intact when a new round bundle replaces the old one.
func (p *Pot) Clone() *Pot {
	clone := New()
	for seat, log := range p.logs {
		if len(log) == 0 {
			continue
		}

		clone.logs[seat] = make([]Action, len(log))
		copy(clone.logs[seat], log)
	}

	clone.acted = p.acted
	money.Move(p.chips, clone.chips, money.Max)

	return clone
}

// checkConservation panics if the logs disagree with the chip pile. Either
// means a bug in the engine itself, not in any caller.
func (p *Pot) checkConservation() {
	if total := p.Total(); total != p.chips.Balance() {
		panic(fmt.Sprintf("potmanager: logs total ${%d} but pile holds ${%d}", total, p.chips.Balance()))
	}
}

func checkSeat(seat int) {
	if seat < 0 || seat >= MaxPlayers {
		panic(fmt.Sprintf("potmanager: seat %d out of range", seat))
	}
}

// satAdd adds two non-negative amounts, clamping at money.Max
func satAdd(a, b int) int {
	if sum := a + b; sum >= a {
		return sum
	}

	return money.Max
}
