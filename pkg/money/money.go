package money

import (
	"errors"
	"fmt"
)

// Unit is the smallest chip increment. All bets, antes, and awards are
// multiples of Unit.
const Unit = 25

// Max is the largest representable balance. Passing Max to Move is the
// "take everything" idiom used by the game drivers.
const Max = int(^uint(0) >> 1)

// ErrZeroAmount is returned when a NonZero is built from a zero or negative amount
var ErrZeroAmount = errors.New("amount must be greater than zero")

// Money is a chip balance. A table mints each holder's balance exactly once
// at setup; after that, chips only change hands through Move, TakeAllBut, and
// SplitAmong, so the total across all holders in a game never drifts.
type Money struct {
	balance int
}

// New mints a new balance
// Call this once per holder when the table is set up, never to top up an
// existing holder mid-game.
func New(balance int) *Money {
	if balance < 0 {
		panic(fmt.Sprintf("money: cannot mint negative balance %d", balance))
	}

	return &Money{balance: balance}
}

// Balance returns the current balance
func (m *Money) Balance() int {
	return m.balance
}

// Move transfers up to amount from one holder to another and returns how much
// actually moved. Asking for more than the source holds moves the full source
// balance rather than failing; a zero amount is a valid no-op.
func Move(from, to *Money, amount int) int {
	if amount < 0 {
		panic(fmt.Sprintf("money: cannot move negative amount %d", amount))
	}

	if amount > from.balance {
		amount = from.balance
	}

	from.balance -= amount
	to.balance = satAdd(to.balance, amount)

	return amount
}

// TakeAllBut withdraws everything above leave into a fresh holder and returns
// it. If the balance is at or below leave, the returned holder is empty.
func (m *Money) TakeAllBut(leave int) *Money {
	if leave < 0 {
		panic(fmt.Sprintf("money: cannot leave negative amount %d", leave))
	}

	if leave > m.balance {
		leave = m.balance
	}

	taken := &Money{balance: m.balance - leave}
	m.balance = leave

	return taken
}

// SplitAmong deals the entire balance out in Unit-sized chips, round-robin
// starting at remainderGoesTo. When the balance doesn't divide evenly, targets
// closer to the start point (wrapping) receive the extra chips. The source is
// left exactly empty.
func (m *Money) SplitAmong(targets []*Money, remainderGoesTo int) {
	if len(targets) == 0 {
		panic("money: cannot split among zero targets")
	}

	n := len(targets)
	start := ((remainderGoesTo % n) + n) % n

	chips := m.balance / Unit
	for i := 0; i < n; i++ {
		share := (chips / n) * Unit
		if i < chips%n {
			share += Unit
		}

		target := targets[(start+i)%n]
		target.balance = satAdd(target.balance, share)
	}

	// balances are Unit multiples everywhere; if a stray sub-unit amount ever
	// shows up, sweep it to the start target so nothing is dropped
	if extra := m.balance % Unit; extra > 0 {
		targets[start].balance = satAdd(targets[start].balance, extra)
	}

	m.balance = 0
}

// NonZero is an amount guaranteed to be greater than zero. Use it where a
// zero bet is a contract violation, not just a bad input.
type NonZero struct {
	amount int
}

// NewNonZero returns a NonZero amount, or ErrZeroAmount if amount <= 0
func NewNonZero(amount int) (NonZero, error) {
	if amount <= 0 {
		return NonZero{}, ErrZeroAmount
	}

	return NonZero{amount: amount}, nil
}

// Amount returns the wrapped amount
func (n NonZero) Amount() int {
	return n.amount
}

// satAdd adds two non-negative amounts, clamping at Max instead of wrapping
func satAdd(a, b int) int {
	if sum := a + b; sum >= a {
		return sum
	}

	return Max
}
