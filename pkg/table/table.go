package table

import (
	"errors"
	"fmt"

	"cardtable/pkg/money"
	"cardtable/pkg/playable/poker/potmanager"

	"github.com/sirupsen/logrus"
)

// MaxPlayers is the seat capacity of a table
const MaxPlayers = potmanager.MaxPlayers

// ErrTableFull is an error when a seat is added to a full table
var ErrTableFull = errors.New("table is full")

// Seat is one position at the table
type Seat struct {
	// Name is the display name for the seat
	Name string
	// Balance is the seat's chips. Minted once when the seat is added.
	Balance *money.Money
	// CPU is the decision profile for a computer seat; nil means the seat
	// is human-controlled
	CPU *CPU
	// SitOut skips the seat for the next deal
	SitOut bool
}

// IsHuman returns true if the seat is human-controlled
func (s *Seat) IsHuman() bool {
	return s.CPU == nil
}

// Table owns the seats for a run of games. Seats live in a fixed-capacity
// array; eliminated seats are condensed away between hands so seat indexes
// stay dense.
type Table struct {
	seats  [MaxPlayers]*Seat
	length int
	logger logrus.FieldLogger
}

// New returns an empty table
func New(logger logrus.FieldLogger) *Table {
	return &Table{
		logger: logger,
	}
}

// AddSeat seats a player with a freshly minted balance and returns the seat
// index. Pass a nil cpu for the human seat.
func (t *Table) AddSeat(name string, balance int, cpu *CPU) (int, error) {
	if t.length == MaxPlayers {
		return 0, ErrTableFull
	}

	t.seats[t.length] = &Seat{
		Name:    name,
		Balance: money.New(balance),
		CPU:     cpu,
	}

	t.length++
	return t.length - 1, nil
}

// Len returns the number of occupied seats
func (t *Table) Len() int {
	return t.length
}

// Seat returns the seat at the given index
func (t *Table) Seat(index int) *Seat {
	if index < 0 || index >= t.length {
		panic(fmt.Sprintf("table: seat %d out of range", index))
	}

	return t.seats[index]
}

// Seats returns the occupied seats in order
func (t *Table) Seats() []*Seat {
	seats := make([]*Seat, t.length)
	copy(seats, t.seats[:t.length])
	return seats
}

// Balances returns each seat's current balance, indexed by seat
func (t *Table) Balances() []int {
	balances := make([]int, t.length)
	for i := 0; i < t.length; i++ {
		balances[i] = t.seats[i].Balance.Balance()
	}

	return balances
}

// MoneyHolders returns each seat's money, indexed by seat
func (t *Table) MoneyHolders() []*money.Money {
	holders := make([]*money.Money, t.length)
	for i := 0; i < t.length; i++ {
		holders[i] = t.seats[i].Balance
	}

	return holders
}

// Total returns the total chips across all seats
func (t *Table) Total() int {
	total := 0
	for i := 0; i < t.length; i++ {
		total += t.seats[i].Balance.Balance()
	}

	return total
}

// NextActor returns the next seat index after from, wrapping, that still
// holds chips. Seats at zero balance are skipped. The second return is false
// if no other seat can act.
func (t *Table) NextActor(from int) (int, bool) {
	for i := 1; i <= t.length; i++ {
		index := (from + i) % t.length
		if index == from {
			break
		}

		if t.seats[index].Balance.Balance() > 0 {
			return index, true
		}
	}

	return from, false
}

// Condense removes seats that have no chips left, preserving order, and
// returns how many were removed
func (t *Table) Condense() int {
	kept := 0
	for i := 0; i < t.length; i++ {
		seat := t.seats[i]
		if seat.Balance.Balance() == 0 {
			if t.logger != nil {
				t.logger.WithField("seat", seat.Name).Info("seat eliminated")
			}
			continue
		}

		t.seats[kept] = seat
		kept++
	}

	for i := kept; i < t.length; i++ {
		t.seats[i] = nil
	}

	removed := t.length - kept
	t.length = kept
	return removed
}

// SingleSurvivor returns the lone seat left with chips, if there is one
func (t *Table) SingleSurvivor() (int, bool) {
	survivor := -1
	for i := 0; i < t.length; i++ {
		if t.seats[i].Balance.Balance() == 0 {
			continue
		}

		if survivor >= 0 {
			return 0, false
		}

		survivor = i
	}

	if survivor < 0 {
		return 0, false
	}

	return survivor, true
}
