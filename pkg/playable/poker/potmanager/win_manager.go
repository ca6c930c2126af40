package potmanager

import (
	"sort"
)

type tier struct {
	strength int
	seats    []int
}

// WinManager groups seats by hand strength so a showdown can pay the
// strongest group first
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddSeat records a seat's hand strength. Higher is better.
func (w WinManager) AddSeat(seat, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength: handStrength,
			seats:    make([]int, 0),
		}
	}

	t.seats = append(t.seats, seat)
	w[handStrength] = t
}

// GetSortedTiers returns the seat groups strongest-first. Seats within a
// group are in the order they were added.
func (w WinManager) GetSortedTiers() [][]int {
	tiers := make([]*tier, 0, len(w))
	for _, t := range w {
		tiers = append(tiers, t)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredSeats := make([][]int, len(tiers))
	for i, t := range tiers {
		tieredSeats[i] = t.seats
	}

	return tieredSeats
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
