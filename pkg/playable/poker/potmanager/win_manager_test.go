package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinManager(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddSeat(0, 100)
	wm.AddSeat(1, 250)
	wm.AddSeat(2, 100)
	wm.AddSeat(3, 50)

	tiers := wm.GetSortedTiers()
	a.Equal(3, len(tiers))
	a.Equal([]int{1}, tiers[0])
	a.Equal([]int{0, 2}, tiers[1])
	a.Equal([]int{3}, tiers[2])
}

func TestWinManager_empty(t *testing.T) {
	wm := NewWinManager()
	assert.Equal(t, 0, len(wm.GetSortedTiers()))
}
