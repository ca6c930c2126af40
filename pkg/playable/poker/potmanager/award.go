package potmanager

import (
	"fmt"

	"cardtable/pkg/money"
)

// SeatAward names the exact amount a seat takes out of the pot
type SeatAward struct {
	Seat   int
	Amount int
}

// Award sweeps the entire pot, folded contributions included, into a single
// winner. Used when everyone else has folded. Returns the amount awarded.
func (p *Pot) Award(winner *money.Money) int {
	p.checkConservation()
	return money.Move(p.chips, winner, money.Max)
}

// AwardMultiple pays exact amounts out of the pot into the given balances,
// indexed by seat. The requested amounts must drain the pot exactly; anything
// else is an arithmetic bug in the caller and panics rather than letting the
// money totals drift.
func (p *Pot) AwardMultiple(awards []SeatAward, balances []*money.Money) {
	p.checkConservation()

	for _, award := range awards {
		if award.Seat < 0 || award.Seat >= len(balances) {
			panic(fmt.Sprintf("potmanager: award to unknown seat %d", award.Seat))
		}

		if moved := money.Move(p.chips, balances[award.Seat], award.Amount); moved != award.Amount {
			panic(fmt.Sprintf("potmanager: award of ${%d} to seat %d exceeds the pot", award.Amount, award.Seat))
		}
	}

	if left := p.chips.Balance(); left != 0 {
		panic(fmt.Sprintf("potmanager: pot not drained, ${%d} left", left))
	}
}
