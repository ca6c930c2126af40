package potmanager

import "encoding/json"

// Layer is one pot layer produced by side-pot partitioning. Contributors are
// the seats whose chips are in the layer; at showdown only unfolded
// contributors are eligible to win it.
type Layer struct {
	Amount       int
	Contributors []int
}

// MarshalJSON provides custom marshalling
func (l Layer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount       int   `json:"amount"`
		Contributors []int `json:"contributors"`
	}{
		Amount:       l.Amount,
		Contributors: l.Contributors,
	})
}

// Layers is an ordered list of pot layers, main pot first
type Layers []Layer

// Total returns the combined total of all layers
func (l Layers) Total() int {
	total := 0
	for _, layer := range l {
		total = satAdd(total, layer.Amount)
	}

	return total
}

// Eligibilities partitions the pot into layers, main pot first. Each
// iteration finds the smallest nonzero remaining contribution among all-in
// (zero balance) seats and caps every seat's donation to this layer at that
// amount; with no all-in bound left, a final layer takes everything
// remaining. The layer amounts always sum to Total(). Terminates because
// every iteration zeroes out at least one seat's remaining contribution.
func (p *Pot) Eligibilities(balances []int) Layers {
	var remaining [MaxPlayers]int
	for seat := range balances {
		remaining[seat] = p.AmountFor(seat)
	}

	layers := make(Layers, 0, 2)
	for {
		bound := 0
		for seat := range balances {
			if balances[seat] != 0 || remaining[seat] == 0 {
				continue
			}

			if bound == 0 || remaining[seat] < bound {
				bound = remaining[seat]
			}
		}

		layer := Layer{}
		for seat := range balances {
			if remaining[seat] == 0 {
				continue
			}

			donation := remaining[seat]
			if bound > 0 && donation > bound {
				donation = bound
			}

			layer.Amount = satAdd(layer.Amount, donation)
			layer.Contributors = append(layer.Contributors, seat)
			remaining[seat] -= donation
		}

		if len(layer.Contributors) == 0 {
			break
		}

		layers = append(layers, layer)

		if bound == 0 {
			// no all-in bound; this layer took everything left
			break
		}
	}

	return layers
}

// IndividualPots returns the contested layers: Eligibilities minus any layer
// with a single contributor, since there is nothing to contest there.
func (p *Pot) IndividualPots(balances []int) Layers {
	layers := p.Eligibilities(balances)

	contested := make(Layers, 0, len(layers))
	for _, layer := range layers {
		if len(layer.Contributors) > 1 {
			contested = append(contested, layer)
		}
	}

	return contested
}
