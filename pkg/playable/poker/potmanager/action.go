package potmanager

import "fmt"

type actionKind int

const (
	actionFold actionKind = iota
	actionBet
)

// Action is a single entry in a seat's betting log: a fold, or a bet of some
// amount. Checks and calls are just bets of zero or of the outstanding amount.
type Action struct {
	kind   actionKind
	amount int
}

// Fold is the action that takes a seat out of the hand
var Fold = Action{kind: actionFold}

// Bet returns a bet action. Passing money.Max is the all-in idiom: the pot
// records whatever actually moved.
func Bet(amount int) Action {
	if amount < 0 {
		panic(fmt.Sprintf("potmanager: negative bet %d", amount))
	}

	return Action{kind: actionBet, amount: amount}
}

// IsFold returns true for the fold action
func (a Action) IsFold() bool {
	return a.kind == actionFold
}

// Amount returns the bet amount; zero for a fold
func (a Action) Amount() int {
	return a.amount
}

func (a Action) String() string {
	if a.kind == actionFold {
		return "fold"
	}

	return fmt.Sprintf("bet ${%d}", a.amount)
}
