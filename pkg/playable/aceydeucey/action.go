package aceydeucey

import (
	"encoding/json"
	"fmt"
)

// Action is an action a participant can take when it's their turn
type Action int

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(a),
		Name: a.String(),
	})
}

// Action constants
const (
	ActionPending Action = iota
	ActionPickAceLow
	ActionPickAceHigh
	ActionBet
	ActionBetTheGap
	ActionPass
	ActionBurn
)

func (a Action) String() string {
	switch a {
	case ActionPending:
		return "Pending"
	case ActionPickAceLow:
		return "Pick Low Ace"
	case ActionPickAceHigh:
		return "Pick High Ace"
	case ActionBet:
		return "Bet"
	case ActionBetTheGap:
		return "Bet the Gap"
	case ActionPass:
		return "Pass"
	case ActionBurn:
		return "Burn"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its payload subject
func ActionFromString(action string) (Action, error) {
	switch action {
	case "ace-low":
		return ActionPickAceLow, nil
	case "ace-high":
		return ActionPickAceHigh, nil
	case "bet":
		return ActionBet, nil
	case "bet-the-gap":
		return ActionBetTheGap, nil
	case "pass":
		return ActionPass, nil
	case "burn":
		return ActionBurn, nil
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

func (g *Game) getActionsForParticipant(playerID int64) []Action {
	if playerID != int64(g.turnIndex)+1 {
		return nil
	}

	currentRound := g.getCurrentRound()
	switch currentRound.State {
	case RoundStatePendingAceDecision:
		return []Action{ActionPickAceLow, ActionPickAceHigh}

	case RoundStatePendingBurn:
		return []Action{ActionBurn}

	case RoundStatePendingBet:
		actions := make([]Action, 0)
		if g.options.AllowPass {
			actions = append(actions, ActionPass)
		}

		if currentRound.canBetTheGap() {
			return append(actions, ActionBet, ActionBetTheGap)
		}

		return append(actions, ActionBet)
	}

	return nil
}
