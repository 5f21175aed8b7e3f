package mcp

import (
	"github.com/CAMongrel/mytcglib/internal/view"
	"github.com/CAMongrel/mytcglib/skirmish"
)

// ActionResponse is the agent's reply to a pending decision.
type ActionResponse struct {
	Index   int
	Concede bool
}

// MCPController implements skirmish.Controller by publishing each decision
// to the session's pending channel and blocking until a tool call answers.
type MCPController struct {
	session    *MatchSession
	responseCh chan ActionResponse
}

// NewMCPController creates the controller for the agent's seat.
func NewMCPController(session *MatchSession) *MCPController {
	return &MCPController{
		session:    session,
		responseCh: make(chan ActionResponse),
	}
}

// ChooseAction implements skirmish.Controller.
func (c *MCPController) ChooseAction(m *skirmish.Match, hero *skirmish.HeroPlayer, actions []skirmish.Action) (skirmish.Action, error) {
	state := view.NewStateView(m, hero)
	c.session.pendingCh <- &PendingDecision{
		Type:    DecisionChooseAction,
		State:   &state,
		Actions: view.NewActionViews(actions),
	}

	resp := <-c.responseCh
	if resp.Concede {
		return skirmish.Action{Type: skirmish.ActionConcede, Desc: "Concede"}, nil
	}
	if resp.Index < 0 || resp.Index >= len(actions) {
		// Out-of-range answers degrade to ending the turn.
		return skirmish.Action{Type: skirmish.ActionEndTurn}, nil
	}
	return actions[resp.Index], nil
}
