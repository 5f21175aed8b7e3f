// Package mcp exposes a skirmish match as MCP tools: the connected agent
// plays one seat against the built-in bot, one match per stdio process.
package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
	"github.com/CAMongrel/mytcglib/internal/view"
	"github.com/CAMongrel/mytcglib/skirmish"
)

// DecisionType identifies what the match engine is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionMatchOver    DecisionType = "match_over"
)

// PendingDecision is a decision the match engine is waiting for.
type PendingDecision struct {
	Type    DecisionType      `json:"type"`
	State   *view.StateView   `json:"state"`
	Actions []view.ActionView `json:"actions,omitempty"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events    []view.EventView  `json:"events"`
	State     *view.StateView   `json:"state,omitempty"`
	Actions   []view.ActionView `json:"actions,omitempty"`
	MatchOver bool              `json:"match_over"`
	Winner    int               `json:"winner"`
	Result    string            `json:"result,omitempty"`
}

// MatchSession holds the single running match of this MCP process.
type MatchSession struct {
	match     *skirmish.Match
	agentCtrl *MCPController
	agentHero *skirmish.HeroPlayer

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu     sync.Mutex
	events []view.EventView
	over   bool
	winner int
	result string
}

// sessionLogger mirrors every recorded event into the session's buffer so
// tool responses can report what happened since the last call.
type sessionLogger struct {
	eventlog.MemoryLogger
	sess *MatchSession
}

func (l *sessionLogger) Record(event eventlog.Event) {
	l.MemoryLogger.Record(event)
	l.sess.appendEvent(view.NewEventView(l.LastEvent()))
}

// NewMatchSession loads both decks, seats the agent against the bot and
// starts the match loop in the background.
func NewMatchSession(decksFile string, agentDeck, botDeck, agentSeat int) (*MatchSession, error) {
	agentName, agentCards, err := skirmish.DeckByNumber(decksFile, agentDeck)
	if err != nil {
		return nil, fmt.Errorf("load agent deck: %w", err)
	}
	botName, botCards, err := skirmish.DeckByNumber(decksFile, botDeck)
	if err != nil {
		return nil, fmt.Errorf("load bot deck: %w", err)
	}

	sess := &MatchSession{
		pendingCh: make(chan *PendingDecision, 1),
		winner:    -1,
	}
	sess.agentCtrl = NewMCPController(sess)

	heroes := [2]*skirmish.HeroPlayer{}
	controllers := [2]skirmish.Controller{}
	heroes[agentSeat] = skirmish.NewHeroPlayer(agentName, true)
	heroes[1-agentSeat] = skirmish.NewHeroPlayer(botName, false)
	controllers[agentSeat] = sess.agentCtrl
	controllers[1-agentSeat] = skirmish.NewBotController()
	sess.agentHero = heroes[agentSeat]

	var deckLists [2][]core.Card
	deckLists[agentSeat] = agentCards
	deckLists[1-agentSeat] = botCards

	m, err := skirmish.NewMatch(skirmish.Config{
		Heroes:      heroes,
		Controllers: controllers,
		DeckLists:   deckLists,
		Logger:      &sessionLogger{sess: sess},
	})
	if err != nil {
		return nil, err
	}
	sess.match = m

	go func() {
		winner, err := m.Run()
		result := m.Result()
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
		}

		sess.mu.Lock()
		sess.over = true
		sess.winner = winner
		sess.result = result
		sess.mu.Unlock()

		state := view.NewStateView(m, sess.agentHero)
		sess.pendingCh <- &PendingDecision{
			Type:  DecisionMatchOver,
			State: &state,
		}
	}()

	return sess, nil
}

// appendEvent adds an event to the session's event buffer. Thread-safe.
func (s *MatchSession) appendEvent(ev view.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *MatchSession) drainEvents() []view.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []view.EventView{}
	}
	return events
}

// waitForPending blocks until the engine needs the agent again (or the match
// ends), then bundles buffered events with the pending decision.
func (s *MatchSession) waitForPending() *ToolResponse {
	pending := <-s.pendingCh
	s.currentPending = pending

	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  pending.State,
	}

	if pending.Type == DecisionMatchOver {
		s.mu.Lock()
		resp.MatchOver = true
		resp.Winner = s.winner
		resp.Result = s.result
		s.mu.Unlock()
		return resp
	}

	resp.Actions = pending.Actions
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
