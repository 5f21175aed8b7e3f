// Package view builds JSON-serializable snapshots of a skirmish match for
// the web and MCP front-ends.
package view

import (
	"github.com/CAMongrel/mytcglib/eventlog"
	"github.com/CAMongrel/mytcglib/skirmish"
)

// CardView describes one card, in hand or on the board.
type CardView struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Attack int    `json:"attack"`
	Health int    `json:"health"`
	MaxHP  int    `json:"max_hp"`
}

// ZoneView describes a single board zone.
type ZoneView struct {
	Empty    bool   `json:"empty,omitempty"`
	Name     string `json:"name,omitempty"`
	Attack   int    `json:"attack,omitempty"`
	Health   int    `json:"health,omitempty"`
	Attacked bool   `json:"attacked,omitempty"`
}

// HeroView shows one side of the match.
type HeroView struct {
	Name      string                       `json:"name"`
	Health    int                          `json:"health"`
	HandCount int                          `json:"hand_count"`
	Hand      []CardView                   `json:"hand,omitempty"` // only for "you"
	Board     [skirmish.BoardSize]ZoneView `json:"board"`
	DeckCount int                          `json:"deck_count"`
}

// StateView is the match state from one hero's perspective.
type StateView struct {
	You        HeroView `json:"you"`
	Opponent   HeroView `json:"opponent"`
	Round      int      `json:"round"`
	IsYourTurn bool     `json:"is_your_turn"`
	Over       bool     `json:"over"`
	Winner     int      `json:"winner"`
	Result     string   `json:"result,omitempty"`
}

// EventView is a match event for clients.
type EventView struct {
	Seq     int    `json:"seq"`
	Round   int    `json:"round"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details,omitempty"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Desc  string `json:"desc"`
}

// NewCardView snapshots a unit card at the given index.
func NewCardView(index int, u *skirmish.UnitCard) CardView {
	return CardView{
		Index:  index,
		Name:   u.Name(),
		Cost:   u.Cost(),
		Attack: u.AttackValue(),
		Health: u.CurrentHealth(),
		MaxHP:  u.MaxHealth(),
	}
}

// NewHeroView snapshots one hero. Hand contents are included only when
// revealHand is set.
func NewHeroView(h *skirmish.HeroPlayer, revealHand bool) HeroView {
	hv := HeroView{
		Name:      h.Name(),
		Health:    h.Health(),
		HandCount: h.Hand().Count(),
		DeckCount: h.Deck().Count(),
	}
	if revealHand {
		for i, c := range h.Hand().Cards() {
			if u, ok := c.(*skirmish.UnitCard); ok {
				hv.Hand = append(hv.Hand, NewCardView(i, u))
			}
		}
	}
	for zone := 0; zone < skirmish.BoardSize; zone++ {
		u := h.Board().UnitAt(zone)
		if u == nil {
			hv.Board[zone] = ZoneView{Empty: true}
			continue
		}
		hv.Board[zone] = ZoneView{
			Name:     u.Name(),
			Attack:   u.AttackValue(),
			Health:   u.CurrentHealth(),
			Attacked: u.AttackedThisRound(),
		}
	}
	return hv
}

// NewStateView snapshots the match from hero's perspective. The opponent's
// hand stays hidden.
func NewStateView(m *skirmish.Match, hero *skirmish.HeroPlayer) StateView {
	return StateView{
		You:        NewHeroView(hero, true),
		Opponent:   NewHeroView(m.Opponent(hero), false),
		Round:      m.CurrentRound(),
		IsYourTurn: m.ActiveHero() == hero,
		Over:       m.IsOver(),
		Winner:     m.Winner(),
		Result:     m.Result(),
	}
}

// NewEventView converts a log event.
func NewEventView(e eventlog.Event) EventView {
	return EventView{
		Seq:     e.Seq,
		Round:   e.Round,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// NewEventViews converts a slice of log events.
func NewEventViews(events []eventlog.Event) []EventView {
	views := make([]EventView, len(events))
	for i, e := range events {
		views[i] = NewEventView(e)
	}
	return views
}

// NewActionViews numbers the legal actions for a client.
func NewActionViews(actions []skirmish.Action) []ActionView {
	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{
			Index: i,
			Type:  a.Type.String(),
			Desc:  a.Desc,
		}
	}
	return views
}
