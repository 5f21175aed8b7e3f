package skirmish

import (
	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
)

// StartingHeroHealth is each hero's health at match start.
const StartingHeroHealth = 20

// HeroPlayer is a core player with a board and hero health. It shadows the
// turn hooks to emit structured match events on top of the base behavior.
type HeroPlayer struct {
	*core.BasePlayer

	board  *Board
	health int
	logger eventlog.Logger
}

func NewHeroPlayer(name string, locallyControlled bool) *HeroPlayer {
	return &HeroPlayer{
		BasePlayer: core.NewBasePlayer(name, locallyControlled),
		board:      NewBoard(),
		health:     StartingHeroHealth,
	}
}

func (h *HeroPlayer) Board() *Board {
	return h.board
}

func (h *HeroPlayer) Health() int {
	return h.health
}

// TakeHeroDamage lowers hero health. The match checks the win condition.
func (h *HeroPlayer) TakeHeroDamage(amount int) {
	if amount <= 0 {
		return
	}
	h.health -= amount
}

// ResetHero restores hero health for a fresh match.
func (h *HeroPlayer) ResetHero() {
	h.health = StartingHeroHealth
}

func (h *HeroPlayer) attachLogger(l eventlog.Logger) {
	h.logger = l
}

// CreateRandomDeck builds the deck like the base player, then tags each
// copy's owner as the hero itself rather than the embedded base, so
// owner-driven card effects reach the hero's overrides.
func (h *HeroPlayer) CreateRandomDeck(candidates []core.Card, maxCount int, rng core.Rand) error {
	if err := h.BasePlayer.CreateRandomDeck(candidates, maxCount, rng); err != nil {
		return err
	}
	h.claimDeck()
	return nil
}

func (h *HeroPlayer) CreateRandomDeckFromTypes(types []core.CardConstructor, maxCount int, rng core.Rand) error {
	if err := h.BasePlayer.CreateRandomDeckFromTypes(types, maxCount, rng); err != nil {
		return err
	}
	h.claimDeck()
	return nil
}

func (h *HeroPlayer) claimDeck() {
	for _, c := range h.Deck().Cards() {
		c.SetOwner(h)
	}
}

func (h *HeroPlayer) round() int {
	if m := h.Match(); m != nil {
		return m.CurrentRound()
	}
	return 0
}

// DrawCard draws like the base player and records the drawn card.
func (h *HeroPlayer) DrawCard() (bool, error) {
	drew, err := h.BasePlayer.DrawCard()
	if drew && h.logger != nil {
		if card := h.Hand().PeekCard(h.Hand().Count() - 1); card != nil {
			h.logger.Record(eventlog.NewDrawEvent(h.round(), h.Name(), card.Name()))
		}
	}
	return drew, err
}

// StartTurn announces the round and draws through the hero's own DrawCard,
// so the draw is recorded too.
func (h *HeroPlayer) StartTurn() {
	if h.logger != nil {
		h.logger.Record(eventlog.NewRoundStartEvent(h.round(), h.Name()))
	}
	if _, err := h.DrawCard(); err != nil && h.logger != nil {
		h.logger.Record(eventlog.Event{
			Round:   h.round(),
			Player:  h.Name(),
			Type:    eventlog.EventDiagnostic,
			Details: "turn start draw failed: " + err.Error(),
		})
	}
}

func (h *HeroPlayer) EndTurn() {
	h.BasePlayer.EndTurn()
	if h.logger != nil {
		h.logger.Record(eventlog.NewTurnEndEvent(h.round(), h.Name()))
	}
}

func (h *HeroPlayer) Victorious() {
	h.BasePlayer.Victorious()
	if h.logger != nil {
		h.logger.Record(eventlog.NewVictoryEvent(h.round(), h.Name()))
	}
}

func (h *HeroPlayer) Defeated() {
	h.BasePlayer.Defeated()
	if h.logger != nil {
		h.logger.Record(eventlog.NewDefeatEvent(h.round(), h.Name()))
	}
}
