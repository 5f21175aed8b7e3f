package core

import (
	"fmt"

	"github.com/google/uuid"
)

// CardConstructor builds a fresh template card of one variant.
type CardConstructor func() Card

// Player composes one deck, one hand and the turn-lifecycle hooks the match
// invokes. Concrete games embed *BasePlayer and shadow what they need.
// Players are compared by ID, so an embedded base standing in for its outer
// type still names the same player.
type Player interface {
	ID() uuid.UUID
	Name() string
	Deck() *Deck
	Hand() *Hand
	Match() *Match
	SetMatch(m *Match)

	// IsLocallyControlled is a flag surfaced for the caller to interpret;
	// the core attaches no behavior to it.
	IsLocallyControlled() bool

	CreateRandomDeckFromTypes(types []CardConstructor, maxCount int, rng Rand) error
	CreateRandomDeck(candidates []Card, maxCount int, rng Rand) error
	DrawCard() (bool, error)

	StartTurn()
	EndTurn()
	Concede()
	Victorious()
	Defeated()
}

// BasePlayer is the default player: it draws on turn start and treats the
// remaining lifecycle hooks as diagnostics.
type BasePlayer struct {
	id                uuid.UUID
	name              string
	deck              *Deck
	hand              *Hand
	match             *Match
	locallyControlled bool
}

// NewBasePlayer creates a player with an empty deck and hand.
func NewBasePlayer(name string, locallyControlled bool) *BasePlayer {
	return &BasePlayer{
		id:                uuid.New(),
		name:              name,
		deck:              NewDeck(),
		hand:              NewHand(),
		locallyControlled: locallyControlled,
	}
}

func (p *BasePlayer) ID() uuid.UUID {
	return p.id
}

func (p *BasePlayer) Name() string {
	return p.name
}

func (p *BasePlayer) Deck() *Deck {
	return p.deck
}

func (p *BasePlayer) Hand() *Hand {
	return p.hand
}

// Match returns the match this player is currently part of, or nil.
func (p *BasePlayer) Match() *Match {
	return p.match
}

func (p *BasePlayer) SetMatch(m *Match) {
	p.match = m
}

func (p *BasePlayer) IsLocallyControlled() bool {
	return p.locallyControlled
}

// CreateRandomDeckFromTypes instantiates one template per constructor and
// builds a random deck from that pool.
func (p *BasePlayer) CreateRandomDeckFromTypes(types []CardConstructor, maxCount int, rng Rand) error {
	if p.deck == nil {
		return ErrNoDeck
	}
	pool := make([]Card, 0, len(types))
	for _, ctor := range types {
		pool = append(pool, ctor())
	}
	return p.CreateRandomDeck(pool, maxCount, rng)
}

// CreateRandomDeck samples maxCount templates from candidates without
// replacement (clamped to the pool size), copies each pick owned by this
// player, and installs the result as the player's deck.
func (p *BasePlayer) CreateRandomDeck(candidates []Card, maxCount int, rng Rand) error {
	if p.deck == nil {
		return ErrNoDeck
	}
	if rng == nil {
		rng = newRand()
	}
	if maxCount > len(candidates) {
		maxCount = len(candidates)
	}

	pool := append([]Card(nil), candidates...)
	cards := make([]Card, 0, maxCount)
	for i := 0; i < maxCount; i++ {
		idx := rng.Intn(len(pool))
		template := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		cp, err := template.CreateCopy()
		if err != nil {
			return fmt.Errorf("copy card %q: %w", template.Name(), err)
		}
		cp.SetOwner(p)
		cards = append(cards, cp)
	}

	p.deck.SetDeck(cards)
	logf("player %q: built random deck of %d cards", p.name, len(cards))
	return nil
}

// DrawCard draws the top card of the deck into the hand. An empty deck is a
// normal false result, not an error.
func (p *BasePlayer) DrawCard() (bool, error) {
	if p.deck == nil {
		return false, ErrNoDeck
	}
	if p.hand == nil {
		return false, ErrNoHand
	}
	card := p.deck.DrawCard()
	if card == nil {
		logf("player %q: nothing to draw", p.name)
		return false, nil
	}
	if err := p.hand.AddCardToHand(card); err != nil {
		return false, err
	}
	return true, nil
}

// StartTurn is invoked exactly once per activation. It always attempts one
// draw, regardless of result.
func (p *BasePlayer) StartTurn() {
	logf("player %q: turn started", p.name)
	if _, err := p.DrawCard(); err != nil {
		logf("player %q: draw on turn start failed: %v", p.name, err)
	}
}

// EndTurn is invoked exactly once per deactivation.
func (p *BasePlayer) EndTurn() {
	logf("player %q: turn ended", p.name)
}

// Concede forfeits the match this player is part of. Without a match it is
// a no-op.
func (p *BasePlayer) Concede() {
	if p.match == nil {
		logf("player %q: concede without a match", p.name)
		return
	}
	if err := p.match.Concede(p); err != nil {
		logf("player %q: concede failed: %v", p.name, err)
	}
}

// Victorious is notified by the match after it has already stopped. It must
// not mutate match state.
func (p *BasePlayer) Victorious() {
	logf("player %q: victorious", p.name)
}

// Defeated is notified by the match after it has already stopped. It must
// not mutate match state.
func (p *BasePlayer) Defeated() {
	logf("player %q: defeated", p.name)
}
