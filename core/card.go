package core

import "github.com/google/uuid"

// UnnamedCard is the display name of a card constructed without one.
const UnnamedCard = "unnamed"

// Card is a single game piece: identity, ownership, a value store, and the
// effect hooks the core and outer game logic invoke at lifecycle points.
//
// Concrete card variants embed *BaseCard and shadow the hooks they care
// about; every variant must supply its own CreateCopy. The core only
// guarantees ApplyDrawEffect (Deck.DrawCard), ApplyAddToHandEffect
// (Hand.AddCardToHand) and the round hooks (Match round transitions) fire
// automatically; the action/attack/target hooks are invoked by board and
// combat logic outside this package.
type Card interface {
	ID() uuid.UUID
	Name() string
	SetName(name string)
	Owner() Player
	SetOwner(owner Player)

	GetValue(key int) int
	SetValue(key, value int)
	IsValueModified(key int) bool
	GetModifiedValue(key int) int
	SetValueModifier(key, delta int)

	// CreateCopy returns a new playable instance carrying this card's name
	// and value maps. The caller reassigns the owner immediately after.
	CreateCopy() (Card, error)

	ApplyStartOfRoundEffect(active Player)
	ApplyEndOfRoundEffect(active Player)
	ApplyDrawEffect()
	ApplyPlayEffect()
	ApplyDeathEffect()
	ApplyAddToHandEffect()

	// The Pre* hooks return false to request abort of the pending action.
	ApplyPreActionEffect() bool
	ApplyPostActionEffect()
	ApplyPreAttackedEffect(instigator Card) bool
	ApplyPostAttackedEffect(instigator Card)
	ApplyPreTargetEffect(instigator Card) bool
	ApplyPostTargetEffect(instigator Card)
}

// BaseCard provides the default hook behavior: a diagnostic log line and
// nothing else. All Pre* hooks default to "proceed".
type BaseCard struct {
	ValueStore

	id    uuid.UUID
	name  string
	owner Player
}

// NewBaseCard creates a card with empty value maps. An empty name defaults
// to UnnamedCard.
func NewBaseCard(name string) *BaseCard {
	if name == "" {
		name = UnnamedCard
	}
	return &BaseCard{
		ValueStore: NewValueStore(),
		id:         uuid.New(),
		name:       name,
	}
}

// ID returns the unique instance ID. Copies receive a fresh one.
func (c *BaseCard) ID() uuid.UUID {
	return c.id
}

func (c *BaseCard) Name() string {
	return c.name
}

func (c *BaseCard) SetName(name string) {
	c.name = name
}

// Owner returns the player this card belongs to, or nil. This is a
// non-owning tag: moving the card between containers does not update it.
func (c *BaseCard) Owner() Player {
	return c.owner
}

func (c *BaseCard) SetOwner(owner Player) {
	c.owner = owner
}

// CreateCopy on the unspecialized base is a programmer error: every concrete
// card variant must override it.
func (c *BaseCard) CreateCopy() (Card, error) {
	return nil, ErrCopyNotImplemented
}

// CopyBase returns a deep copy of the base state for use by concrete
// CreateCopy implementations: same name, owner and value maps (independent
// copies), fresh instance ID.
func (c *BaseCard) CopyBase() *BaseCard {
	return &BaseCard{
		ValueStore: c.ValueStore.clone(),
		id:         uuid.New(),
		name:       c.name,
		owner:      c.owner,
	}
}

func (c *BaseCard) ApplyStartOfRoundEffect(active Player) {
	logf("card %q: start of round (active: %s)", c.name, playerName(active))
}

func (c *BaseCard) ApplyEndOfRoundEffect(active Player) {
	logf("card %q: end of round (active: %s)", c.name, playerName(active))
}

func (c *BaseCard) ApplyDrawEffect() {
	logf("card %q: drawn", c.name)
}

func (c *BaseCard) ApplyPlayEffect() {
	logf("card %q: played", c.name)
}

func (c *BaseCard) ApplyDeathEffect() {
	logf("card %q: died", c.name)
}

func (c *BaseCard) ApplyAddToHandEffect() {
	logf("card %q: added to hand", c.name)
}

func (c *BaseCard) ApplyPreActionEffect() bool {
	logf("card %q: pre-action", c.name)
	return true
}

func (c *BaseCard) ApplyPostActionEffect() {
	logf("card %q: post-action", c.name)
}

func (c *BaseCard) ApplyPreAttackedEffect(instigator Card) bool {
	logf("card %q: pre-attacked by %s", c.name, cardName(instigator))
	return true
}

func (c *BaseCard) ApplyPostAttackedEffect(instigator Card) {
	logf("card %q: post-attacked by %s", c.name, cardName(instigator))
}

func (c *BaseCard) ApplyPreTargetEffect(instigator Card) bool {
	logf("card %q: pre-targeted by %s", c.name, cardName(instigator))
	return true
}

func (c *BaseCard) ApplyPostTargetEffect(instigator Card) {
	logf("card %q: post-targeted by %s", c.name, cardName(instigator))
}

func cardName(c Card) string {
	if c == nil {
		return "(none)"
	}
	return c.Name()
}

func playerName(p Player) string {
	if p == nil {
		return "(none)"
	}
	return p.Name()
}
