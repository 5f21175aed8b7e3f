// Package skirmish is a small two-hero battler built on the core: it wires
// every card and match extension hook, and is the game the cmd front-ends
// play.
package skirmish

import "github.com/CAMongrel/mytcglib/core"

// Value keys used by skirmish cards.
const (
	ValueCost = iota
	ValueAttack
	ValueHealth
)

// UnitEffects are the optional per-card behaviors a card constructor plugs
// into a UnitCard. Nil fields fall back to the core's default hooks.
type UnitEffects struct {
	OnPlay         func(u *UnitCard)
	OnDeath        func(u *UnitCard)
	OnDraw         func(u *UnitCard)
	OnAddToHand    func(u *UnitCard)
	OnStartOfRound func(u *UnitCard, active core.Player)
	OnEndOfRound   func(u *UnitCard, active core.Player)

	// PreAttacked/PreTarget return false to abort the incoming action.
	PreAttacked  func(u *UnitCard, instigator core.Card) bool
	PostAttacked func(u *UnitCard, instigator core.Card)
	PreTarget    func(u *UnitCard, instigator core.Card) bool
}

// UnitCard is a creature that can be played to a board zone. Damage is a
// negative runtime modifier on ValueHealth, so the base value stays the
// card's printed health.
type UnitCard struct {
	*core.BaseCard

	effects           UnitEffects
	attackedThisRound bool
}

// NewUnitCard creates a unit template with the given printed values.
func NewUnitCard(name string, cost, attack, health int, effects UnitEffects) *UnitCard {
	u := &UnitCard{
		BaseCard: core.NewBaseCard(name),
		effects:  effects,
	}
	u.SetValue(ValueCost, cost)
	u.SetValue(ValueAttack, attack)
	u.SetValue(ValueHealth, health)
	return u
}

// CreateCopy returns a playable instance of this template.
func (u *UnitCard) CreateCopy() (core.Card, error) {
	return &UnitCard{
		BaseCard: u.CopyBase(),
		effects:  u.effects,
	}, nil
}

// Cost returns the printed cost.
func (u *UnitCard) Cost() int {
	return u.GetValue(ValueCost)
}

// AttackValue returns the effective attack, floored at 0.
func (u *UnitCard) AttackValue() int {
	atk := u.GetModifiedValue(ValueAttack)
	if atk < 0 {
		return 0
	}
	return atk
}

// CurrentHealth returns printed health plus damage/heal modifiers.
func (u *UnitCard) CurrentHealth() int {
	return u.GetModifiedValue(ValueHealth)
}

// MaxHealth returns the printed health.
func (u *UnitCard) MaxHealth() int {
	return u.GetValue(ValueHealth)
}

// TakeDamage lowers current health by amount.
func (u *UnitCard) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	u.SetValueModifier(ValueHealth, u.healthModifier()-amount)
}

// Heal restores up to amount of missing health, never above the printed
// value. Fully healed units read as unmodified again.
func (u *UnitCard) Heal(amount int) {
	if amount <= 0 {
		return
	}
	mod := u.healthModifier() + amount
	if mod > 0 {
		mod = 0
	}
	u.SetValueModifier(ValueHealth, mod)
}

// AttackedThisRound reports whether the unit already spent its attack.
func (u *UnitCard) AttackedThisRound() bool {
	return u.attackedThisRound
}

// IsDestroyed reports whether the unit's health has run out.
func (u *UnitCard) IsDestroyed() bool {
	return u.CurrentHealth() <= 0
}

func (u *UnitCard) healthModifier() int {
	return u.GetModifiedValue(ValueHealth) - u.GetValue(ValueHealth)
}

// --- Hook overrides: base diagnostic first, then the card's own behavior ---

func (u *UnitCard) ApplyPlayEffect() {
	u.BaseCard.ApplyPlayEffect()
	if u.effects.OnPlay != nil {
		u.effects.OnPlay(u)
	}
}

func (u *UnitCard) ApplyDeathEffect() {
	u.BaseCard.ApplyDeathEffect()
	if u.effects.OnDeath != nil {
		u.effects.OnDeath(u)
	}
}

func (u *UnitCard) ApplyDrawEffect() {
	u.BaseCard.ApplyDrawEffect()
	if u.effects.OnDraw != nil {
		u.effects.OnDraw(u)
	}
}

func (u *UnitCard) ApplyAddToHandEffect() {
	u.BaseCard.ApplyAddToHandEffect()
	if u.effects.OnAddToHand != nil {
		u.effects.OnAddToHand(u)
	}
}

func (u *UnitCard) ApplyStartOfRoundEffect(active core.Player) {
	u.BaseCard.ApplyStartOfRoundEffect(active)
	if u.effects.OnStartOfRound != nil {
		u.effects.OnStartOfRound(u, active)
	}
}

func (u *UnitCard) ApplyEndOfRoundEffect(active core.Player) {
	u.BaseCard.ApplyEndOfRoundEffect(active)
	if u.effects.OnEndOfRound != nil {
		u.effects.OnEndOfRound(u, active)
	}
}

func (u *UnitCard) ApplyPreAttackedEffect(instigator core.Card) bool {
	if u.effects.PreAttacked != nil {
		return u.effects.PreAttacked(u, instigator)
	}
	return u.BaseCard.ApplyPreAttackedEffect(instigator)
}

func (u *UnitCard) ApplyPostAttackedEffect(instigator core.Card) {
	u.BaseCard.ApplyPostAttackedEffect(instigator)
	if u.effects.PostAttacked != nil {
		u.effects.PostAttacked(u, instigator)
	}
}

func (u *UnitCard) ApplyPreTargetEffect(instigator core.Card) bool {
	if u.effects.PreTarget != nil {
		return u.effects.PreTarget(u, instigator)
	}
	return u.BaseCard.ApplyPreTargetEffect(instigator)
}
