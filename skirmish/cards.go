package skirmish

import (
	"fmt"

	"github.com/CAMongrel/mytcglib/core"
)

// ScrapRat: cheap vanilla body.
func ScrapRat() core.Card {
	return NewUnitCard("Scrap Rat", 1, 1, 1, UnitEffects{})
}

// GutterHound: vanilla 2/2.
func GutterHound() core.Card {
	return NewUnitCard("Gutter Hound", 2, 2, 2, UnitEffects{})
}

// RustColossus: big vanilla finisher.
func RustColossus() core.Card {
	return NewUnitCard("Rust Colossus", 5, 5, 6, UnitEffects{})
}

// CircuitSprite: on play, its owner draws a card.
func CircuitSprite() core.Card {
	return NewUnitCard("Circuit Sprite", 2, 1, 2, UnitEffects{
		OnPlay: func(u *UnitCard) {
			if owner := u.Owner(); owner != nil {
				_, _ = owner.DrawCard()
			}
		},
	})
}

// EmberWisp: when it dies, its owner draws a card.
func EmberWisp() core.Card {
	return NewUnitCard("Ember Wisp", 1, 2, 1, UnitEffects{
		OnDeath: func(u *UnitCard) {
			if owner := u.Owner(); owner != nil {
				_, _ = owner.DrawCard()
			}
		},
	})
}

// ThornShell: deals 1 damage back to any unit that attacks it.
func ThornShell() core.Card {
	return NewUnitCard("Thorn Shell", 3, 1, 4, UnitEffects{
		PostAttacked: func(u *UnitCard, instigator core.Card) {
			if attacker, ok := instigator.(*UnitCard); ok {
				attacker.TakeDamage(1)
			}
		},
	})
}

// GhostCourier: cannot be targeted by attacks.
func GhostCourier() core.Card {
	return NewUnitCard("Ghost Courier", 3, 2, 1, UnitEffects{
		PreTarget: func(u *UnitCard, instigator core.Card) bool {
			return false
		},
	})
}

// DawnMender: heals 1 of its own damage at the start of its owner's round.
func DawnMender() core.Card {
	return NewUnitCard("Dawn Mender", 3, 2, 3, UnitEffects{
		OnStartOfRound: func(u *UnitCard, active core.Player) {
			owner := u.Owner()
			if owner != nil && active != nil && owner.ID() == active.ID() {
				u.Heal(1)
			}
		},
	})
}

// VoltScavenger: gains +1 attack each time it is drawn.
func VoltScavenger() core.Card {
	return NewUnitCard("Volt Scavenger", 2, 1, 1, UnitEffects{
		OnDraw: func(u *UnitCard) {
			u.SetValueModifier(ValueAttack, u.GetModifiedValue(ValueAttack)-u.GetValue(ValueAttack)+1)
		},
	})
}

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]core.CardConstructor{
	"Scrap Rat":      ScrapRat,
	"Gutter Hound":   GutterHound,
	"Rust Colossus":  RustColossus,
	"Circuit Sprite": CircuitSprite,
	"Ember Wisp":     EmberWisp,
	"Thorn Shell":    ThornShell,
	"Ghost Courier":  GhostCourier,
	"Dawn Mender":    DawnMender,
	"Volt Scavenger": VoltScavenger,
}

// LookupCard looks up a card by name and returns a new template instance.
// Panics if the card is not found.
func LookupCard(name string) core.Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}
