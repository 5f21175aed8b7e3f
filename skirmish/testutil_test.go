package skirmish

import (
	"math/rand"
	"testing"

	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
)

// buildDeck creates owned card instances from registry names, in order.
// Index 0 is the top of the deck.
func buildDeck(t *testing.T, hero *HeroPlayer, names ...string) []core.Card {
	t.Helper()
	cards := make([]core.Card, 0, len(names))
	for _, name := range names {
		template := LookupCard(name)
		cp, err := template.CreateCopy()
		if err != nil {
			t.Fatalf("copy %q: %v", name, err)
		}
		cp.SetOwner(hero)
		cards = append(cards, cp)
	}
	return cards
}

// padded appends filler Scrap Rats so decks never run dry mid-script.
func padded(names []string, total int) []string {
	for len(names) < total {
		names = append(names, "Scrap Rat")
	}
	return names
}

// newScriptedMatch builds a started two-hero match with fixed deck orders
// and no shuffling. Hero 0 ("Ava") is active in round 1 with 4 cards in
// hand; hero 1 ("Brook") holds 3.
func newScriptedMatch(t *testing.T, deckA, deckB []string) (*Match, *eventlog.MemoryLogger, [2]*HeroPlayer) {
	t.Helper()

	heroes := [2]*HeroPlayer{
		NewHeroPlayer("Ava", true),
		NewHeroPlayer("Brook", false),
	}
	logger := eventlog.NewMemoryLogger()
	m, err := NewMatch(Config{
		Heroes:    heroes,
		NoShuffle: true,
		Logger:    logger,
		Rand:      rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	heroes[0].Deck().SetDeck(buildDeck(t, heroes[0], padded(deckA, 8)...))
	heroes[1].Deck().SetDeck(buildDeck(t, heroes[1], padded(deckB, 8)...))

	m.Start()
	return m, logger, heroes
}

// handIndex finds the first card with the given name in hero's hand.
func handIndex(t *testing.T, hero *HeroPlayer, name string) int {
	t.Helper()
	for i, c := range hero.Hand().Cards() {
		if c.Name() == name {
			return i
		}
	}
	t.Fatalf("card %q not in %s's hand", name, hero.Name())
	return -1
}

// playCard plays the named card from hand to the first free zone and
// returns the placed unit.
func playCard(t *testing.T, m *Match, hero *HeroPlayer, name string) *UnitCard {
	t.Helper()
	played, err := m.PlayCard(hero, handIndex(t, hero, name), -1)
	if err != nil {
		t.Fatalf("PlayCard(%q): %v", name, err)
	}
	if !played {
		t.Fatalf("PlayCard(%q) was aborted", name)
	}
	for _, u := range hero.Board().Units() {
		if u.Name() == name {
			return u
		}
	}
	t.Fatalf("card %q not on %s's board after play", name, hero.Name())
	return nil
}

func countEvents(l *eventlog.MemoryLogger, et eventlog.EventType) int {
	return len(l.EventsOfType(et))
}

func newSeededRand(seed int64) core.Rand {
	return rand.New(rand.NewSource(seed))
}

// scriptedController consumes preferred action types in order. When the next
// scripted type is not currently legal it ends the turn without consuming it.
type scriptedController struct {
	script []ActionType
}

func (c *scriptedController) ChooseAction(m *Match, hero *HeroPlayer, actions []Action) (Action, error) {
	if len(c.script) > 0 {
		want := c.script[0]
		for _, a := range actions {
			if a.Type == want {
				c.script = c.script[1:]
				return a, nil
			}
		}
	}
	return Action{Type: ActionEndTurn}, nil
}
