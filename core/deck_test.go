package core

import "testing"

func TestShufflePreservesCards(t *testing.T) {
	cards := makeTestCards("card-", 12)
	d := NewDeck()
	d.SetDeck(cards)

	d.Shuffle(newTestRand(42))

	if d.Count() != len(cards) {
		t.Fatalf("deck has %d cards after shuffle, want %d", d.Count(), len(cards))
	}
	seen := make(map[Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	for _, c := range cards {
		if seen[c] != 1 {
			t.Errorf("card %q appears %d times after shuffle, want 1", c.Name(), seen[c])
		}
	}
}

func TestShuffleNilRand(t *testing.T) {
	d := NewDeck()
	d.SetDeck(makeTestCards("card-", 5))
	d.Shuffle(nil)
	if d.Count() != 5 {
		t.Errorf("deck has %d cards, want 5", d.Count())
	}
}

func TestDrawCardPopsTop(t *testing.T) {
	first := newTestCard("first")
	second := newTestCard("second")
	d := NewDeck()
	d.SetDeck([]Card{first, second})

	drawn := d.DrawCard()
	if drawn != Card(first) {
		t.Fatalf("drew %v, want the top card", drawn)
	}
	if first.drawCount != 1 {
		t.Errorf("draw hook fired %d times, want 1", first.drawCount)
	}
	if d.Count() != 1 {
		t.Errorf("deck has %d cards after draw, want 1", d.Count())
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := NewDeck()
	if drawn := d.DrawCard(); drawn != nil {
		t.Errorf("draw from empty deck returned %v, want nil", drawn)
	}
}

func TestSetDeckReplacesWholesale(t *testing.T) {
	d := NewDeck()
	d.SetDeck(makeTestCards("old-", 3))

	replacement := makeTestCards("new-", 2)
	d.SetDeck(replacement)

	if d.Count() != 2 {
		t.Fatalf("deck has %d cards, want 2", d.Count())
	}
	if got := d.Cards()[0]; got != replacement[0] {
		t.Error("SetDeck did not preserve the given order")
	}

	// The deck owns its sequence: mutating the input afterwards is harmless.
	replacement[0] = nil
	if got := d.Cards()[0]; got == nil {
		t.Error("deck shares the caller's slice")
	}
}
