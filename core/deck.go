package core

// Deck is an ordered, mutable pile of cards. Index 0 is the top.
type Deck struct {
	cards []Card
}

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{}
}

// SetDeck replaces the deck's contents wholesale, preserving the given
// order. The owner tag of the cards is not touched.
func (d *Deck) SetDeck(cards []Card) {
	d.cards = append(d.cards[:0:0], cards...)
}

// Count returns the number of cards remaining.
func (d *Deck) Count() int {
	return len(d.cards)
}

// Cards returns a snapshot of the deck's contents, top first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Shuffle permutes the deck uniformly: repeatedly pick a random remaining
// card and append it to the new order until the old order is exhausted.
// A nil rng gets a fresh time-seeded source.
func (d *Deck) Shuffle(rng Rand) {
	if rng == nil {
		rng = newRand()
	}
	remaining := d.cards
	shuffled := make([]Card, 0, len(remaining))
	for len(remaining) > 0 {
		i := rng.Intn(len(remaining))
		shuffled = append(shuffled, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	d.cards = shuffled
}

// DrawCard removes and returns the top card, firing its draw hook. Drawing
// from an empty deck returns nil with no hook invocation.
func (d *Deck) DrawCard() Card {
	if len(d.cards) == 0 {
		logf("deck: draw from empty deck")
		return nil
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	card.ApplyDrawEffect()
	return card
}
