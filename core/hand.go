package core

// Hand is an insertion-ordered collection of held cards, addressable both by
// position and by card identity.
type Hand struct {
	cards []Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Count returns the number of cards held.
func (h *Hand) Count() int {
	return len(h.cards)
}

// Cards returns a snapshot of the hand's contents in insertion order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// AddCardToHand appends card and fires its add-to-hand hook. The hook runs
// strictly after the card is part of the hand.
func (h *Hand) AddCardToHand(card Card) error {
	if card == nil {
		return ErrNilCard
	}
	h.cards = append(h.cards, card)
	card.ApplyAddToHandEffect()
	return nil
}

// PeekCard returns the card at index without removing it, nil if the index
// is out of range.
func (h *Hand) PeekCard(index int) Card {
	if index < 0 || index >= len(h.cards) {
		return nil
	}
	return h.cards[index]
}

// PopCard removes and returns the card at index, nil if the index is out of
// range.
func (h *Hand) PopCard(index int) Card {
	if index < 0 || index >= len(h.cards) {
		return nil
	}
	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return card
}

// RemoveCard removes card by identity, reporting whether it was present.
func (h *Hand) RemoveCard(card Card) bool {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}
