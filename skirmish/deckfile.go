package skirmish

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CAMongrel/mytcglib/core"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck list in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck list.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name to
// template pool. Pools feed Player.CreateRandomDeck, which copies each
// template for the owning hero.
func ParseDeckFile(path string) (map[string][]core.Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]core.Card)
	for _, deck := range df.Decks {
		decks[deck.Name] = expandDeck(deck)
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck list (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (string, []core.Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return "", nil, err
	}
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}
	deck := df.Decks[n-1]
	return deck.Name, expandDeck(deck), nil
}

// DeckNames returns the deck names in file order.
func DeckNames(path string) ([]string, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(df.Decks))
	for i, deck := range df.Decks {
		names[i] = deck.Name
	}
	return names, nil
}

func readDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

func expandDeck(deck DeckEntry) []core.Card {
	var cards []core.Card
	for _, entry := range deck.Cards {
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, LookupCard(entry.Name))
		}
	}
	return cards
}
