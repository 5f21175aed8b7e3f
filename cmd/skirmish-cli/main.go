package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
	"github.com/CAMongrel/mytcglib/skirmish"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "decks":
		runDecks(os.Args[2:])
	case "cards":
		runCards(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  skirmish play  [--deck N] [--bot-deck M] [--second] [--decks FILE]")
	fmt.Println("  skirmish watch [--deck-a N] [--deck-b M] [--seed S] [--decks FILE]")
	fmt.Println("  skirmish decks [--decks FILE]")
	fmt.Println("  skirmish cards")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a match against the bot in the terminal")
	fmt.Println("  watch   Watch a bot-versus-bot match")
	fmt.Println("  decks   List the deck lists in the decks file")
	fmt.Println("  cards   List all cards in the registry")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	deck := fs.Int("deck", 1, "your deck number (from decks.yaml)")
	botDeck := fs.Int("bot-deck", 2, "the bot's deck number")
	second := fs.Bool("second", false, "let the bot go first")
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	fs.Parse(args)

	yourName, yourList, err := skirmish.DeckByNumber(*decksFile, *deck)
	if err != nil {
		fatal(err)
	}
	botName, botList, err := skirmish.DeckByNumber(*decksFile, *botDeck)
	if err != nil {
		fatal(err)
	}

	you := skirmish.NewHeroPlayer("You ("+yourName+")", true)
	bot := skirmish.NewHeroPlayer("Bot ("+botName+")", false)

	seat := 0
	if *second {
		seat = 1
	}
	var heroes [2]*skirmish.HeroPlayer
	var controllers [2]skirmish.Controller
	var lists [2][]core.Card
	heroes[seat], heroes[1-seat] = you, bot
	controllers[seat], controllers[1-seat] = NewConsoleController(os.Stdin, os.Stdout), skirmish.NewBotController()
	lists[seat], lists[1-seat] = yourList, botList

	m, err := skirmish.NewMatch(skirmish.Config{
		Heroes:      heroes,
		Controllers: controllers,
		DeckLists:   lists,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		fatal(err)
	}

	if _, err := m.Run(); err != nil {
		fatal(err)
	}
	fmt.Println()
	fmt.Println(m.Result())
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	deckA := fs.Int("deck-a", 1, "deck number for hero A")
	deckB := fs.Int("deck-b", 2, "deck number for hero B")
	seed := fs.Int64("seed", 0, "randomness seed, 0 for time-based")
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	fs.Parse(args)

	nameA, listA, err := skirmish.DeckByNumber(*decksFile, *deckA)
	if err != nil {
		fatal(err)
	}
	nameB, listB, err := skirmish.DeckByNumber(*decksFile, *deckB)
	if err != nil {
		fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	m, err := skirmish.NewMatch(skirmish.Config{
		Heroes: [2]*skirmish.HeroPlayer{
			skirmish.NewHeroPlayer(nameA, false),
			skirmish.NewHeroPlayer(nameB, false),
		},
		Controllers: [2]skirmish.Controller{
			skirmish.NewBotController(),
			skirmish.NewBotController(),
		},
		DeckLists: [2][]core.Card{listA, listB},
		Logger:    eventlog.NewTextLogger(os.Stdout),
		Rand:      rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		fatal(err)
	}

	if _, err := m.Run(); err != nil {
		fatal(err)
	}
	fmt.Println()
	fmt.Println(m.Result())
}

func runDecks(args []string) {
	fs := flag.NewFlagSet("decks", flag.ExitOnError)
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	fs.Parse(args)

	names, err := skirmish.DeckNames(*decksFile)
	if err != nil {
		fatal(err)
	}
	for i, name := range names {
		fmt.Printf("%d: %s\n", i+1, name)
	}
}

func runCards(args []string) {
	names := make([]string, 0, len(skirmish.CardRegistry))
	for name := range skirmish.CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if u, ok := skirmish.LookupCard(name).(*skirmish.UnitCard); ok {
			fmt.Printf("%-16s cost %d  %d/%d\n", name, u.Cost(), u.AttackValue(), u.MaxHealth())
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
