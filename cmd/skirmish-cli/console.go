package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CAMongrel/mytcglib/eventlog"
	"github.com/CAMongrel/mytcglib/skirmish"
)

// ConsoleController renders the match in the terminal and asks the human
// for a numbered action.
type ConsoleController struct {
	reader *bufio.Reader
	out    io.Writer
	seen   int // events already printed
}

func NewConsoleController(in io.Reader, out io.Writer) *ConsoleController {
	return &ConsoleController{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ChooseAction implements skirmish.Controller.
func (c *ConsoleController) ChooseAction(m *skirmish.Match, hero *skirmish.HeroPlayer, actions []skirmish.Action) (skirmish.Action, error) {
	c.printNewEvents(m)
	c.renderState(m, hero)
	c.renderActions(actions)
	idx := c.readChoice(len(actions))
	return actions[idx], nil
}

// printNewEvents prints everything that happened since the last prompt.
func (c *ConsoleController) printNewEvents(m *skirmish.Match) {
	events := m.Logger().Events()
	for ; c.seen < len(events); c.seen++ {
		fmt.Fprintln(c.out, eventlog.FormatEvent(events[c.seen]))
	}
}

func (c *ConsoleController) renderState(m *skirmish.Match, hero *skirmish.HeroPlayer) {
	opp := m.Opponent(hero)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║  %s  HP: %d  Hand: %d  Deck: %d\n",
		opp.Name(), opp.Health(), opp.Hand().Count(), opp.Deck().Count())
	fmt.Fprintf(c.out, "║  Board:  %s\n", formatBoard(opp.Board()))
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  Board:  %s\n", formatBoard(hero.Board()))
	fmt.Fprintf(c.out, "║  %s  HP: %d  Hand: %d  Deck: %d\n",
		hero.Name(), hero.Health(), hero.Hand().Count(), hero.Deck().Count())
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")
	fmt.Fprintf(c.out, "Round %d\n", m.CurrentRound())

	if hero.Hand().Count() > 0 {
		fmt.Fprint(c.out, "\nHand: ")
		for i, card := range hero.Hand().Cards() {
			if u, ok := card.(*skirmish.UnitCard); ok {
				fmt.Fprintf(c.out, "[%d] %s (%d, %d/%d)  ", i+1, u.Name(), u.Cost(), u.AttackValue(), u.CurrentHealth())
			}
		}
		fmt.Fprintln(c.out)
	}
}

func formatBoard(b *skirmish.Board) string {
	var sb strings.Builder
	for zone := 0; zone < skirmish.BoardSize; zone++ {
		u := b.UnitAt(zone)
		if u == nil {
			sb.WriteString("[ ] ")
			continue
		}
		marker := ""
		if u.AttackedThisRound() {
			marker = "*"
		}
		fmt.Fprintf(&sb, "[%s %d/%d%s] ", u.Name(), u.AttackValue(), u.CurrentHealth(), marker)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (c *ConsoleController) renderActions(actions []skirmish.Action) {
	fmt.Fprintln(c.out, "\nActions:")
	for i, a := range actions {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, a.String())
	}
}

func (c *ConsoleController) readChoice(count int) int {
	for {
		fmt.Fprint(c.out, "> ")
		line, _ := c.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > count {
			fmt.Fprintf(c.out, "Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1 // convert to 0-indexed
	}
}
