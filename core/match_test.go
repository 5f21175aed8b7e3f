package core

import (
	"errors"
	"testing"
)

func newThreePlayerMatch(t *testing.T, sequence *[]string) (*Match, []*notePlayer) {
	t.Helper()
	players := []*notePlayer{
		newNotePlayer("A", sequence),
		newNotePlayer("B", sequence),
		newNotePlayer("C", sequence),
	}
	m := NewMatch(MatchConfig{
		Players: []Player{players[0], players[1], players[2]},
		Rand:    newTestRand(1),
	})
	return m, players
}

func TestMatchAttachesPlayers(t *testing.T) {
	m, players := newThreePlayerMatch(t, nil)
	for _, p := range players {
		if p.Match() != m {
			t.Errorf("player %q match = %v, want the new match", p.Name(), p.Match())
		}
	}
	if m.CurrentRound() != 0 {
		t.Errorf("round before start = %d, want 0", m.CurrentRound())
	}
	if m.IsRunning() {
		t.Error("match running before Start")
	}
	if m.ActivePlayer() != nil {
		t.Error("active player set before Start")
	}
}

func TestRoundRobinActivation(t *testing.T) {
	m, players := newThreePlayerMatch(t, nil)
	m.PreStart()
	m.Start()

	steps := []struct {
		round  int
		active *notePlayer
	}{
		{1, players[0]},
		{2, players[1]},
		{3, players[2]},
		{4, players[0]}, // wraps around
	}
	for i, step := range steps {
		if i > 0 {
			m.StartNextRound()
		}
		if got := m.CurrentRound(); got != step.round {
			t.Fatalf("step %d: round = %d, want %d", i, got, step.round)
		}
		if !samePlayer(m.ActivePlayer(), step.active) {
			t.Fatalf("step %d: active player = %v, want %q", i, m.ActivePlayer(), step.active.Name())
		}
	}

	if players[0].turnStarts != 2 {
		t.Errorf("player A started %d turns, want 2", players[0].turnStarts)
	}
	if players[0].turnEnds != 1 {
		t.Errorf("player A ended %d turns, want 1", players[0].turnEnds)
	}
}

func TestStartNextRoundNotRunning(t *testing.T) {
	m, _ := newThreePlayerMatch(t, nil)
	m.StartNextRound()
	if m.CurrentRound() != 0 {
		t.Errorf("round advanced to %d on a match that is not running", m.CurrentRound())
	}
	if m.ActivePlayer() != nil {
		t.Error("player activated on a match that is not running")
	}
}

func TestActivateNilPlayer(t *testing.T) {
	m, _ := newThreePlayerMatch(t, nil)
	if err := m.ActivatePlayer(nil); !errors.Is(err, ErrNilPlayer) {
		t.Errorf("ActivatePlayer(nil) = %v, want ErrNilPlayer", err)
	}
}

func TestDeactivateNilPlayerIsNoOp(t *testing.T) {
	m, _ := newThreePlayerMatch(t, nil)
	m.DeactivatePlayer(nil)
}

func TestDeclareLoserNotifications(t *testing.T) {
	var sequence []string
	m, players := newThreePlayerMatch(t, &sequence)
	m.PreStart()
	m.Start()

	sequence = sequence[:0]
	if err := m.DeclareLoser(players[1]); err != nil {
		t.Fatalf("DeclareLoser: %v", err)
	}

	if m.IsRunning() {
		t.Error("match still running after DeclareLoser")
	}
	if players[1].defeats != 1 {
		t.Errorf("loser defeated %d times, want 1", players[1].defeats)
	}
	if players[1].victories != 0 {
		t.Errorf("loser also victorious %d times", players[1].victories)
	}
	if players[0].victories != 1 || players[2].victories != 1 {
		t.Errorf("winner victories = %d/%d, want 1/1", players[0].victories, players[2].victories)
	}
	if players[0].defeats != 0 || players[2].defeats != 0 {
		t.Error("a winner was notified as defeated")
	}

	// The loser hears about it before any winner.
	want := []string{"B:defeated", "A:victorious", "C:victorious"}
	if len(sequence) != len(want) {
		t.Fatalf("notification sequence = %v, want %v", sequence, want)
	}
	for i := range want {
		if sequence[i] != want[i] {
			t.Fatalf("notification sequence = %v, want %v", sequence, want)
		}
	}
}

func TestDeclareLoserNilAndUnknown(t *testing.T) {
	m, _ := newThreePlayerMatch(t, nil)
	m.PreStart()
	m.Start()

	if err := m.DeclareLoser(nil); !errors.Is(err, ErrNilPlayer) {
		t.Errorf("DeclareLoser(nil) = %v, want ErrNilPlayer", err)
	}
	stranger := NewBasePlayer("stranger", true)
	if err := m.DeclareLoser(stranger); !errors.Is(err, ErrPlayerNotInMatch) {
		t.Errorf("DeclareLoser(stranger) = %v, want ErrPlayerNotInMatch", err)
	}
	if !m.IsRunning() {
		t.Error("match stopped by a rejected DeclareLoser")
	}
}

func TestConcedeDelegatesToMatch(t *testing.T) {
	m, players := newThreePlayerMatch(t, nil)
	m.PreStart()
	m.Start()

	players[2].Concede()

	if m.IsRunning() {
		t.Error("match still running after concede")
	}
	if players[2].defeats != 1 {
		t.Errorf("conceding player defeated %d times, want 1", players[2].defeats)
	}
	if players[0].victories != 1 || players[1].victories != 1 {
		t.Error("remaining players not notified as winners")
	}
}

func TestPrepareStartRunsHooksInOrder(t *testing.T) {
	var calls []string
	var players []Player
	for _, name := range []string{"A", "B"} {
		players = append(players, NewBasePlayer(name, true))
	}
	m := NewMatch(MatchConfig{
		Players: players,
		Hooks: MatchHooks{
			ClearPlayfield: func(*Match) { calls = append(calls, "clear") },
			PreparePlayers: func(*Match) { calls = append(calls, "prepare") },
		},
	})

	m.PreStart()

	if len(calls) != 2 || calls[0] != "clear" || calls[1] != "prepare" {
		t.Errorf("hook order = %v, want [clear prepare]", calls)
	}
	if m.CurrentRound() != 0 {
		t.Errorf("round after PreStart = %d, want 0", m.CurrentRound())
	}
}

func TestSwitchToRunStateOverride(t *testing.T) {
	var overridden bool
	p := NewBasePlayer("A", true)
	m := NewMatch(MatchConfig{
		Players: []Player{p},
		Hooks: MatchHooks{
			SwitchToRunState: func(m *Match) {
				overridden = true
				m.SwitchToRunState() // keep the base transition
			},
		},
	})

	m.PreStart()
	m.Start()

	if !overridden {
		t.Error("SwitchToRunState override not invoked")
	}
	if !m.IsRunning() {
		t.Error("match not running after overridden run transition")
	}
}

func TestRoundHookFanOut(t *testing.T) {
	cards := []*testCard{newTestCard("one"), newTestCard("two")}
	m, players := newThreePlayerMatch(t, nil)
	m.hooks.ActiveCards = func(*Match) []Card {
		return []Card{cards[0], cards[1]}
	}

	m.PreStart()
	m.Start()

	for _, c := range cards {
		if c.startRounds != 1 {
			t.Errorf("card %q start-of-round fired %d times after Start, want 1", c.Name(), c.startRounds)
		}
		if c.endRounds != 0 {
			t.Errorf("card %q end-of-round fired %d times after Start, want 0", c.Name(), c.endRounds)
		}
		if !samePlayer(c.lastActive, players[0]) {
			t.Errorf("card %q saw active player %v, want A", c.Name(), c.lastActive)
		}
	}

	m.StartNextRound()

	for _, c := range cards {
		if c.endRounds != 1 {
			t.Errorf("card %q end-of-round fired %d times after round 2, want 1", c.Name(), c.endRounds)
		}
		if c.startRounds != 2 {
			t.Errorf("card %q start-of-round fired %d times after round 2, want 2", c.Name(), c.startRounds)
		}
		if !samePlayer(c.lastActive, players[1]) {
			t.Errorf("card %q saw active player %v, want B", c.Name(), c.lastActive)
		}
	}
}
