package core

import "github.com/google/uuid"

// MatchHooks are the optional extension points a concrete game installs on a
// match. Nil fields fall back to the base behavior.
type MatchHooks struct {
	// ClearPlayfield resets board state during match preparation.
	ClearPlayfield func(m *Match)

	// PreparePlayers sets up initial hands and shuffles during preparation.
	PreparePlayers func(m *Match)

	// SwitchToRunState replaces the base run transition. An override that
	// wants the base behavior calls m.SwitchToRunState itself.
	SwitchToRunState func(m *Match)

	// ActiveCards enumerates the cards whose start/end-of-round hooks fire
	// on round transitions. The core does not know which cards are in play;
	// without this hook no round hooks fire.
	ActiveCards func(m *Match) []Card
}

// Match owns an ordered, fixed list of players and the round/turn state
// machine: it decides activation order, advances rounds, and declares loss
// and victory. One match must be confined to one execution context at a
// time; none of its methods are safe for concurrent use.
type Match struct {
	id           uuid.UUID
	players      []Player
	currentRound int
	running      bool
	prepared     bool
	activePlayer Player
	rng          Rand
	hooks        MatchHooks
}

// MatchConfig holds everything needed to set up a match. Rand may be nil,
// in which case the match creates its own source.
type MatchConfig struct {
	Players []Player
	Rand    Rand
	Hooks   MatchHooks
}

// NewMatch creates a match over the given players, in the given turn order,
// and attaches itself to each of them.
func NewMatch(cfg MatchConfig) *Match {
	rng := cfg.Rand
	if rng == nil {
		rng = newRand()
	}
	m := &Match{
		id:      uuid.New(),
		players: append([]Player(nil), cfg.Players...),
		rng:     rng,
		hooks:   cfg.Hooks,
	}
	for _, p := range m.players {
		p.SetMatch(m)
	}
	return m
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

// Players returns the fixed turn order.
func (m *Match) Players() []Player {
	return append([]Player(nil), m.players...)
}

// CurrentRound is 0 before play begins and one-based afterwards.
func (m *Match) CurrentRound() int {
	return m.currentRound
}

func (m *Match) IsRunning() bool {
	return m.running
}

// ActivePlayer returns the currently active player, or nil.
func (m *Match) ActivePlayer() Player {
	return m.activePlayer
}

// Rand returns the match's randomness source, for match-level randomization
// during preparation.
func (m *Match) Rand() Rand {
	return m.rng
}

// PreStart prepares the match. Must be called before Start.
func (m *Match) PreStart() {
	m.PrepareStart()
}

// PrepareStart resets the round counter and runs the ClearPlayfield and
// PreparePlayers extension points, in that order.
func (m *Match) PrepareStart() {
	logf("match: preparing start")
	m.currentRound = 0
	if m.hooks.ClearPlayfield != nil {
		m.hooks.ClearPlayfield(m)
	}
	if m.hooks.PreparePlayers != nil {
		m.hooks.PreparePlayers(m)
	}
	m.prepared = true
}

// Start transitions the match into the run state and begins round 1.
func (m *Match) Start() {
	if !m.prepared {
		logf("match: started without PreStart")
	}
	if m.hooks.SwitchToRunState != nil {
		m.hooks.SwitchToRunState(m)
	} else {
		m.SwitchToRunState()
	}
	m.StartNextRound()
}

// SwitchToRunState is the base run transition: it flips the running flag.
func (m *Match) SwitchToRunState() {
	logf("match: running")
	m.running = true
}

// Stop halts the match. The match never returns to its not-started state.
func (m *Match) Stop() {
	logf("match: stopped in round %d", m.currentRound)
	m.running = false
}

// StartNextRound deactivates the current player, advances the round counter
// and activates the next player in round-robin order. On a match that is not
// running it is a diagnostic no-op.
func (m *Match) StartNextRound() {
	if !m.running {
		logf("match: cannot advance round, match is not running")
		return
	}
	if len(m.players) == 0 {
		logf("match: cannot advance round, no players")
		return
	}

	if m.activePlayer != nil {
		m.forEachActiveCard(func(c Card) { c.ApplyEndOfRoundEffect(m.activePlayer) })
		m.DeactivatePlayer(m.activePlayer)
	}

	m.currentRound++
	next := m.players[(m.currentRound-1)%len(m.players)]
	if err := m.ActivatePlayer(next); err != nil {
		logf("match: activate player: %v", err)
		return
	}
	m.forEachActiveCard(func(c Card) { c.ApplyStartOfRoundEffect(next) })
}

// ActivatePlayer makes player the active one and starts its turn.
func (m *Match) ActivatePlayer(player Player) error {
	if player == nil {
		return ErrNilPlayer
	}
	logf("match: round %d, activating %q", m.currentRound, player.Name())
	m.activePlayer = player
	player.StartTurn()
	return nil
}

// DeactivatePlayer ends player's turn. A nil player is a silent no-op.
func (m *Match) DeactivatePlayer(player Player) {
	if player == nil {
		return
	}
	player.EndTurn()
	if samePlayer(m.activePlayer, player) {
		m.activePlayer = nil
	}
}

// Concede forfeits the match on behalf of player.
func (m *Match) Concede(player Player) error {
	if player == nil {
		return ErrNilPlayer
	}
	logf("match: %q concedes", player.Name())
	return m.DeclareLoser(player)
}

// DeclareLoser stops the match, then notifies the loser before any winner.
// Every other player in the fixed list is a winner.
func (m *Match) DeclareLoser(player Player) error {
	if player == nil {
		return ErrNilPlayer
	}

	var loser Player
	var winners []Player
	for _, p := range m.players {
		if samePlayer(p, player) {
			loser = p
		} else {
			winners = append(winners, p)
		}
	}
	if loser == nil {
		return ErrPlayerNotInMatch
	}

	m.Stop()
	loser.Defeated()
	for _, w := range winners {
		w.Victorious()
	}
	return nil
}

// forEachActiveCard fans an operation over the cards the concrete game
// reports as active.
func (m *Match) forEachActiveCard(fn func(Card)) {
	if m.hooks.ActiveCards == nil {
		return
	}
	for _, c := range m.hooks.ActiveCards(m) {
		if c != nil {
			fn(c)
		}
	}
}

// samePlayer compares players by ID, so a *BasePlayer embedded in a concrete
// player type still names the same player.
func samePlayer(a, b Player) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
