package skirmish

import (
	"errors"
	"fmt"

	"github.com/CAMongrel/mytcglib/core"
	"github.com/CAMongrel/mytcglib/eventlog"
)

const (
	DefaultDeckSize  = 15
	OpeningHandSize  = 3
	DefaultMaxRounds = 60
)

var (
	ErrNotRunning    = errors.New("match is not running")
	ErrNotYourTurn   = errors.New("player is not the active player")
	ErrInvalidAction = errors.New("invalid action")
)

// Config sets up a skirmish match. DeckLists are template pools the heroes
// build their decks from during preparation; a hero with an empty list keeps
// whatever deck it already has.
type Config struct {
	Heroes      [2]*HeroPlayer
	Controllers [2]Controller
	DeckLists   [2][]core.Card
	DeckSize    int
	MaxRounds   int
	NoShuffle   bool // skip deck shuffles (for deterministic tests)
	Logger      eventlog.Logger
	Rand        core.Rand
}

// Match is a two-hero skirmish over a core match: boards, combat, and the
// hero-health win condition.
type Match struct {
	core        *core.Match
	heroes      [2]*HeroPlayer
	controllers [2]Controller
	deckLists   [2][]core.Card
	deckSize    int
	maxRounds   int
	noShuffle   bool
	logger      eventlog.Logger

	over   bool
	winner int // hero index, or -1
	result string
}

// NewMatch wires a skirmish match into a core match via the core's
// extension hooks.
func NewMatch(cfg Config) (*Match, error) {
	if cfg.Heroes[0] == nil || cfg.Heroes[1] == nil {
		return nil, fmt.Errorf("%w: both heroes are required", ErrInvalidAction)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = eventlog.NewMemoryLogger()
	}
	deckSize := cfg.DeckSize
	if deckSize == 0 {
		deckSize = DefaultDeckSize
	}
	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	m := &Match{
		heroes:      cfg.Heroes,
		controllers: cfg.Controllers,
		deckLists:   cfg.DeckLists,
		deckSize:    deckSize,
		maxRounds:   maxRounds,
		noShuffle:   cfg.NoShuffle,
		logger:      logger,
		winner:      -1,
	}
	for _, h := range m.heroes {
		h.attachLogger(logger)
	}

	m.core = core.NewMatch(core.MatchConfig{
		Players: []core.Player{m.heroes[0], m.heroes[1]},
		Rand:    cfg.Rand,
		Hooks: core.MatchHooks{
			ClearPlayfield: m.clearPlayfield,
			PreparePlayers: m.preparePlayers,
			ActiveCards:    m.activeCards,
		},
	})
	return m, nil
}

// Core exposes the underlying core match.
func (m *Match) Core() *core.Match {
	return m.core
}

func (m *Match) Heroes() [2]*HeroPlayer {
	return m.heroes
}

func (m *Match) Logger() eventlog.Logger {
	return m.logger
}

func (m *Match) CurrentRound() int {
	return m.core.CurrentRound()
}

// ActiveHero returns the hero whose turn it is, or nil.
func (m *Match) ActiveHero() *HeroPlayer {
	active := m.core.ActivePlayer()
	if active == nil {
		return nil
	}
	for _, h := range m.heroes {
		if h.ID() == active.ID() {
			return h
		}
	}
	return nil
}

// Opponent returns the other hero.
func (m *Match) Opponent(hero *HeroPlayer) *HeroPlayer {
	return m.heroes[1-m.heroIndex(hero)]
}

// IsOver reports whether the match has finished.
func (m *Match) IsOver() bool {
	return m.over || !m.core.IsRunning()
}

// Winner returns the winning hero index, or -1.
func (m *Match) Winner() int {
	return m.winner
}

// Result returns a human-readable outcome, empty while the match runs.
func (m *Match) Result() string {
	return m.result
}

func (m *Match) heroIndex(hero *HeroPlayer) int {
	if hero != nil && m.heroes[1].ID() == hero.ID() {
		return 1
	}
	return 0
}

// --- Core match hooks ---

func (m *Match) clearPlayfield(*core.Match) {
	for _, h := range m.heroes {
		h.Board().Clear()
		h.ResetHero()
	}
}

func (m *Match) preparePlayers(cm *core.Match) {
	for i, h := range m.heroes {
		if len(m.deckLists[i]) > 0 {
			if err := h.CreateRandomDeck(m.deckLists[i], m.deckSize, cm.Rand()); err != nil {
				m.logger.Record(eventlog.Event{
					Type:    eventlog.EventDiagnostic,
					Player:  h.Name(),
					Details: "deck build failed: " + err.Error(),
				})
				continue
			}
		}
		if !m.noShuffle {
			h.Deck().Shuffle(cm.Rand())
		}
		for j := 0; j < OpeningHandSize; j++ {
			if _, err := h.DrawCard(); err != nil {
				break
			}
		}
	}
}

func (m *Match) activeCards(*core.Match) []core.Card {
	var cards []core.Card
	for _, h := range m.heroes {
		for _, u := range h.Board().Units() {
			cards = append(cards, u)
		}
	}
	return cards
}

// --- Match flow ---

// Start prepares and starts the underlying core match.
func (m *Match) Start() {
	names := []string{m.heroes[0].Name(), m.heroes[1].Name()}
	m.logger.Record(eventlog.NewMatchStartEvent(names))
	m.core.PreStart()
	m.core.Start()
	m.resetAttackFlags()
}

// EndTurn advances to the next round. Once MaxRounds rounds have been
// played the match stops as a draw instead; no round past the limit ever
// starts.
func (m *Match) EndTurn() {
	if m.IsOver() {
		return
	}
	if m.core.CurrentRound() >= m.maxRounds {
		m.over = true
		m.result = fmt.Sprintf("round limit reached (%d rounds)", m.maxRounds)
		m.core.Stop()
		m.logger.Record(eventlog.NewMatchOverEvent(m.core.CurrentRound(), m.result))
		return
	}
	m.core.StartNextRound()
	m.reapDead()
	m.resetAttackFlags()
}

// resetAttackFlags lets the new active hero's units attack again.
func (m *Match) resetAttackFlags() {
	active := m.ActiveHero()
	if active == nil {
		return
	}
	for _, u := range active.Board().Units() {
		u.attackedThisRound = false
	}
}

// PlayCard moves the card at handIndex onto the hero's board. A negative
// zone picks the first free one. Returns false without error when a
// pre-action hook aborts the play.
func (m *Match) PlayCard(hero *HeroPlayer, handIndex, zone int) (bool, error) {
	if m.IsOver() {
		return false, ErrNotRunning
	}
	if m.ActiveHero() != hero {
		return false, ErrNotYourTurn
	}
	card := hero.Hand().PeekCard(handIndex)
	if card == nil {
		return false, fmt.Errorf("%w: no card at hand index %d", ErrInvalidAction, handIndex)
	}
	unit, ok := card.(*UnitCard)
	if !ok {
		return false, fmt.Errorf("%w: card %q is not a unit", ErrInvalidAction, card.Name())
	}
	if zone < 0 {
		zone = hero.Board().FreeZone()
	}
	if zone < 0 || zone >= BoardSize {
		return false, fmt.Errorf("%w: board is full", ErrInvalidAction)
	}
	if hero.Board().UnitAt(zone) != nil {
		return false, ErrZoneOccupied
	}

	if !unit.ApplyPreActionEffect() {
		m.logger.Record(eventlog.NewAbortEvent(m.CurrentRound(), unit.Name(), "pre-action"))
		return false, nil
	}

	hero.Hand().RemoveCard(unit)
	if err := hero.Board().Place(unit, zone); err != nil {
		return false, err
	}
	m.logger.Record(eventlog.NewPlayEvent(m.CurrentRound(), hero.Name(), unit.Name(), zone))
	unit.ApplyPlayEffect()
	unit.ApplyPostActionEffect()
	m.reapDead()
	return true, nil
}

// Attack resolves a unit-versus-unit attack. Both units deal their attack
// value to the other. Returns false without error when any pre-hook aborts.
// An aborted attack still consumes the attacker's attack for the round.
func (m *Match) Attack(hero *HeroPlayer, attacker, target *UnitCard) (bool, error) {
	if m.IsOver() {
		return false, ErrNotRunning
	}
	if m.ActiveHero() != hero {
		return false, ErrNotYourTurn
	}
	if hero.Board().Zone(attacker) < 0 {
		return false, fmt.Errorf("%w: attacker is not on the board", ErrInvalidAction)
	}
	opponent := m.Opponent(hero)
	if opponent.Board().Zone(target) < 0 {
		return false, fmt.Errorf("%w: target is not on the opponent's board", ErrInvalidAction)
	}
	if attacker.attackedThisRound {
		return false, fmt.Errorf("%w: %s already attacked this round", ErrInvalidAction, attacker.Name())
	}
	attacker.attackedThisRound = true

	if !attacker.ApplyPreActionEffect() {
		m.logger.Record(eventlog.NewAbortEvent(m.CurrentRound(), attacker.Name(), "pre-action"))
		return false, nil
	}
	if !target.ApplyPreTargetEffect(attacker) {
		m.logger.Record(eventlog.NewAbortEvent(m.CurrentRound(), target.Name(), "untargetable"))
		return false, nil
	}
	if !target.ApplyPreAttackedEffect(attacker) {
		m.logger.Record(eventlog.NewAbortEvent(m.CurrentRound(), target.Name(), "attack prevented"))
		return false, nil
	}

	m.logger.Record(eventlog.NewAttackEvent(m.CurrentRound(), hero.Name(), attacker.Name(), target.Name()))

	m.dealDamage(target, attacker.AttackValue())
	m.dealDamage(attacker, target.AttackValue())

	target.ApplyPostAttackedEffect(attacker)
	target.ApplyPostTargetEffect(attacker)
	attacker.ApplyPostActionEffect()

	m.reapDead()
	return true, nil
}

// AttackHero resolves a direct attack. Only legal while the opponent's board
// is empty.
func (m *Match) AttackHero(hero *HeroPlayer, attacker *UnitCard) (bool, error) {
	if m.IsOver() {
		return false, ErrNotRunning
	}
	if m.ActiveHero() != hero {
		return false, ErrNotYourTurn
	}
	if hero.Board().Zone(attacker) < 0 {
		return false, fmt.Errorf("%w: attacker is not on the board", ErrInvalidAction)
	}
	opponent := m.Opponent(hero)
	if opponent.Board().Count() > 0 {
		return false, fmt.Errorf("%w: opponent still has units", ErrInvalidAction)
	}
	if attacker.attackedThisRound {
		return false, fmt.Errorf("%w: %s already attacked this round", ErrInvalidAction, attacker.Name())
	}
	attacker.attackedThisRound = true

	if !attacker.ApplyPreActionEffect() {
		m.logger.Record(eventlog.NewAbortEvent(m.CurrentRound(), attacker.Name(), "pre-action"))
		return false, nil
	}

	m.logger.Record(eventlog.NewAttackEvent(m.CurrentRound(), hero.Name(), attacker.Name(), opponent.Name()))
	damage := attacker.AttackValue()
	opponent.TakeHeroDamage(damage)
	m.logger.Record(eventlog.NewHeroDamageEvent(m.CurrentRound(), opponent.Name(), damage, opponent.Health()))

	attacker.ApplyPostActionEffect()

	if opponent.Health() <= 0 {
		m.finish(opponent, "hero health reached 0")
	}
	return true, nil
}

// Concede forfeits the match for the given hero.
func (m *Match) Concede(hero *HeroPlayer) {
	if m.IsOver() {
		return
	}
	m.logger.Record(eventlog.NewConcedeEvent(m.CurrentRound(), hero.Name()))
	m.finish(hero, "concede")
}

// dealDamage applies unit damage and records it.
func (m *Match) dealDamage(u *UnitCard, amount int) {
	if amount <= 0 {
		return
	}
	u.TakeDamage(amount)
	m.logger.Record(eventlog.NewDamageEvent(m.CurrentRound(), u.Name(), amount, u.CurrentHealth()))
}

// reapDead removes destroyed units from both boards and fires their death
// hooks. Death effects can draw cards but cannot re-enter the board, so one
// sweep is enough.
func (m *Match) reapDead() {
	for _, h := range m.heroes {
		for _, u := range h.Board().Units() {
			if u.IsDestroyed() {
				h.Board().Remove(u)
				m.logger.Record(eventlog.NewDeathEvent(m.CurrentRound(), u.Name()))
				u.ApplyDeathEffect()
			}
		}
	}
}

// finish stops the core match (loser notified first) and records the result.
func (m *Match) finish(loser *HeroPlayer, reason string) {
	if m.over {
		return
	}
	m.over = true
	m.winner = 1 - m.heroIndex(loser)
	m.result = fmt.Sprintf("%s wins: %s", m.heroes[m.winner].Name(), reason)
	if err := m.core.DeclareLoser(loser); err != nil {
		m.logger.Record(eventlog.Event{
			Type:    eventlog.EventDiagnostic,
			Details: "declare loser failed: " + err.Error(),
		})
	}
	m.logger.Record(eventlog.NewMatchOverEvent(m.CurrentRound(), m.result))
}

// Run plays the whole match with the configured controllers. Returns the
// winning hero index, or -1 for a round-limit draw.
func (m *Match) Run() (int, error) {
	if m.controllers[0] == nil || m.controllers[1] == nil {
		return -1, fmt.Errorf("%w: both controllers are required", ErrInvalidAction)
	}

	m.Start()
	for !m.IsOver() {
		hero := m.ActiveHero()
		if hero == nil {
			break
		}
		ctrl := m.controllers[m.heroIndex(hero)]
		actions := m.ComputeActions(hero)

		chosen, err := ctrl.ChooseAction(m, hero, actions)
		if err != nil {
			return -1, err
		}

		switch chosen.Type {
		case ActionPlay:
			if _, err := m.PlayCard(hero, chosen.HandIndex, chosen.Zone); err != nil {
				return -1, err
			}
		case ActionAttackUnit:
			if _, err := m.Attack(hero, chosen.Attacker, chosen.Target); err != nil {
				return -1, err
			}
		case ActionAttackHero:
			if _, err := m.AttackHero(hero, chosen.Attacker); err != nil {
				return -1, err
			}
		case ActionConcede:
			m.Concede(hero)
		case ActionEndTurn:
			m.EndTurn()
		default:
			return -1, fmt.Errorf("%w: unknown action %v", ErrInvalidAction, chosen.Type)
		}
	}
	return m.winner, nil
}
