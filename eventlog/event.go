package eventlog

import "fmt"

// EventType enumerates all observable match events.
type EventType int

const (
	EventDiagnostic EventType = iota
	EventMatchStart
	EventRoundStart
	EventTurnStart
	EventTurnEnd
	EventDraw
	EventAddToHand
	EventPlay
	EventAttack
	EventDamage
	EventHeroDamage
	EventDeath
	EventAbort
	EventConcede
	EventDefeat
	EventVictory
	EventMatchOver
)

func (e EventType) String() string {
	switch e {
	case EventDiagnostic:
		return "Diagnostic"
	case EventMatchStart:
		return "MatchStart"
	case EventRoundStart:
		return "RoundStart"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventDraw:
		return "Draw"
	case EventAddToHand:
		return "AddToHand"
	case EventPlay:
		return "Play"
	case EventAttack:
		return "Attack"
	case EventDamage:
		return "Damage"
	case EventHeroDamage:
		return "HeroDamage"
	case EventDeath:
		return "Death"
	case EventAbort:
		return "Abort"
	case EventConcede:
		return "Concede"
	case EventDefeat:
		return "Defeat"
	case EventVictory:
		return "Victory"
	case EventMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Event represents a single observable event in a match.
type Event struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 before play begins)
	Player  string    // acting player name (if applicable)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}

// --- Helper constructors for common events ---

func NewMatchStartEvent(players []string) Event {
	return Event{
		Type:    EventMatchStart,
		Details: fmt.Sprintf("=== Match start: %v ===", players),
	}
}

func NewRoundStartEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d (%s) ===", round, player),
	}
}

func NewTurnStartEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("%s's turn begins", player),
	}
}

func NewTurnEndEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventTurnEnd,
		Details: fmt.Sprintf("%s's turn ends", player),
	}
}

func NewDrawEvent(round int, player, card string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventDraw,
		Card:    card,
		Details: fmt.Sprintf("%s draws %s", player, card),
	}
}

func NewPlayEvent(round int, player, card string, zone int) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventPlay,
		Card:    card,
		Details: fmt.Sprintf("%s plays %s to zone %d", player, card, zone+1),
	}
}

func NewAttackEvent(round int, player, attacker, target string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventAttack,
		Card:    attacker,
		Details: fmt.Sprintf("%s attacks: %s → %s", player, attacker, target),
	}
}

func NewDamageEvent(round int, card string, amount, remaining int) Event {
	return Event{
		Round:   round,
		Type:    EventDamage,
		Card:    card,
		Details: fmt.Sprintf("%s takes %d damage (%d health left)", card, amount, remaining),
	}
}

func NewHeroDamageEvent(round int, player string, amount, remaining int) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventHeroDamage,
		Details: fmt.Sprintf("%s takes %d hero damage (%d health left)", player, amount, remaining),
	}
}

func NewDeathEvent(round int, card string) Event {
	return Event{
		Round:   round,
		Type:    EventDeath,
		Card:    card,
		Details: fmt.Sprintf("%s is destroyed", card),
	}
}

func NewAbortEvent(round int, card, reason string) Event {
	return Event{
		Round:   round,
		Type:    EventAbort,
		Card:    card,
		Details: fmt.Sprintf("action involving %s aborted (%s)", card, reason),
	}
}

func NewConcedeEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventConcede,
		Details: fmt.Sprintf("%s concedes", player),
	}
}

func NewDefeatEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventDefeat,
		Details: fmt.Sprintf("%s is defeated", player),
	}
}

func NewVictoryEvent(round int, player string) Event {
	return Event{
		Round:   round,
		Player:  player,
		Type:    EventVictory,
		Details: fmt.Sprintf("%s wins!", player),
	}
}

func NewMatchOverEvent(round int, result string) Event {
	return Event{
		Round:   round,
		Type:    EventMatchOver,
		Details: result,
	}
}
