package skirmish

import "fmt"

// ActionType enumerates the choices a controller can make on its turn.
type ActionType int

const (
	ActionPlay ActionType = iota
	ActionAttackUnit
	ActionAttackHero
	ActionEndTurn
	ActionConcede
)

func (a ActionType) String() string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionAttackUnit:
		return "Attack Unit"
	case ActionAttackHero:
		return "Attack Hero"
	case ActionEndTurn:
		return "End Turn"
	case ActionConcede:
		return "Concede"
	default:
		return "Unknown"
	}
}

// Action is one legal move, with the details needed to execute it.
type Action struct {
	Type      ActionType
	HandIndex int
	Zone      int
	Attacker  *UnitCard
	Target    *UnitCard
	Desc      string
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}

// Controller decides the active hero's next action. Both the bot and the
// external (web/MCP) seats implement it.
type Controller interface {
	ChooseAction(m *Match, hero *HeroPlayer, actions []Action) (Action, error)
}

// ComputeActions returns the legal actions for hero right now. EndTurn is
// always available.
func (m *Match) ComputeActions(hero *HeroPlayer) []Action {
	var actions []Action
	if m.IsOver() || m.ActiveHero() != hero {
		return actions
	}

	if free := hero.Board().FreeZone(); free >= 0 {
		for i, card := range hero.Hand().Cards() {
			unit, ok := card.(*UnitCard)
			if !ok {
				continue
			}
			actions = append(actions, Action{
				Type:      ActionPlay,
				HandIndex: i,
				Zone:      free,
				Desc:      fmt.Sprintf("Play %s (%d/%d)", unit.Name(), unit.AttackValue(), unit.CurrentHealth()),
			})
		}
	}

	opponent := m.Opponent(hero)
	defenders := opponent.Board().Units()
	for _, attacker := range hero.Board().Units() {
		if attacker.attackedThisRound {
			continue
		}
		if len(defenders) > 0 {
			for _, target := range defenders {
				actions = append(actions, Action{
					Type:     ActionAttackUnit,
					Attacker: attacker,
					Target:   target,
					Desc:     fmt.Sprintf("Attack %s → %s", attacker.Name(), target.Name()),
				})
			}
		} else {
			actions = append(actions, Action{
				Type:     ActionAttackHero,
				Attacker: attacker,
				Desc:     fmt.Sprintf("Attack %s → %s (hero)", attacker.Name(), opponent.Name()),
			})
		}
	}

	actions = append(actions, Action{Type: ActionEndTurn, Desc: "End Turn"})
	return actions
}
