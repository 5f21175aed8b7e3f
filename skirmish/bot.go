package skirmish

// BotController is a greedy automatic player: it plays the first playable
// card, then spends every attack, then ends the turn. Deterministic so bot
// matches with a seeded randomness source replay identically.
type BotController struct{}

func NewBotController() *BotController {
	return &BotController{}
}

func (b *BotController) ChooseAction(m *Match, hero *HeroPlayer, actions []Action) (Action, error) {
	for _, preferred := range []ActionType{ActionPlay, ActionAttackUnit, ActionAttackHero} {
		for _, a := range actions {
			if a.Type == preferred {
				return a, nil
			}
		}
	}
	return Action{Type: ActionEndTurn}, nil
}
