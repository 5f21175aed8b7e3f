package core

import "math/rand"

// testCard counts hook invocations so tests can assert exactly when the core
// fires them. Pre* results are configurable.
type testCard struct {
	*BaseCard

	drawCount   int
	addCount    int
	playCount   int
	deathCount  int
	startRounds int
	endRounds   int
	lastActive  Player

	allowAction   bool
	allowAttacked bool
	allowTarget   bool

	onAddToHand func()
}

func newTestCard(name string) *testCard {
	return &testCard{
		BaseCard:      NewBaseCard(name),
		allowAction:   true,
		allowAttacked: true,
		allowTarget:   true,
	}
}

func (c *testCard) CreateCopy() (Card, error) {
	return &testCard{
		BaseCard:      c.CopyBase(),
		allowAction:   c.allowAction,
		allowAttacked: c.allowAttacked,
		allowTarget:   c.allowTarget,
	}, nil
}

func (c *testCard) ApplyDrawEffect() {
	c.drawCount++
}

func (c *testCard) ApplyAddToHandEffect() {
	c.addCount++
	if c.onAddToHand != nil {
		c.onAddToHand()
	}
}

func (c *testCard) ApplyPlayEffect() {
	c.playCount++
}

func (c *testCard) ApplyDeathEffect() {
	c.deathCount++
}

func (c *testCard) ApplyStartOfRoundEffect(active Player) {
	c.startRounds++
	c.lastActive = active
}

func (c *testCard) ApplyEndOfRoundEffect(active Player) {
	c.endRounds++
	c.lastActive = active
}

func (c *testCard) ApplyPreActionEffect() bool {
	return c.allowAction
}

func (c *testCard) ApplyPreAttackedEffect(instigator Card) bool {
	return c.allowAttacked
}

func (c *testCard) ApplyPreTargetEffect(instigator Card) bool {
	return c.allowTarget
}

// notePlayer records its lifecycle notifications, optionally into a shared
// sequence for cross-player ordering assertions.
type notePlayer struct {
	*BasePlayer

	turnStarts int
	turnEnds   int
	victories  int
	defeats    int
	sequence   *[]string
}

func newNotePlayer(name string, sequence *[]string) *notePlayer {
	return &notePlayer{BasePlayer: NewBasePlayer(name, true), sequence: sequence}
}

func (p *notePlayer) note(event string) {
	if p.sequence != nil {
		*p.sequence = append(*p.sequence, p.Name()+":"+event)
	}
}

func (p *notePlayer) StartTurn() {
	p.turnStarts++
	p.note("start")
	p.BasePlayer.StartTurn()
}

func (p *notePlayer) EndTurn() {
	p.turnEnds++
	p.note("end")
	p.BasePlayer.EndTurn()
}

func (p *notePlayer) Victorious() {
	p.victories++
	p.note("victorious")
}

func (p *notePlayer) Defeated() {
	p.defeats++
	p.note("defeated")
}

// newTestRand returns a deterministic randomness source.
func newTestRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

func makeTestCards(prefix string, n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = newTestCard(prefix + string(rune('A'+i)))
	}
	return cards
}
