package game

import (
	"fmt"
)

type State int

const (
	Active       State = iota
	EndTriggered       // the deck ran out; each player gets one more turn
	Finished
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case EndTriggered:
		return "end-triggered"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const NumPlayers = 2

// graceTurns is the grace period once the deck is exhausted, one turn per player.
const graceTurns = NumPlayers

// Game owns the deck, the play area, the discard pile and both players for the lifetime of one match.
type Game struct {
	rules             Rules
	deck              *Deck
	playArea          PlayArea
	discardPile       []Card
	players           [NumPlayers]*Player
	clock             int
	fuse              int
	state             State
	turnsAfterTrigger int
	blownUp           bool
	current           int
	turn              int
	nextTimestamp     int
}

// New deals a starting hand to each player, player 0 first, and returns a game ready for player 0's turn.
func New(deck *Deck, rules Rules, policies [NumPlayers]Policy) *Game {
	if rules == nil {
		rules = NewStandardRules()
	}
	if deck.Len() < NumPlayers*rules.HandSize() {
		panic(fmt.Sprintf("deck of %d cards cannot deal %d hands of %d", deck.Len(), NumPlayers, rules.HandSize()))
	}
	g := &Game{
		rules: rules,
		deck:  deck,
		clock: rules.MaxClock(),
		fuse:  rules.Fuses(),
		state: Active,
	}
	for i := range g.players {
		g.players[i] = NewPlayer(i, policies[i])
		for j := 0; j < rules.HandSize(); j++ {
			card, err := deck.Draw()
			if err != nil {
				panic(err)
			}
			g.players[i].receive(card, g.stamp())
		}
	}
	return g
}

func (g *Game) stamp() int {
	ts := g.nextTimestamp
	g.nextTimestamp++
	return ts
}

// Partner returns the other seat.
func (g *Game) Partner(player int) int {
	return NumPlayers - 1 - player
}

// Play puts the card on the play area. A card that does not fit burns a fuse and goes to the discard pile.
// It returns the replacement card, if one was drawn.
func (g *Game) Play(card Card) (Card, bool, error) {
	if g.state == Finished {
		return Card{}, false, ErrGameOver
	}
	if !g.playArea.Play(card) {
		g.fuse--
		g.discardPile = append(g.discardPile, card)
		if g.fuse == 0 {
			g.blownUp = true
			g.state = Finished
			return Card{}, false, nil
		}
	} else if card.Number == MaxNumber && g.rules.RewardsCompletion() {
		g.addClock()
	}
	drawn, ok := g.afterAction(true)
	return drawn, ok, nil
}

// Discard moves the card to the discard pile and returns a clock token.
func (g *Game) Discard(card Card) (Card, bool, error) {
	if g.state == Finished {
		return Card{}, false, ErrGameOver
	}
	g.discardPile = append(g.discardPile, card)
	g.addClock()
	drawn, ok := g.afterAction(true)
	return drawn, ok, nil
}

// GiveHint applies the hint to the giver's partner's hand and spends a clock token.
func (g *Game) GiveHint(giver int, h Hint) error {
	if g.state == Finished {
		return ErrGameOver
	}
	if giver < 0 || giver >= NumPlayers {
		return fmt.Errorf("unknown player %d", giver)
	}
	if !h.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidHint, h)
	}
	if g.clock == 0 {
		return ErrNoClock
	}
	g.players[g.Partner(giver)].learn(h)
	g.clock--
	g.afterAction(false)
	return nil
}

func (g *Game) addClock() {
	if g.clock < g.rules.MaxClock() {
		g.clock++
	}
}

// afterAction draws a replacement when asked to, or counts down the grace period once the deck is exhausted.
func (g *Game) afterAction(draw bool) (Card, bool) {
	if g.state == EndTriggered {
		g.turnsAfterTrigger--
		if g.turnsAfterTrigger == 0 {
			g.state = Finished
		}
		return Card{}, false
	}
	if !draw {
		return Card{}, false
	}
	card, err := g.deck.Draw()
	if err != nil {
		g.trigger()
		return Card{}, false
	}
	if g.deck.IsEmpty() {
		g.trigger()
	}
	return card, true
}

func (g *Game) trigger() {
	g.state = EndTriggered
	g.turnsAfterTrigger = graceTurns
}

// Act executes an action for the current player and passes the turn.
func (g *Game) Act(a Action) error {
	if g.state == Finished {
		return ErrGameOver
	}
	player := g.players[g.current]

	switch a.Type {
	case PlayAction:
		card, err := player.play(a.Index)
		if err != nil {
			return fmt.Errorf("player %d cannot play card %d: %w", player.ID, a.Index, err)
		}
		drawn, ok, err := g.Play(card)
		if err != nil {
			return err
		}
		if ok {
			player.receive(drawn, g.stamp())
		}
	case DiscardAction:
		card, err := player.discard(a.Index)
		if err != nil {
			return fmt.Errorf("player %d cannot discard card %d: %w", player.ID, a.Index, err)
		}
		drawn, ok, err := g.Discard(card)
		if err != nil {
			return err
		}
		if ok {
			player.receive(drawn, g.stamp())
		}
	case HintAction:
		if err := g.GiveHint(player.ID, a.Hint); err != nil {
			return fmt.Errorf("player %d cannot hint %s: %w", player.ID, a.Hint, err)
		}
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}

	g.current = g.Partner(g.current)
	g.turn++
	return nil
}

// Step asks the current player's policy for an action and executes it.
func (g *Game) Step() (Action, error) {
	if g.state == Finished {
		return Action{}, ErrGameOver
	}
	a := g.players[g.current].chooseAction(g.View(g.current))
	return a, g.Act(a)
}

// PlayGame runs turns until the fuse burns out or the grace period after the last draw is over.
func (g *Game) PlayGame() (Result, error) {
	for g.state != Finished {
		if _, err := g.Step(); err != nil {
			return g.Result(), err
		}
	}
	return g.Result(), nil
}

func (g *Game) Result() Result {
	return Result{Score: g.playArea.Score(), BlownUp: g.blownUp}
}

// View builds the snapshot the given player's policy decides from.
func (g *Game) View(player int) View {
	return View{
		Player:      player,
		Hand:        g.players[player].Knowledge(),
		Partner:     g.players[g.Partner(player)].Hand(),
		PlayArea:    g.playArea,
		DiscardPile: g.DiscardPile(),
		Clock:       g.clock,
		MaxClock:    g.rules.MaxClock(),
		Fuse:        g.fuse,
		DeckSize:    g.deck.Len(),
	}
}

func (g *Game) State() State { return g.state }

func (g *Game) Clock() int { return g.clock }

func (g *Game) Fuse() int { return g.fuse }

func (g *Game) Score() int { return g.playArea.Score() }

func (g *Game) BlownUp() bool { return g.blownUp }

func (g *Game) Current() int { return g.current }

func (g *Game) Turn() int { return g.turn }

func (g *Game) DeckSize() int { return g.deck.Len() }

func (g *Game) PlayArea() PlayArea { return g.playArea }

func (g *Game) Rules() Rules { return g.rules }

func (g *Game) TurnsLeft() int { return g.turnsAfterTrigger }

func (g *Game) Player(i int) *Player { return g.players[i] }

func (g *Game) Hand(player int) []CardInHand {
	return g.players[player].Hand()
}

func (g *Game) DiscardPile() []Card {
	pile := make([]Card, len(g.discardPile))
	copy(pile, g.discardPile)
	return pile
}

// CardsInPlay gathers every physical card: deck, both hands, discard pile and play area.
func (g *Game) CardsInPlay() []Card {
	cards := g.deck.Cards()
	for _, p := range g.players {
		for _, ch := range p.hand {
			cards = append(cards, ch.card)
		}
	}
	cards = append(cards, g.discardPile...)
	for _, colour := range Colours {
		for n := 1; n <= g.playArea.Top(colour); n++ {
			cards = append(cards, Card{Colour: colour, Number: n})
		}
	}
	return cards
}
