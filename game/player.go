package game

// Player holds a hand of belief-annotated cards and the policy that picks its actions.
type Player struct {
	ID     int
	hand   []CardInHand
	policy Policy
}

func NewPlayer(id int, policy Policy) *Player {
	return &Player{ID: id, policy: policy}
}

// Hand returns a copy of the player's hand, ground truth included.
func (p *Player) Hand() []CardInHand {
	hand := make([]CardInHand, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// Knowledge returns what the player knows about each of its cards, in hand order.
func (p *Player) Knowledge() []Knowledge {
	known := make([]Knowledge, len(p.hand))
	for i, ch := range p.hand {
		known[i] = ch.Knowledge
	}
	return known
}

func (p *Player) Policy() Policy {
	return p.policy
}

func (p *Player) chooseAction(v View) Action {
	return p.policy.ChooseAction(v)
}

// take removes and returns the card at position i. Later cards shift down one position.
func (p *Player) take(i int) (Card, error) {
	if i < 0 || i >= len(p.hand) {
		return Card{}, ErrInvalidIndex
	}
	card := p.hand[i].card
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return card, nil
}

func (p *Player) play(i int) (Card, error) {
	return p.take(i)
}

func (p *Player) discard(i int) (Card, error) {
	return p.take(i)
}

// receive appends a freshly drawn card about which nothing is known yet.
func (p *Player) receive(card Card, timestamp int) {
	p.hand = append(p.hand, NewCardInHand(card, timestamp))
}

// learn applies a hint to every card in the hand.
func (p *Player) learn(h Hint) {
	for i := range p.hand {
		p.hand[i].Learn(h)
	}
}
