package game

// PlayArea holds the five colour stacks. Each stack is always 1..k, so only the top is stored.
type PlayArea struct {
	tops [NumColours]int
}

// Play appends the card to its colour's stack if it is the next number needed.
func (pa *PlayArea) Play(card Card) bool {
	if !card.Valid() || pa.tops[card.Colour]+1 != card.Number {
		return false
	}
	pa.tops[card.Colour] = card.Number
	return true
}

// Top returns the highest number played in the colour, 0 if the stack is empty.
func (pa PlayArea) Top(c Colour) int {
	return pa.tops[c]
}

func (pa PlayArea) Score() int {
	score := 0
	for _, top := range pa.tops {
		score += top
	}
	return score
}

// PlayableCards returns the next card needed in each colour. Completed colours contribute nothing.
func (pa PlayArea) PlayableCards() map[Card]struct{} {
	cards := make(map[Card]struct{}, NumColours)
	for _, colour := range Colours {
		if next := pa.tops[colour] + 1; next <= MaxNumber {
			cards[Card{Colour: colour, Number: next}] = struct{}{}
		}
	}
	return cards
}

// FuturePlayableCards returns every card from the next needed number up to 5 in each colour.
func (pa PlayArea) FuturePlayableCards() map[Card]struct{} {
	cards := make(map[Card]struct{})
	for _, colour := range Colours {
		for n := pa.tops[colour] + 1; n <= MaxNumber; n++ {
			cards[Card{Colour: colour, Number: n}] = struct{}{}
		}
	}
	return cards
}

// PlayedCards returns every card currently on a stack.
func (pa PlayArea) PlayedCards() map[Card]struct{} {
	cards := make(map[Card]struct{})
	for _, colour := range Colours {
		for n := 1; n <= pa.tops[colour]; n++ {
			cards[Card{Colour: colour, Number: n}] = struct{}{}
		}
	}
	return cards
}

func (pa PlayArea) IsPlayable(card Card) bool {
	return card.Valid() && pa.tops[card.Colour]+1 == card.Number
}

func (pa PlayArea) IsFuturePlayable(card Card) bool {
	return card.Valid() && card.Number > pa.tops[card.Colour]
}

func (pa PlayArea) IsPlayed(card Card) bool {
	return card.Valid() && card.Number <= pa.tops[card.Colour]
}

// Complete reports whether the colour's stack has reached 5.
func (pa PlayArea) Complete(c Colour) bool {
	return pa.tops[c] == MaxNumber
}
