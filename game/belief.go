package game

import (
	"math/bits"
	"strings"
)

// ColourSet is a bitmask over Colour.
type ColourSet uint8

// NumberSet is a bitmask over card numbers, bit n for number n.
type NumberSet uint8

const (
	AllColours ColourSet = 1<<NumColours - 1
	AllNumbers NumberSet = (1<<(MaxNumber+1) - 1) &^ 1
)

func (s ColourSet) Has(c Colour) bool { return s&(1<<c) != 0 }

func (s ColourSet) Len() int { return bits.OnesCount8(uint8(s)) }

func (s ColourSet) Without(c Colour) ColourSet { return s &^ (1 << c) }

// Only returns the single member of a singleton set.
func (s ColourSet) Only() (Colour, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return Colour(bits.TrailingZeros8(uint8(s))), true
}

func (s ColourSet) String() string {
	names := []string{}
	for _, c := range Colours {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

func (s NumberSet) Has(n int) bool {
	return n >= 1 && n <= MaxNumber && s&(1<<n) != 0
}

func (s NumberSet) Len() int { return bits.OnesCount8(uint8(s)) }

func (s NumberSet) Without(n int) NumberSet {
	if n < 1 || n > MaxNumber {
		return s
	}
	return s &^ (1 << n)
}

func (s NumberSet) Only() (int, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return bits.TrailingZeros8(uint8(s)), true
}

func (s NumberSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for n := 1; n <= MaxNumber; n++ {
		if !s.Has(n) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteByte(byte('0' + n))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Knowledge is what a holder knows about one of its own cards.
type Knowledge struct {
	PossibleColours ColourSet
	PossibleNumbers NumberSet
	Timestamp       int
}

func newKnowledge(timestamp int) Knowledge {
	return Knowledge{PossibleColours: AllColours, PossibleNumbers: AllNumbers, Timestamp: timestamp}
}

func (k Knowledge) Colour() (Colour, bool) { return k.PossibleColours.Only() }

func (k Knowledge) Number() (int, bool) { return k.PossibleNumbers.Only() }

// Resolved reports whether both colour and number are known.
func (k Knowledge) Resolved() bool {
	_, colourKnown := k.Colour()
	_, numberKnown := k.Number()
	return colourKnown && numberKnown
}

// Card returns the card when it is resolved.
func (k Knowledge) Card() (Card, bool) {
	c, colourKnown := k.Colour()
	n, numberKnown := k.Number()
	if !colourKnown || !numberKnown {
		return Card{}, false
	}
	return Card{Colour: c, Number: n}, true
}

// Admits reports whether the card is consistent with the knowledge.
func (k Knowledge) Admits(c Card) bool {
	return k.PossibleColours.Has(c.Colour) && k.PossibleNumbers.Has(c.Number)
}

// CardInHand binds a physical card to its holder's knowledge of it.
type CardInHand struct {
	card Card
	Knowledge
}

func NewCardInHand(card Card, timestamp int) CardInHand {
	return CardInHand{card: card, Knowledge: newKnowledge(timestamp)}
}

// Card is the ground truth, visible to everyone but the holder.
func (ch CardInHand) Card() Card {
	return ch.card
}

// LearnColour collapses the colour set on a match and removes the colour otherwise.
func (ch *CardInHand) LearnColour(c Colour) {
	if ch.card.Colour == c {
		ch.PossibleColours = 1 << c
		return
	}
	ch.PossibleColours = ch.PossibleColours.Without(c)
}

// LearnNumber collapses the number set on a match and removes the number otherwise.
func (ch *CardInHand) LearnNumber(n int) {
	if ch.card.Number == n {
		ch.PossibleNumbers = 1 << n
		return
	}
	ch.PossibleNumbers = ch.PossibleNumbers.Without(n)
}

// Learn applies a hint to this card.
func (ch *CardInHand) Learn(h Hint) {
	if h.IsColour() {
		ch.LearnColour(h.Colour)
		return
	}
	ch.LearnNumber(h.Number)
}

// Knows reports whether the hinted attribute is already known to the holder.
func (ch CardInHand) Knows(h Hint) bool {
	if h.IsColour() {
		_, ok := ch.Colour()
		return ok
	}
	_, ok := ch.Number()
	return ok
}
