package game

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Colour int

const (
	White Colour = iota
	Yellow
	Green
	Blue
	Red
)

const (
	NumColours = 5
	MaxNumber  = 5
	DeckSize   = 50
)

// Colours lists every colour in enumeration order.
var Colours = [NumColours]Colour{White, Yellow, Green, Blue, Red}

var colourNames = [NumColours]string{"white", "yellow", "green", "blue", "red"}

var colourPainters = [NumColours]func(format string, a ...interface{}) string{
	color.New(color.FgHiWhite).SprintfFunc(),
	color.New(color.FgHiYellow).SprintfFunc(),
	color.New(color.FgHiGreen).SprintfFunc(),
	color.New(color.FgHiBlue).SprintfFunc(),
	color.New(color.FgHiRed).SprintfFunc(),
}

func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("colour(%d)", int(c))
	}
	return colourNames[c]
}

func (c Colour) Valid() bool {
	return c >= White && c <= Red
}

// ParseColour maps a colour name (case insensitive) back to its Colour.
func ParseColour(name string) (Colour, error) {
	for i, n := range colourNames {
		if strings.EqualFold(n, name) {
			return Colour(i), nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", name)
}

// Card is a value type; two cards with the same colour and number are interchangeable.
type Card struct {
	Colour Colour
	Number int
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Colour, c.Number)
}

// Paint renders the card in its own terminal colour.
func (c Card) Paint() string {
	if !c.Valid() {
		return c.String()
	}
	return colourPainters[c.Colour]("%s", c.String())
}

func (c Card) Valid() bool {
	return c.Colour.Valid() && c.Number >= 1 && c.Number <= MaxNumber
}

// copiesPerNumber is the multiplicity of each number within one colour, indexed by number.
var copiesPerNumber = [MaxNumber + 1]int{0, 3, 2, 2, 2, 1}

// referenceDeck is the full 50 card composition, built once.
var referenceDeck = buildReferenceDeck()

func buildReferenceDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, colour := range Colours {
		for number := 1; number <= MaxNumber; number++ {
			for i := 0; i < copiesPerNumber[number]; i++ {
				cards = append(cards, Card{Colour: colour, Number: number})
			}
		}
	}
	return cards
}

// ReferenceDeck returns a fresh copy of the unshuffled 50 card composition.
func ReferenceDeck() []Card {
	cards := make([]Card, len(referenceDeck))
	copy(cards, referenceDeck)
	return cards
}

// Copies returns how many copies of the card exist in the reference deck.
func Copies(c Card) int {
	if !c.Valid() {
		return 0
	}
	return copiesPerNumber[c.Number]
}

// Multiset counts cards by kind.
type Multiset map[Card]int

func NewMultiset(cards ...Card) Multiset {
	m := make(Multiset, len(cards))
	for _, c := range cards {
		m[c]++
	}
	return m
}

// ReferenceMultiset returns the reference deck counted by kind.
func ReferenceMultiset() Multiset {
	return NewMultiset(referenceDeck...)
}

// Remove takes one copy of c out of the multiset and reports whether one was present.
func (m Multiset) Remove(c Card) bool {
	if m[c] == 0 {
		return false
	}
	m[c]--
	if m[c] == 0 {
		delete(m, c)
	}
	return true
}

func (m Multiset) Len() int {
	n := 0
	for _, count := range m {
		n += count
	}
	return n
}

func (m Multiset) Equal(other Multiset) bool {
	if len(m) != len(other) {
		return false
	}
	for c, count := range m {
		if other[c] != count {
			return false
		}
	}
	return true
}
