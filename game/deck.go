package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck is consumed from the end of its slice.
type Deck struct {
	cards []Card
}

// NewDeck wraps an externally shuffled sequence. The sequence must be exactly the reference composition.
func NewDeck(cards []Card) (*Deck, error) {
	if len(cards) != DeckSize {
		return nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidDeck, len(cards), DeckSize)
	}
	if !NewMultiset(cards...).Equal(ReferenceMultiset()) {
		return nil, fmt.Errorf("%w: composition does not match the reference deck", ErrInvalidDeck)
	}
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d, nil
}

// ShuffledDeck shuffles the reference deck with the given source.
func ShuffledDeck(src rand.Source) *Deck {
	cards := ReferenceDeck()
	r := rand.New(src)
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// SeededDeck is ShuffledDeck over a fresh source seeded with seed.
func SeededDeck(seed uint64) *Deck {
	return ShuffledDeck(rand.NewSource(seed))
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top of the deck last.
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
