package heuristic

import (
	"fmt"

	"hanabi/game"
)

// ConsistencySet returns the cards the acting player's card at position target
// could still be, given everything that player can see. Partner cards, the discard
// pile, the play area and the player's other resolved cards are taken out of the
// reference deck, and the rest is filtered by the target's possible colours and numbers.
func ConsistencySet(v game.View, target int) game.Multiset {
	if target < 0 || target >= len(v.Hand) {
		panic(fmt.Sprintf("consistency set for card %d of a %d card hand", target, len(v.Hand)))
	}
	remaining := game.ReferenceMultiset()
	seen := func(c game.Card) {
		if !remaining.Remove(c) {
			panic(fmt.Sprintf("%s is visible more often than it exists", c))
		}
	}

	for _, ch := range v.Partner {
		seen(ch.Card())
	}
	for _, c := range v.DiscardPile {
		seen(c)
	}
	for c := range v.PlayArea.PlayedCards() {
		seen(c)
	}
	for i, k := range v.Hand {
		if i == target {
			continue
		}
		if c, ok := k.Card(); ok {
			seen(c)
		}
	}

	known := v.Hand[target]
	for c := range remaining {
		if !known.Admits(c) {
			delete(remaining, c)
		}
	}
	return remaining
}

// Probability is the share of the set, counted with multiplicity, that satisfies pred.
// An empty set means the beliefs contradict what is visible and panics.
func Probability(set game.Multiset, pred func(game.Card) bool) float64 {
	total, hits := 0, 0
	for c, n := range set {
		total += n
		if pred(c) {
			hits += n
		}
	}
	if total == 0 {
		panic("no card is consistent with the holder's knowledge")
	}
	return float64(hits) / float64(total)
}

// probabilities evaluates pred over the consistency set of every card in the acting hand.
func probabilities(v game.View, pred func(game.Card) bool) []float64 {
	probs := make([]float64, len(v.Hand))
	for i := range v.Hand {
		probs[i] = Probability(ConsistencySet(v, i), pred)
	}
	return probs
}

// PlayProbabilities returns, per hand position, the chance that the card is playable now.
func PlayProbabilities(v game.View) []float64 {
	return probabilities(v, v.PlayArea.IsPlayable)
}

// FuturePlayProbabilities returns, per hand position, the chance that the card is still needed.
func FuturePlayProbabilities(v game.View) []float64 {
	return probabilities(v, v.PlayArea.IsFuturePlayable)
}

// RarityProbabilities returns, per hand position, the chance that the card is a last surviving copy.
func RarityProbabilities(v game.View) []float64 {
	return probabilities(v, func(c game.Card) bool {
		return IsRare(c, v.DiscardPile, v.PlayArea)
	})
}

// IsRare reports whether the card is still needed and only one undiscarded copy of it is left.
func IsRare(c game.Card, discardPile []game.Card, playArea game.PlayArea) bool {
	if playArea.IsPlayed(c) {
		return false
	}
	discarded := 0
	for _, d := range discardPile {
		if d == c {
			discarded++
		}
	}
	return game.Copies(c)-discarded == 1
}
