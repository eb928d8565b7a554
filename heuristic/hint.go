package heuristic

import "hanabi/game"

// HintValue sums the weight of every partner card the hint names whose hinted attribute the partner does not know yet.
func HintValue(h game.Hint, v game.View, w Weights) float64 {
	value := 0.0
	for _, ch := range v.Partner {
		card := ch.Card()
		if !h.Names(card) || ch.Knows(h) {
			continue
		}
		value += cardValue(card, v, w)
	}
	return value
}

func cardValue(c game.Card, v game.View, w Weights) float64 {
	value := w.Other
	if v.PlayArea.IsPlayable(c) {
		value = w.Play
	} else if v.PlayArea.IsFuturePlayable(c) {
		value = w.Future
	}
	if IsRare(c, v.DiscardPile, v.PlayArea) {
		value += w.Rare
	}
	return value
}

// bestHint returns the highest valued hint. The first hint in enumeration order wins ties.
func bestHint(v game.View, w Weights) (game.Hint, float64) {
	var best game.Hint
	bestValue := 0.0
	for i, h := range game.AllHints() {
		value := HintValue(h, v, w)
		if i == 0 || value > bestValue {
			best, bestValue = h, value
		}
	}
	return best, bestValue
}
