package heuristic

import (
	"fmt"

	"hanabi/game"
	"hanabi/utils"
)

type Option func(m *MoveSearch)

// MoveSearch picks one action per turn: a certain play, then (in probabilistic
// mode) a likely play, then the most valuable hint, and otherwise a discard.
type MoveSearch struct {
	mode                 PlayMode
	discard              DiscardRule
	weights              Weights
	threshold            float64
	suddenDeathThreshold float64
}

func WithPlayMode(mode PlayMode) Option {
	return func(m *MoveSearch) {
		m.mode = mode
	}
}

func WithDiscardRule(rule DiscardRule) Option {
	return func(m *MoveSearch) {
		m.discard = rule
	}
}

func WithWeights(w Weights) Option {
	return func(m *MoveSearch) {
		m.weights = w
	}
}

// WithThresholds sets the play thresholds. Values outside (0, 1] keep the default.
func WithThresholds(threshold, suddenDeath float64) Option {
	return func(m *MoveSearch) {
		if threshold > 0 && threshold <= 1 {
			m.threshold = threshold
		}
		if suddenDeath > 0 && suddenDeath <= 1 {
			m.suddenDeathThreshold = suddenDeath
		}
	}
}

func New(options ...Option) *MoveSearch {
	m := &MoveSearch{ // Default values
		mode:                 ProbabilisticPlay,
		discard:              DiscardOldest,
		weights:              DefaultWeights(),
		threshold:            Threshold,
		suddenDeathThreshold: SuddenDeathThreshold,
	}
	for _, option := range options {
		option(m)
	}
	if m.mode != ExplicitPlay && m.mode != ProbabilisticPlay {
		panic(fmt.Sprintf("unknown play mode %d", m.mode))
	}
	if m.discard < DiscardOldest || m.discard > DiscardLeastRare {
		panic(fmt.Sprintf("unknown discard rule %d", m.discard))
	}
	return m
}

func (m *MoveSearch) PlayMode() PlayMode { return m.mode }

func (m *MoveSearch) DiscardRule() DiscardRule { return m.discard }

func (m *MoveSearch) Weights() Weights { return m.weights }

func (m *MoveSearch) String() string {
	return fmt.Sprintf("%s/%s", m.mode, m.discard)
}

// ChooseAction implements game.Policy.
func (m *MoveSearch) ChooseAction(v game.View) game.Action {
	if i, ok := certainPlay(v); ok {
		return game.Play(i)
	}
	if m.mode == ProbabilisticPlay {
		if i, ok := m.probablePlay(v); ok {
			return game.Play(i)
		}
	}
	if v.Clock > 0 {
		if h, value := bestHint(v, m.weights); value > 0 {
			return game.GiveHint(h)
		}
	}
	return game.Discard(m.discardIndex(v))
}

// certainPlay finds the first fully known card that fits on the play area.
func certainPlay(v game.View) (int, bool) {
	for i, k := range v.Hand {
		if c, ok := k.Card(); ok && v.PlayArea.IsPlayable(c) {
			return i, true
		}
	}
	return -1, false
}

func (m *MoveSearch) playThreshold(fuse int) float64 {
	if fuse == 1 {
		return m.suddenDeathThreshold
	}
	return m.threshold
}

// probablePlay finds the card most likely to be playable, if it clears the threshold.
func (m *MoveSearch) probablePlay(v game.View) (int, bool) {
	probs := PlayProbabilities(v)
	best := utils.ArgMax(probs)
	if best < 0 || probs[best] < m.playThreshold(v.Fuse) {
		return -1, false
	}
	return best, true
}

// discardIndex applies the configured discard rule. Ties go to the lower hand position.
func (m *MoveSearch) discardIndex(v game.View) int {
	if len(v.Hand) == 0 {
		panic("forced discard from an empty hand")
	}
	switch m.discard {
	case DiscardOldest:
		timestamps := make([]int, len(v.Hand))
		for i, k := range v.Hand {
			timestamps[i] = k.Timestamp
		}
		return utils.ArgMin(timestamps)
	case DiscardLeastPlayable:
		return utils.ArgMin(PlayProbabilities(v))
	case DiscardLeastFuturePlayable:
		return utils.ArgMin(FuturePlayProbabilities(v))
	case DiscardLeastRare:
		return utils.ArgMin(RarityProbabilities(v))
	}
	panic(fmt.Sprintf("unknown discard rule %d", m.discard))
}
