// Package heuristic implements the hand-authored move selection policies:
// certain plays, probabilistic plays over a consistency set, weighted hints and
// rule-based forced discards.
package heuristic

import (
	"fmt"
	"strings"
)

// Default thresholds for a probabilistic play.
const (
	Threshold            = 0.75
	SuddenDeathThreshold = 0.90 // used once a single fuse is left
)

// PlayMode selects whether uncertain cards may be played.
type PlayMode int

const (
	ExplicitPlay      PlayMode = iota // only play fully known cards
	ProbabilisticPlay                 // also play cards likely enough to fit
)

var playModeNames = []string{"explicit", "probabilistic"}

func (m PlayMode) String() string {
	if m < 0 || int(m) >= len(playModeNames) {
		return fmt.Sprintf("playmode(%d)", int(m))
	}
	return playModeNames[m]
}

func ParsePlayMode(name string) (PlayMode, error) {
	for i, n := range playModeNames {
		if strings.EqualFold(n, name) {
			return PlayMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown play mode %q", name)
}

// DiscardRule picks the card to throw away when nothing better is possible.
type DiscardRule int

const (
	DiscardOldest              DiscardRule = iota // lowest timestamp
	DiscardLeastPlayable                          // lowest chance of being playable now
	DiscardLeastFuturePlayable                    // lowest chance of ever being playable
	DiscardLeastRare                              // lowest chance of being a last copy
)

var discardRuleNames = []string{"oldest", "least-playable", "least-future-playable", "least-rare"}

// DiscardRules lists every rule in declaration order.
var DiscardRules = []DiscardRule{DiscardOldest, DiscardLeastPlayable, DiscardLeastFuturePlayable, DiscardLeastRare}

func (r DiscardRule) String() string {
	if r < 0 || int(r) >= len(discardRuleNames) {
		return fmt.Sprintf("discardrule(%d)", int(r))
	}
	return discardRuleNames[r]
}

func ParseDiscardRule(name string) (DiscardRule, error) {
	for i, n := range discardRuleNames {
		if strings.EqualFold(n, name) {
			return DiscardRule(i), nil
		}
	}
	return 0, fmt.Errorf("unknown discard rule %q", name)
}

// Weights value a hint by what it tells the partner about each card it names.
type Weights struct {
	Play   float64 // card is playable now
	Future float64 // card becomes playable later
	Rare   float64 // bonus for the last surviving copy
	Other  float64 // card will never be needed
}

func DefaultWeights() Weights {
	return Weights{Play: 3, Future: 2, Rare: 1, Other: 1}
}
