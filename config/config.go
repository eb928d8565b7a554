// Package config loads experiment descriptions from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"hanabi/game"
	"hanabi/heuristic"
	"hanabi/meta"
	"hanabi/utils"

	"gopkg.in/yaml.v3"
)

type Rules struct {
	MaxClock         int   `yaml:"max_clock"`
	Fuses            int   `yaml:"fuses"`
	HandSize         int   `yaml:"hand_size"`
	RewardCompletion *bool `yaml:"reward_completion,omitempty"`
}

// Standard converts the rules, filling unset fields from the standard game.
func (r Rules) Standard() *game.StandardRules {
	rules := game.NewStandardRules()
	if r.MaxClock > 0 {
		rules.ClockTokens = r.MaxClock
	}
	if r.Fuses > 0 {
		rules.FuseTokens = r.Fuses
	}
	if r.HandSize > 0 {
		rules.CardsPerHand = r.HandSize
	}
	if r.RewardCompletion != nil {
		rules.CompletionReward = *r.RewardCompletion
	}
	return rules
}

type Weights struct {
	Play   float64 `yaml:"play"`
	Future float64 `yaml:"future"`
	Rare   float64 `yaml:"rare"`
	Other  float64 `yaml:"other"`
}

type Policy struct {
	Play                 string   `yaml:"play"`
	Discard              string   `yaml:"discard"`
	Weights              *Weights `yaml:"weights,omitempty"`
	Threshold            float64  `yaml:"threshold,omitempty"`
	SuddenDeathThreshold float64  `yaml:"sudden_death_threshold,omitempty"`
}

// Options translates the policy into heuristic options. Unset fields keep the heuristic defaults.
func (p Policy) Options() ([]heuristic.Option, error) {
	options := []heuristic.Option{}

	if p.Play != "" {
		mode, err := heuristic.ParsePlayMode(p.Play)
		if err != nil {
			return nil, err
		}
		options = append(options, heuristic.WithPlayMode(mode))
	}
	if p.Discard != "" {
		rule, err := heuristic.ParseDiscardRule(p.Discard)
		if err != nil {
			return nil, err
		}
		options = append(options, heuristic.WithDiscardRule(rule))
	}
	if p.Weights != nil {
		options = append(options, heuristic.WithWeights(heuristic.Weights{
			Play:   p.Weights.Play,
			Future: p.Weights.Future,
			Rare:   p.Weights.Rare,
			Other:  p.Weights.Other,
		}))
	}
	if p.Threshold < 0 || p.Threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0, 1]", p.Threshold)
	}
	if p.SuddenDeathThreshold < 0 || p.SuddenDeathThreshold > 1 {
		return nil, fmt.Errorf("sudden death threshold %v outside [0, 1]", p.SuddenDeathThreshold)
	}
	options = append(options, heuristic.WithThresholds(p.Threshold, p.SuddenDeathThreshold))
	return options, nil
}

// Build constructs the policy.
func (p Policy) Build() (*heuristic.MoveSearch, error) {
	options, err := p.Options()
	if err != nil {
		return nil, err
	}
	return heuristic.New(options...), nil
}

// Matchup pairs two policies. A single policy plays against itself.
type Matchup struct {
	Name     string   `yaml:"name"`
	Policies []Policy `yaml:"policies"`
}

func (m Matchup) Pair() [game.NumPlayers]Policy {
	if len(m.Policies) == 1 {
		return [game.NumPlayers]Policy{m.Policies[0], m.Policies[0]}
	}
	return [game.NumPlayers]Policy{m.Policies[0], m.Policies[1]}
}

type Experiment struct {
	Name        string    `yaml:"name"`
	Games       int       `yaml:"games"`
	Seed        uint64    `yaml:"seed"`
	Parallelism int       `yaml:"parallelism"`
	Rules       Rules     `yaml:"rules"`
	Matchups    []Matchup `yaml:"matchups"`
}

// Default compares every play mode and discard rule in self-play.
func Default() Experiment {
	return Experiment{
		Name:        "default",
		Games:       meta.GAMES,
		Seed:        meta.SEED,
		Parallelism: meta.PARALLELISM,
		Matchups:    DefaultMatchups(),
	}
}

func DefaultMatchups() []Matchup {
	matchups := []Matchup{}
	for _, mode := range []heuristic.PlayMode{heuristic.ExplicitPlay, heuristic.ProbabilisticPlay} {
		for _, rule := range heuristic.DiscardRules {
			matchups = append(matchups, Matchup{
				Name:     fmt.Sprintf("%s/%s", mode, rule),
				Policies: []Policy{{Play: mode.String(), Discard: rule.String()}},
			})
		}
	}
	return matchups
}

// Load reads an experiment from a YAML file.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read config: %w", err)
	}
	exp, err := Parse(data)
	if err != nil {
		return Experiment{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return exp, nil
}

// Parse decodes an experiment. Fields left out keep the defaults.
func Parse(data []byte) (Experiment, error) {
	exp := Default()
	exp.Matchups = nil
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return Experiment{}, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if len(exp.Matchups) == 0 {
		exp.Matchups = DefaultMatchups()
	}
	if err := exp.Validate(); err != nil {
		return Experiment{}, err
	}
	return exp, nil
}

func (e Experiment) Validate() error {
	if e.Games <= 0 {
		return errors.New("games must be positive")
	}
	if e.Parallelism <= 0 {
		return errors.New("parallelism must be positive")
	}
	if e.Rules.MaxClock < 0 || e.Rules.Fuses < 0 || e.Rules.HandSize < 0 {
		return errors.New("rules must not be negative")
	}
	if rules := e.Rules.Standard(); game.NumPlayers*rules.HandSize() > game.DeckSize {
		return fmt.Errorf("hand size %d is too large for the deck", rules.HandSize())
	}

	names := make([]string, 0, len(e.Matchups))
	for i, m := range e.Matchups {
		if m.Name == "" {
			return fmt.Errorf("matchup %d has no name", i+1)
		}
		if utils.FindIndex(names, m.Name) >= 0 {
			return fmt.Errorf("duplicate matchup %q", m.Name)
		}
		names = append(names, m.Name)

		if len(m.Policies) == 0 || len(m.Policies) > game.NumPlayers {
			return fmt.Errorf("matchup %q needs one or two policies, got %d", m.Name, len(m.Policies))
		}
		for _, p := range m.Policies {
			if _, err := p.Options(); err != nil {
				return fmt.Errorf("matchup %q: %w", m.Name, err)
			}
		}
	}
	return nil
}
