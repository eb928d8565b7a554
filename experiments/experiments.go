package experiments

import (
	"context"
	"fmt"

	"hanabi/config"
	"hanabi/engine"
	"hanabi/experiments/metrics"
	"hanabi/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(r *runner)

type runner struct {
	parallelism int
	keepMoves   bool
}

// WithParallelism overrides the experiment's parallelism.
func WithParallelism(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithMoveRecords keeps a record of every move of every match.
func WithMoveRecords() Option {
	return func(r *runner) {
		r.keepMoves = true
	}
}

type Report struct {
	ID        uuid.UUID
	Name      string
	Matchups  []metrics.MatchupConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []Summary
}

// Run plays exp.Games matches for every matchup. Match i of each matchup is dealt
// from seed exp.Seed+i, so every matchup sees the same decks.
func Run(ctx context.Context, exp config.Experiment, options ...Option) (*Report, error) {
	if err := exp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}
	r := &runner{parallelism: exp.Parallelism}
	for _, option := range options {
		option(r)
	}
	runID := uuid.New()

	rules := exp.Rules.Standard()
	total := len(exp.Matchups) * exp.Games
	configs := make([]metrics.MatchupConfig, len(exp.Matchups))
	records := make([]metrics.GameRecord, total)
	moves := make([][]metrics.MoveRecord, total)

	log.Info().Str("run", runID.String()).Msgf("starting %s experiment: %d matchups of %d games, %d at a time", exp.Name, len(exp.Matchups), exp.Games, r.parallelism)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallelism)

	for mi, matchup := range exp.Matchups {
		mi, matchup := mi, matchup // per-iteration copy (Go 1.22 loopvar semantics)
		policies, err := buildPolicies(matchup)
		if err != nil {
			return nil, fmt.Errorf("matchup %q: %w", matchup.Name, err)
		}
		configs[mi] = metrics.MatchupConfig{
			ID:       mi + 1,
			Name:     matchup.Name,
			Policies: [2]string{fmt.Sprint(policies[0]), fmt.Sprint(policies[1])},
		}

		log.Info().Msgf("scheduling matchup %d of %d (%s) between %v and %v...", mi+1, len(exp.Matchups), matchup.Name, policies[0], policies[1])

		for i := 0; i < exp.Games; i++ {
			i := i // per-iteration copy (Go 1.22 loopvar semantics)
			id := mi*exp.Games + i
			seed := exp.Seed + uint64(i)
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				logger := log.With().Str("matchup", matchup.Name).Int("game", id+1).Uint64("seed", seed).Logger()
				e := engine.LocalEngine(game.SeededDeck(seed), policies, rules, engine.WithMetrics(), engine.WithLogger(logger))
				_, gameMetric, moveMetrics, err := e.Run()
				if err != nil {
					return fmt.Errorf("matchup %q game %d (seed %d): %w", matchup.Name, i+1, seed, err)
				}

				records[id] = metrics.GameRecord{
					ID:         id + 1,
					Matchup:    mi + 1,
					Seed:       seed,
					GameMetric: gameMetric,
				}
				if r.keepMoves {
					moves[id] = make([]metrics.MoveRecord, len(moveMetrics))
					for j, mm := range moveMetrics {
						moves[id][j] = metrics.MoveRecord{Game: id + 1, MoveMetric: mm}
					}
				}
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:        runID,
		Name:      exp.Name,
		Matchups:  configs,
		Games:     records,
		Summaries: Summarize(configs, records),
	}
	for _, m := range moves {
		report.Moves = append(report.Moves, m...)
	}

	for _, s := range report.Summaries {
		log.Info().Msgf("completed matchup %s: average %.2f, max %d, failure rate %.1f%%", s.Matchup, s.Average, s.Max, 100*s.FailureRate)
	}
	log.Info().Str("run", runID.String()).Msgf("completed %s experiment", exp.Name)
	return report, nil
}

func buildPolicies(matchup config.Matchup) ([game.NumPlayers]game.Policy, error) {
	var policies [game.NumPlayers]game.Policy
	for i, p := range matchup.Pair() {
		policy, err := p.Build()
		if err != nil {
			return policies, err
		}
		policies[i] = policy
	}
	return policies, nil
}

// Write stores the report's records under dir/<name>/<timestamp> and returns that folder.
func (r *Report) Write(dir string) (string, error) {
	writer, err := metrics.NewWriter(dir, r.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteMatchups(r.Matchups)
	if err != nil {
		return "", fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	err = writer.WriteGameRecords(r.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if len(r.Moves) > 0 {
		err = writer.WriteMoveRecords(r.Moves)
		if err != nil {
			return "", fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msg("stored move records")
	}

	return writer.Dir(), nil
}
