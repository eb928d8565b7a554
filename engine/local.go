package engine

import (
	"fmt"

	"hanabi/experiments/metrics"
	"hanabi/game"
	"hanabi/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Game     *game.Game
	maxTurns int
	metrics  metrics.Collector
	logger   zerolog.Logger
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func LocalEngine(deck *game.Deck, policies [game.NumPlayers]game.Policy, rules game.Rules, options ...Option) *Engine {
	for i, p := range policies {
		if p == nil {
			panic(fmt.Sprintf("player %d has no policy", i))
		}
	}

	eng := &Engine{ // Default values
		Game:     game.New(deck, rules, policies),
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
		logger:   log.Logger,
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run executes the entire game loop until the match is finished.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	e.metrics.Start()
	e.logger.Debug().Msgf("player %d is starting with %d cards left in the deck", g.Current(), g.DeckSize())

	for g.State() != game.Finished {
		turn := g.Turn()
		if turn >= e.maxTurns {
			gameMetric, moveMetrics := e.metrics.Complete(g.Result())
			return g.Result(), gameMetric, moveMetrics, fmt.Errorf("match still running after %d turns", e.maxTurns)
		}

		player := g.Current()
		fuse := g.Fuse()
		move, err := g.Step()
		if err != nil {
			gameMetric, moveMetrics := e.metrics.Complete(g.Result())
			return g.Result(), gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		misplay := move.Type == game.PlayAction && g.Fuse() < fuse
		e.metrics.AddMove(metrics.MoveMetric{
			Turn:     turn,
			Player:   player,
			Action:   move.Type,
			Move:     move.String(),
			Misplay:  misplay,
			Clock:    g.Clock(),
			Fuse:     g.Fuse(),
			Score:    g.Score(),
			DeckSize: g.DeckSize(),
		})

		e.logger.Debug().
			Int("turn", turn).
			Int("player", player).
			Stringer("move", move).
			Bool("misplay", misplay).
			Int("clock", g.Clock()).
			Int("fuse", g.Fuse()).
			Int("score", g.Score()).
			Stringer("state", g.State()).
			Msg("move played")
	}

	result := g.Result()
	gameMetric, moveMetrics := e.metrics.Complete(result)
	e.logger.Debug().Msgf("match over after %d turns: score %d, blown up %t", g.Turn(), result.Score, result.BlownUp)
	return result, gameMetric, moveMetrics, nil
}
