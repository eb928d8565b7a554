package engine

import (
	"hanabi/experiments/metrics"
	"hanabi/game"
)

type Runner interface {
	// Run plays a match until the fuse burns out or the grace period after the last draw ends
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
