package metrics

import (
	"time"

	"hanabi/game"
)

type MoveMetric struct {
	Turn     int
	Player   int // Player ID
	Action   game.ActionType
	Move     string
	Misplay  bool // a play that burnt a fuse
	Clock    int  // after the move
	Fuse     int  // after the move
	Score    int  // after the move
	DeckSize int  // after the move
}

type GameMetric struct {
	Score     int
	BlownUp   bool
	Turns     int
	Plays     int
	Misplays  int
	Discards  int
	Hints     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start()
	AddMove(move MoveMetric)
	Complete(result game.Result) (GameMetric, []MoveMetric)
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
	game      GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.moves = nil
	m.game = GameMetric{}
}

func (m *collector) AddMove(move MoveMetric) {
	m.moves = append(m.moves, move)
	m.game.Turns++
	switch move.Action {
	case game.PlayAction:
		if move.Misplay {
			m.game.Misplays++
		} else {
			m.game.Plays++
		}
	case game.DiscardAction:
		m.game.Discards++
	case game.HintAction:
		m.game.Hints++
	}
}

func (m *collector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	end := time.Now()
	metric := m.game
	metric.Score = result.Score
	metric.BlownUp = result.BlownUp
	metric.StartTime = m.startTime
	metric.EndTime = end
	metric.Duration = end.Sub(m.startTime)
	return metric, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddMove(move MoveMetric) {}
func (m *dummyCollector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	return GameMetric{Score: result.Score, BlownUp: result.BlownUp}, nil
}
