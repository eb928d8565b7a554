package experiments

import (
	"hanabi/experiments/metrics"
	"hanabi/utils"
)

type Summary struct {
	ID           int
	Matchup      string
	Games        int
	Average      float64
	Max          int
	FailureRate  float64 // share of games that blew up
	AverageTurns float64
}

// Summarize reduces the game records of each matchup to its average score, maximum score and failure rate.
func Summarize(configs []metrics.MatchupConfig, records []metrics.GameRecord) []Summary {
	summaries := make([]Summary, len(configs))
	index := make(map[int]int, len(configs))
	for i, c := range configs {
		summaries[i] = Summary{ID: c.ID, Matchup: c.Name}
		index[c.ID] = i
	}

	totalScore := make([]int, len(configs))
	totalTurns := make([]int, len(configs))
	failures := make([]int, len(configs))
	for _, record := range records {
		i, ok := index[record.Matchup]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Games++
		totalScore[i] += record.Score
		totalTurns[i] += record.Turns
		if record.BlownUp {
			failures[i]++
		}
		if record.Score > s.Max {
			s.Max = record.Score
		}
	}

	for i := range summaries {
		if n := summaries[i].Games; n > 0 {
			summaries[i].Average = float64(totalScore[i]) / float64(n)
			summaries[i].AverageTurns = float64(totalTurns[i]) / float64(n)
			summaries[i].FailureRate = float64(failures[i]) / float64(n)
		}
	}
	return summaries
}

// Best returns the index of the summary with the highest average score, -1 if there are none.
func Best(summaries []Summary) int {
	averages := make([]float64, len(summaries))
	for i, s := range summaries {
		averages[i] = s.Average
	}
	return utils.ArgMax(averages)
}
