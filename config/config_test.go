package config

import (
	"os"
	"path/filepath"
	"testing"

	"hanabi/heuristic"
	"hanabi/meta"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	exp := Default()
	require.NoError(t, exp.Validate())
	require.Equal(t, meta.GAMES, exp.Games)
	require.Len(t, exp.Matchups, 8, "Every play mode against every discard rule")
	require.Equal(t, "explicit/oldest", exp.Matchups[0].Name)
	require.Equal(t, "probabilistic/least-rare", exp.Matchups[7].Name)
}

func TestParse(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		exp, err := Parse([]byte(`
name: duel
games: 20
seed: 99
parallelism: 2
rules:
  fuses: 1
  reward_completion: false
matchups:
  - name: gamblers
    policies:
      - play: probabilistic
        discard: least-playable
        threshold: 0.6
  - name: mixed
    policies:
      - play: explicit
        discard: oldest
      - play: probabilistic
        discard: least-rare
        weights: {play: 4, future: 2, rare: 2, other: 0}
`))
		require.NoError(t, err)
		require.Equal(t, "duel", exp.Name)
		require.Equal(t, 20, exp.Games)
		require.Equal(t, uint64(99), exp.Seed)
		require.Len(t, exp.Matchups, 2)

		rules := exp.Rules.Standard()
		require.Equal(t, 8, rules.MaxClock())
		require.Equal(t, 1, rules.Fuses())
		require.Equal(t, 5, rules.HandSize())
		require.False(t, rules.RewardsCompletion())

		pair := exp.Matchups[0].Pair()
		require.Equal(t, pair[0], pair[1], "A single policy plays against itself")

		m, err := pair[0].Build()
		require.NoError(t, err)
		require.Equal(t, heuristic.DiscardLeastPlayable, m.DiscardRule())

		mixed := exp.Matchups[1].Pair()
		m, err = mixed[1].Build()
		require.NoError(t, err)
		require.Equal(t, heuristic.Weights{Play: 4, Future: 2, Rare: 2, Other: 0}, m.Weights())
	})

	t.Run("omitted_fields_keep_defaults", func(t *testing.T) {
		exp, err := Parse([]byte("name: short\n"))
		require.NoError(t, err)
		require.Equal(t, meta.GAMES, exp.Games)
		require.Equal(t, uint64(meta.SEED), exp.Seed)
		require.Equal(t, meta.PARALLELISM, exp.Parallelism)
		require.Equal(t, DefaultMatchups(), exp.Matchups)
		require.Equal(t, 3, exp.Rules.Standard().Fuses())
		require.True(t, exp.Rules.Standard().RewardsCompletion())
	})

	t.Run("rejects_invalid_configs", func(t *testing.T) {
		for name, doc := range map[string]string{
			"malformed":        "games: [",
			"no_games":         "games: 0",
			"unknown_mode":     "matchups: [{name: a, policies: [{play: reckless}]}]",
			"unknown_rule":     "matchups: [{name: a, policies: [{discard: random}]}]",
			"duplicate_name":   "matchups: [{name: a, policies: [{}]}, {name: a, policies: [{}]}]",
			"unnamed":          "matchups: [{policies: [{}]}]",
			"three_policies":   "matchups: [{name: a, policies: [{}, {}, {}]}]",
			"bad_threshold":    "matchups: [{name: a, policies: [{threshold: 1.5}]}]",
			"huge_hands":       "rules: {hand_size: 30}",
			"negative_clock":   "rules: {max_clock: -1}",
			"zero_parallelism": "parallelism: 0",
		} {
			_, err := Parse([]byte(doc))
			require.Error(t, err, "Config %s should be rejected", name)
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\ngames: 3\n"), 0644))

	exp, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "file", exp.Name)
	require.Equal(t, 3, exp.Games)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
