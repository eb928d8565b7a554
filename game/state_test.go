package game_test

import (
	"testing"

	"hanabi/game"

	"github.com/stretchr/testify/require"
)

// stackedDeck returns a valid deck whose first draws are top, in order.
func stackedDeck(t *testing.T, top ...game.Card) *game.Deck {
	t.Helper()
	rest := game.ReferenceMultiset()
	for _, c := range top {
		require.True(t, rest.Remove(c), "Card %s is not available for stacking", c)
	}
	cards := make([]game.Card, 0, game.DeckSize)
	for _, c := range game.ReferenceDeck() {
		if rest[c] > 0 {
			rest.Remove(c)
			cards = append(cards, c)
		}
	}
	for i := len(top) - 1; i >= 0; i-- {
		cards = append(cards, top[i])
	}
	deck, err := game.NewDeck(cards)
	require.NoError(t, err)
	return deck
}

type discarder struct{}

func (discarder) ChooseAction(game.View) game.Action { return game.Discard(0) }

var discarders = [game.NumPlayers]game.Policy{discarder{}, discarder{}}

func requireConserved(t *testing.T, g *game.Game) {
	t.Helper()
	cards := g.CardsInPlay()
	require.Len(t, cards, game.DeckSize)
	require.True(t, game.NewMultiset(cards...).Equal(game.ReferenceMultiset()), "Every card should be in exactly one place")
}

func TestNewGame(t *testing.T) {
	g := game.New(game.SeededDeck(3), nil, discarders)

	require.Equal(t, game.Active, g.State())
	require.Equal(t, 8, g.Clock())
	require.Equal(t, 3, g.Fuse())
	require.Equal(t, 40, g.DeckSize())
	require.Equal(t, 0, g.Current())
	requireConserved(t, g)

	for p := 0; p < game.NumPlayers; p++ {
		hand := g.Hand(p)
		require.Len(t, hand, 5)
		for i, ch := range hand {
			require.Equal(t, p*5+i, ch.Timestamp, "Player 0 is dealt first")
			require.Equal(t, game.AllColours, ch.PossibleColours)
			require.Equal(t, game.AllNumbers, ch.PossibleNumbers)
		}
	}
}

func TestView(t *testing.T) {
	g := game.New(game.SeededDeck(3), nil, discarders)
	v := g.View(0)

	require.Equal(t, 0, v.Player)
	require.Equal(t, g.Hand(1), v.Partner)
	require.Equal(t, g.Player(0).Knowledge(), v.Hand)
	require.Equal(t, 8, v.MaxClock)
	require.Equal(t, 40, v.DeckSize)
	require.Empty(t, v.DiscardPile)
}

func TestPlay(t *testing.T) {
	t.Run("misplay_on_last_fuse_blows_up", func(t *testing.T) {
		rules := &game.StandardRules{ClockTokens: 8, FuseTokens: 1, CardsPerHand: 5, CompletionReward: true}
		g := game.New(stackedDeck(t, card(game.White, 2)), rules, discarders)

		require.NoError(t, g.Act(game.Play(0)))
		require.Equal(t, game.Finished, g.State())
		require.True(t, g.BlownUp())
		require.Equal(t, 0, g.Fuse())
		require.Equal(t, game.Result{Score: 0, BlownUp: true}, g.Result())
		require.Equal(t, []game.Card{card(game.White, 2)}, g.DiscardPile())
		requireConserved(t, g)

		require.ErrorIs(t, g.Act(game.Discard(0)), game.ErrGameOver)
		_, err := g.Step()
		require.ErrorIs(t, err, game.ErrGameOver)
	})

	t.Run("misplay_burns_a_fuse_and_replaces_the_card", func(t *testing.T) {
		g := game.New(stackedDeck(t, card(game.Red, 3)), nil, discarders)

		require.NoError(t, g.Act(game.Play(0)))
		require.Equal(t, game.Active, g.State())
		require.Equal(t, 2, g.Fuse())
		require.Len(t, g.Hand(0), 5)
		require.Equal(t, 10, g.Hand(0)[4].Timestamp)
		require.Equal(t, 1, g.Current())
		requireConserved(t, g)
	})

	t.Run("completing_a_colour_returns_a_clock_token", func(t *testing.T) {
		for _, reward := range []bool{true, false} {
			rules := &game.StandardRules{ClockTokens: 8, FuseTokens: 3, CardsPerHand: 5, CompletionReward: reward}
			g := game.New(stackedDeck(t,
				card(game.White, 1), card(game.White, 2), card(game.White, 3), card(game.White, 4), card(game.White, 5),
			), rules, discarders)

			for n := 1; n <= 5; n++ {
				require.NoError(t, g.Act(game.Play(0)))
				if n < 5 {
					require.NoError(t, g.Act(game.GiveHint(game.ColourHint(game.Yellow))))
				}
			}

			require.Equal(t, 5, g.Score())
			require.True(t, g.PlayArea().Complete(game.White))
			if reward {
				require.Equal(t, 5, g.Clock())
			} else {
				require.Equal(t, 4, g.Clock())
			}
			requireConserved(t, g)
		}
	})
}

func TestDiscard(t *testing.T) {
	g := game.New(game.SeededDeck(5), nil, discarders)

	require.NoError(t, g.Act(game.Discard(2)))
	require.Equal(t, 8, g.Clock(), "Clock never exceeds its maximum")
	require.Len(t, g.DiscardPile(), 1)

	require.NoError(t, g.Act(game.GiveHint(game.NumberHint(1))))
	require.Equal(t, 7, g.Clock())

	require.NoError(t, g.Act(game.Discard(0)))
	require.Equal(t, 8, g.Clock())
	requireConserved(t, g)
}

func TestGiveHint(t *testing.T) {
	noRed := []game.Card{
		card(game.Blue, 4), card(game.Green, 3), card(game.Yellow, 2), card(game.Blue, 1), card(game.Green, 1),
		card(game.White, 1), card(game.Yellow, 1), card(game.Green, 2), card(game.Blue, 1), card(game.White, 2),
	}

	t.Run("hint_naming_no_card_still_spends_clock", func(t *testing.T) {
		g := game.New(stackedDeck(t, noRed...), nil, discarders)

		require.NoError(t, g.Act(game.GiveHint(game.ColourHint(game.Red))))
		require.Equal(t, 7, g.Clock())
		require.Equal(t, 40, g.DeckSize(), "Hints do not draw")
		for _, ch := range g.Hand(1) {
			require.False(t, ch.PossibleColours.Has(game.Red))
			require.Equal(t, 4, ch.PossibleColours.Len())
		}
	})

	t.Run("hint_collapses_matching_cards", func(t *testing.T) {
		g := game.New(stackedDeck(t, noRed...), nil, discarders)

		require.NoError(t, g.Act(game.GiveHint(game.NumberHint(1))))
		for _, ch := range g.Hand(1) {
			n, known := ch.Number()
			if ch.Card().Number == 1 {
				require.True(t, known)
				require.Equal(t, 1, n)
			} else {
				require.False(t, known)
				require.False(t, ch.PossibleNumbers.Has(1))
			}
		}
		for _, ch := range g.Hand(0) {
			require.Equal(t, game.AllNumbers, ch.PossibleNumbers, "The giver learns nothing")
		}
	})

	t.Run("no_clock_left", func(t *testing.T) {
		g := game.New(game.SeededDeck(9), nil, discarders)
		for i := 0; i < 8; i++ {
			require.NoError(t, g.Act(game.GiveHint(game.ColourHint(game.White))))
		}
		require.Equal(t, 0, g.Clock())

		err := g.Act(game.GiveHint(game.ColourHint(game.White)))
		require.ErrorIs(t, err, game.ErrNoClock)
		require.Equal(t, 8, g.Turn(), "A rejected action does not pass the turn")
	})

	t.Run("malformed_hint", func(t *testing.T) {
		g := game.New(game.SeededDeck(9), nil, discarders)
		err := g.Act(game.GiveHint(game.Hint{Number: 7}))
		require.ErrorIs(t, err, game.ErrInvalidHint)
		require.Equal(t, 8, g.Clock())
	})
}

func TestInvalidIndex(t *testing.T) {
	g := game.New(game.SeededDeck(11), nil, discarders)

	require.ErrorIs(t, g.Act(game.Play(5)), game.ErrInvalidIndex)
	require.ErrorIs(t, g.Act(game.Discard(-1)), game.ErrInvalidIndex)
	require.Equal(t, 0, g.Turn())
	require.Len(t, g.Hand(0), 5)
}

func TestEndOfDeck(t *testing.T) {
	g := game.New(game.SeededDeck(13), nil, discarders)

	for g.DeckSize() > 1 {
		require.NoError(t, g.Act(game.Discard(0)))
		require.Equal(t, game.Active, g.State())
		requireConserved(t, g)
	}
	require.Equal(t, 39, g.Turn())

	// Drawing the last card triggers the end.
	require.NoError(t, g.Act(game.Discard(0)))
	require.Equal(t, game.EndTriggered, g.State())
	require.Equal(t, 2, g.TurnsLeft())
	require.Len(t, g.Hand(0), 5)
	requireConserved(t, g)

	require.NoError(t, g.Act(game.Discard(0)))
	require.Equal(t, game.EndTriggered, g.State())
	require.Len(t, g.Hand(0), 4, "Nothing left to draw")

	require.NoError(t, g.Act(game.Discard(0)))
	require.Equal(t, game.Finished, g.State())
	require.Equal(t, 42, g.Turn())
	require.False(t, g.BlownUp())
	requireConserved(t, g)

	require.ErrorIs(t, g.Act(game.Discard(0)), game.ErrGameOver)
}

func TestPlayGame(t *testing.T) {
	g := game.New(game.SeededDeck(17), nil, discarders)

	result, err := g.PlayGame()
	require.NoError(t, err)
	require.Equal(t, game.Result{Score: 0, BlownUp: false}, result)
	require.Equal(t, game.Finished, g.State())
	require.Len(t, g.DiscardPile(), 42)
	requireConserved(t, g)
}
