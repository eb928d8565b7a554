package game

import "errors"

var (
	ErrEmptyDeck    = errors.New("deck is empty")
	ErrInvalidDeck  = errors.New("invalid deck")
	ErrNoClock      = errors.New("no clock tokens left to give a hint")
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrInvalidIndex = errors.New("hand index out of range")
	ErrInvalidHint  = errors.New("hint must name one colour or one number")
)

// Policy selects the acting player's next action from what that player can see.
type Policy interface {
	ChooseAction(v View) Action
}

// View is the read-only snapshot handed to the acting player's policy. It never
// carries the acting player's own cards, only what the player knows about them.
type View struct {
	Player      int
	Hand        []Knowledge
	Partner     []CardInHand
	PlayArea    PlayArea
	DiscardPile []Card
	Clock       int
	MaxClock    int
	Fuse        int
	DeckSize    int
}

// Result is the terminal outcome of a match.
type Result struct {
	Score   int
	BlownUp bool
}
