package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlayAction ActionType = iota
	DiscardAction
	HintAction
)

func (t ActionType) String() string {
	switch t {
	case PlayAction:
		return "play"
	case DiscardAction:
		return "discard"
	case HintAction:
		return "hint"
	}
	return fmt.Sprintf("action(%d)", int(t))
}

// Hint names exactly one colour or one number. Number is 0 for a colour hint.
type Hint struct {
	Colour Colour
	Number int
}

func ColourHint(c Colour) Hint { return Hint{Colour: c} }

func NumberHint(n int) Hint { return Hint{Number: n} }

func (h Hint) IsColour() bool { return h.Number == 0 }

// Names reports whether the hint is about the given card.
func (h Hint) Names(c Card) bool {
	if h.IsColour() {
		return c.Colour == h.Colour
	}
	return c.Number == h.Number
}

func (h Hint) Valid() bool {
	if h.IsColour() {
		return h.Colour.Valid()
	}
	return h.Number >= 1 && h.Number <= MaxNumber
}

func (h Hint) String() string {
	if h.IsColour() {
		return h.Colour.String()
	}
	return fmt.Sprintf("%d", h.Number)
}

var allHints = func() []Hint {
	hints := make([]Hint, 0, NumColours+MaxNumber)
	for _, c := range Colours {
		hints = append(hints, ColourHint(c))
	}
	for n := 1; n <= MaxNumber; n++ {
		hints = append(hints, NumberHint(n))
	}
	return hints
}()

// AllHints enumerates the ten possible hints: colours in order, then numbers 1 to 5.
func AllHints() []Hint {
	hints := make([]Hint, len(allHints))
	copy(hints, allHints)
	return hints
}

// Action is the tagged move a policy returns. Index is a hand position for play and discard.
type Action struct {
	Type  ActionType
	Index int
	Hint  Hint
}

func Play(index int) Action { return Action{Type: PlayAction, Index: index} }

func Discard(index int) Action { return Action{Type: DiscardAction, Index: index} }

func GiveHint(h Hint) Action { return Action{Type: HintAction, Hint: h} }

func (a Action) String() string {
	if a.Type == HintAction {
		return fmt.Sprintf("hint %s", a.Hint)
	}
	return fmt.Sprintf("%s %d", a.Type, a.Index)
}
