package game

type StandardRules struct {
	ClockTokens      int
	FuseTokens       int
	CardsPerHand     int
	CompletionReward bool
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		ClockTokens:      8,
		FuseTokens:       3,
		CardsPerHand:     5,
		CompletionReward: true,
	}
}

func (sr *StandardRules) MaxClock() int {
	return sr.ClockTokens
}

func (sr *StandardRules) Fuses() int {
	return sr.FuseTokens
}

func (sr *StandardRules) HandSize() int {
	return sr.CardsPerHand
}

func (sr *StandardRules) RewardsCompletion() bool {
	return sr.CompletionReward
}
