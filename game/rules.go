package game

type Rules interface {
	MaxClock() int
	Fuses() int
	HandSize() int
	RewardsCompletion() bool // completing a colour with its 5 returns a clock token
}
