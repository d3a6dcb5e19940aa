package entity

// Scoreboard holds outcome tallies across games. Single games are not kept.
type Scoreboard struct {
	X          int64 `json:"x"`
	O          int64 `json:"o"`
	Ties       int64 `json:"tie"`
	Incomplete int64 `json:"incomplete"`
}

func (that Scoreboard) Total() int64 {
	return that.X + that.O + that.Ties + that.Incomplete
}
