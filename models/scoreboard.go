package models

// Scoreboard is the render-ready view of a meet's events, heats, and lanes.
type Scoreboard struct {
	MeetName    string
	GeneratedAt string
	Events      []ScoreboardEvent
}

// ScoreboardEvent is one event on the scoreboard, sorted by event number.
// HasDetails is false when heat/lane data was not available from the source.
type ScoreboardEvent struct {
	ID         string
	Number     string
	Label      string
	Type       string
	State      string
	HasDetails bool
	Heats      []ScoreboardHeat
}

// ScoreboardHeat groups lane results by heat number.
type ScoreboardHeat struct {
	Number int
	Lanes  []LaneResult
}

// LaneResult is one lane's line on the scoreboard. For relay events Swimmers
// lists the leg order; for individual events AthleteName is set. Times are
// pre-formatted (MM:SS.ss, or "NT" for no time).
type LaneResult struct {
	Lane        int
	Team        string
	AthleteName string
	RelayTeam   string
	Swimmers    []RelaySwimmer
	SeedTime    string
	ResultTime  string
	Place       int
	Splits      []SplitTime
}

// RelaySwimmer is one leg of a relay.
type RelaySwimmer struct {
	Position int
	Name     string
}

// SplitTime is a formatted intermediate split.
type SplitTime struct {
	Distance int
	Time     string
}
