package models

// Meet is a summary of one swim meet as returned by GET /v3/meets.
type Meet struct {
	ID        string
	Name      string
	StartDate string
	EndDate   string
}

// MeetAttributes is the JSON:API attributes object of a meet resource.
type MeetAttributes struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// AthleteAttributes is the JSON:API attributes object of an athlete resource.
// DisplayFirstName, when present, is preferred over the legal first name.
type AthleteAttributes struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DisplayFirstName string `json:"displayFirstName,omitempty"`
}

// EventAttributes is the JSON:API attributes object shared by event and
// eventNode resources (number, label, individual/relay, seeding state).
type EventAttributes struct {
	EventNumber string `json:"eventNumber"`
	Label       string `json:"label"`
	EventType   string `json:"eventType,omitempty"`
	State       string `json:"state,omitempty"`
}

// EventRecordAttributes is one lane's entry/result inside an event detail
// response. Times are centisecond integers; zero means no time.
type EventRecordAttributes struct {
	HeatNumber       int    `json:"heatNumber"`
	LaneNumber       int    `json:"laneNumber"`
	TeamAbbreviation string `json:"teamAbbreviation,omitempty"`
	RelayTeamName    string `json:"relayTeamName,omitempty"`
	SeedTimeInt      int    `json:"seedTimeInt,omitempty"`
	ResultTimeInt    int    `json:"resultTimeInt,omitempty"`
	OfficialTimeInt  int    `json:"officialTimeInt,omitempty"`
	HeatPlace        int    `json:"heatPlace,omitempty"`
	OverallPlace     int    `json:"overallPlace,omitempty"`
}

// RelayPositionAttributes orders swimmers within a relay record.
type RelayPositionAttributes struct {
	RelayPosition int `json:"relayPosition"`
}

// SplitAttributes is an intermediate split inside an event record.
type SplitAttributes struct {
	Distance     int `json:"distance"`
	SplitTimeInt int `json:"splitTimeInt"`
}

// EventDetail is an event reference with its decoded attributes, as resolved
// from an eventNode's relationship.
type EventDetail struct {
	ID         string
	Attributes EventAttributes
}
