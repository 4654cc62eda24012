package scoreboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openswim/swimtopia-export/models"
)

// Builder assembles a render-ready scoreboard from a Source.
type Builder struct {
	source Source
	logger zerolog.Logger
	now    func() time.Time
}

func NewBuilder(source Source, logger zerolog.Logger) *Builder {
	return &Builder{
		source: source,
		logger: logger.With().Str("component", "scoreboard-builder").Logger(),
		now:    time.Now,
	}
}

// Build fetches athletes, events and per-event details and assembles the
// scoreboard. Missing meet info or event details degrade the output rather
// than fail it; only athlete and event listing errors are fatal.
func (b *Builder) Build(ctx context.Context) (models.Scoreboard, error) {
	athletes, err := b.source.Athletes(ctx)
	if err != nil {
		return models.Scoreboard{}, fmt.Errorf("load athletes: %w", err)
	}

	nodes, err := b.source.EventNodes(ctx)
	if err != nil {
		return models.Scoreboard{}, fmt.Errorf("load events: %w", err)
	}

	meetName := ""
	if attrs, ok, err := b.source.MeetInfo(ctx); err != nil {
		b.logger.Warn().Err(err).Msg("meet info unavailable")
	} else if ok {
		meetName = attrs.Name
	}

	events := eventsFromNodes(nodes)
	board := models.Scoreboard{
		MeetName:    meetName,
		GeneratedAt: b.now().Format("January 2, 2006 at 3:04 PM"),
		Events:      make([]models.ScoreboardEvent, 0, len(events)),
	}

	for _, ev := range events {
		entry := models.ScoreboardEvent{
			ID:     ev.ID,
			Number: ev.Attributes.EventNumber,
			Label:  ev.Attributes.Label,
			Type:   ev.Attributes.EventType,
			State:  ev.Attributes.State,
		}
		if entry.Type == "" {
			entry.Type = "individual"
		}
		if entry.State == "" {
			entry.State = "seeded"
		}

		detail, ok, err := b.source.EventDetail(ctx, ev.ID)
		if err != nil {
			b.logger.Warn().Err(err).Str("event_id", ev.ID).Msg("event detail unavailable")
		} else if ok {
			entry.HasDetails = true
			entry.Heats = buildHeats(detail, entry.Type, athletes)
		}

		board.Events = append(board.Events, entry)
	}

	b.logger.Debug().
		Int("events", len(board.Events)).
		Int("athletes", len(athletes)).
		Msg("scoreboard assembled")
	return board, nil
}

// eventsFromNodes converts eventNode resources into event details, keyed by
// the node's event relationship. Duplicates keep the first occurrence and
// the result is ordered by event number.
func eventsFromNodes(nodes []models.Resource) []models.EventDetail {
	seen := make(map[string]struct{})
	var events []models.EventDetail

	for _, node := range nodes {
		if node.Type != "eventNode" {
			continue
		}
		ref := node.Relationships["event"].One()
		if ref == nil {
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}

		var attrs models.EventAttributes
		if err := node.DecodeAttributes(&attrs); err != nil {
			continue
		}
		events = append(events, models.EventDetail{ID: ref.ID, Attributes: attrs})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return eventNumber(events[i].Attributes) < eventNumber(events[j].Attributes)
	})
	return events
}

// eventNumber parses the event number for sorting; unparseable numbers sort
// last.
func eventNumber(attrs models.EventAttributes) int {
	n, err := strconv.Atoi(attrs.EventNumber)
	if err != nil {
		return 999
	}
	return n
}

// buildHeats groups an event detail's records by heat and renders each lane.
func buildHeats(detail models.SingleDocument, eventType string, athletes map[string]models.Resource) []models.ScoreboardHeat {
	var records []models.Resource
	relayPositions := make(map[string]models.Resource)
	splits := make(map[string]models.Resource)

	for _, res := range detail.Included {
		switch res.Type {
		case "eventRecord":
			records = append(records, res)
		case "relayPositionRecord":
			relayPositions[res.ID] = res
		case "split":
			splits[res.ID] = res
		}
	}

	byHeat := make(map[int][]laneRecord)
	for _, rec := range records {
		var attrs models.EventRecordAttributes
		if err := rec.DecodeAttributes(&attrs); err != nil {
			continue
		}
		byHeat[attrs.HeatNumber] = append(byHeat[attrs.HeatNumber], laneRecord{res: rec, attrs: attrs})
	}

	heatNumbers := make([]int, 0, len(byHeat))
	for n := range byHeat {
		heatNumbers = append(heatNumbers, n)
	}
	sort.Ints(heatNumbers)

	heats := make([]models.ScoreboardHeat, 0, len(heatNumbers))
	for _, n := range heatNumbers {
		lanes := byHeat[n]
		sort.SliceStable(lanes, func(i, j int) bool {
			return lanes[i].attrs.LaneNumber < lanes[j].attrs.LaneNumber
		})

		heat := models.ScoreboardHeat{Number: n, Lanes: make([]models.LaneResult, 0, len(lanes))}
		for _, lr := range lanes {
			heat.Lanes = append(heat.Lanes, buildLane(lr, eventType, athletes, relayPositions, splits))
		}
		heats = append(heats, heat)
	}
	return heats
}

type laneRecord struct {
	res   models.Resource
	attrs models.EventRecordAttributes
}

func buildLane(lr laneRecord, eventType string, athletes, relayPositions, splits map[string]models.Resource) models.LaneResult {
	attrs := lr.attrs

	resultInt := attrs.OfficialTimeInt
	if resultInt == 0 {
		resultInt = attrs.ResultTimeInt
	}
	place := attrs.OverallPlace
	if place == 0 {
		place = attrs.HeatPlace
	}

	lane := models.LaneResult{
		Lane:       attrs.LaneNumber,
		Team:       attrs.TeamAbbreviation,
		SeedTime:   FormatTime(attrs.SeedTimeInt),
		ResultTime: FormatTime(resultInt),
		Place:      place,
		Splits:     buildSplits(lr.res, splits),
	}

	if eventType == "relay" {
		lane.RelayTeam = attrs.RelayTeamName
		if lane.RelayTeam == "" {
			lane.RelayTeam = attrs.TeamAbbreviation
		}
		lane.Swimmers = buildRelaySwimmers(lr.res, athletes, relayPositions)
		return lane
	}

	if ref := lr.res.Relationships["athlete"].One(); ref != nil {
		lane.AthleteName = athleteDisplayName(athletes, ref.ID)
	} else {
		lane.AthleteName = "No athlete"
	}
	return lane
}

func buildSplits(rec models.Resource, splits map[string]models.Resource) []models.SplitTime {
	refs := rec.Relationships["splits"].Many()
	if len(refs) == 0 {
		return nil
	}
	var out []models.SplitTime
	for _, ref := range refs {
		res, ok := splits[ref.ID]
		if !ok {
			continue
		}
		var attrs models.SplitAttributes
		if err := res.DecodeAttributes(&attrs); err != nil {
			continue
		}
		out = append(out, models.SplitTime{
			Distance: attrs.Distance,
			Time:     FormatTime(attrs.SplitTimeInt),
		})
	}
	return out
}

func buildRelaySwimmers(rec models.Resource, athletes, relayPositions map[string]models.Resource) []models.RelaySwimmer {
	refs := rec.Relationships["relayPositionRecords"].Many()
	var swimmers []models.RelaySwimmer
	for _, ref := range refs {
		pos, ok := relayPositions[ref.ID]
		if !ok {
			continue
		}
		var attrs models.RelayPositionAttributes
		if err := pos.DecodeAttributes(&attrs); err != nil {
			continue
		}
		athleteRef := pos.Relationships["athlete"].One()
		if athleteRef == nil {
			continue
		}
		swimmers = append(swimmers, models.RelaySwimmer{
			Position: attrs.RelayPosition,
			Name:     athleteDisplayName(athletes, athleteRef.ID),
		})
	}
	sort.SliceStable(swimmers, func(i, j int) bool {
		return swimmers[i].Position < swimmers[j].Position
	})
	return swimmers
}

// athleteDisplayName prefers the athlete's preferred first name over the
// legal one.
func athleteDisplayName(athletes map[string]models.Resource, id string) string {
	res, ok := athletes[id]
	if !ok {
		return "Unknown"
	}
	var attrs models.AthleteAttributes
	if err := res.DecodeAttributes(&attrs); err != nil {
		return "Unknown"
	}
	first := attrs.DisplayFirstName
	if first == "" {
		first = attrs.FirstName
	}
	name := strings.TrimSpace(first + " " + attrs.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}
