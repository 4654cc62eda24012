// Package scoreboard turns Swimtopia meet data into a render-ready heat
// sheet and serves it over HTTP, from either live API calls or a local
// snapshot directory.
package scoreboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/internal/apicache"
	"github.com/openswim/swimtopia-export/models"
)

// Source supplies the raw JSON:API resources the builder assembles a
// scoreboard from. The cache implementation never touches the network; the
// live implementation fetches everything per call.
type Source interface {
	MeetInfo(ctx context.Context) (models.MeetAttributes, bool, error)
	Athletes(ctx context.Context) (map[string]models.Resource, error)
	EventNodes(ctx context.Context) ([]models.Resource, error)
	EventDetail(ctx context.Context, eventID string) (models.SingleDocument, bool, error)
}

type cacheSource struct {
	store *apicache.Store
}

// NewCacheSource reads scoreboard data from a snapshot directory.
func NewCacheSource(store *apicache.Store) Source {
	return &cacheSource{store: store}
}

func (s *cacheSource) MeetInfo(_ context.Context) (models.MeetAttributes, bool, error) {
	doc, ok := s.store.LoadMeet()
	if !ok {
		return models.MeetAttributes{}, false, nil
	}
	var attrs models.MeetAttributes
	if err := doc.Data.DecodeAttributes(&attrs); err != nil {
		return models.MeetAttributes{}, false, nil
	}
	return attrs, true, nil
}

func (s *cacheSource) Athletes(_ context.Context) (map[string]models.Resource, error) {
	return s.store.LoadAthletes(), nil
}

func (s *cacheSource) EventNodes(_ context.Context) ([]models.Resource, error) {
	return s.store.LoadEventNodes(), nil
}

func (s *cacheSource) EventDetail(_ context.Context, eventID string) (models.SingleDocument, bool, error) {
	doc, ok := s.store.LoadEventDetail(eventID)
	return doc, ok, nil
}

type liveSource struct {
	api    adapter.SwimtopiaAdapter
	meetID string
	store  *apicache.Store
}

// NewLiveSource fetches scoreboard data from the API for one meet. When
// store is non-nil every response is also written through as a snapshot, so
// a live session leaves behind a usable cache.
func NewLiveSource(api adapter.SwimtopiaAdapter, meetID string, store *apicache.Store) Source {
	return &liveSource{api: api, meetID: meetID, store: store}
}

func (s *liveSource) MeetInfo(ctx context.Context) (models.MeetAttributes, bool, error) {
	doc, err := s.api.GetMeet(ctx, s.meetID)
	if err != nil {
		return models.MeetAttributes{}, false, fmt.Errorf("fetch meet %s: %w", s.meetID, err)
	}
	if s.store != nil {
		_, _ = s.store.SaveMeet(s.meetID, doc)
	}
	var attrs models.MeetAttributes
	if err := doc.Data.DecodeAttributes(&attrs); err != nil {
		return models.MeetAttributes{}, false, err
	}
	return attrs, true, nil
}

func (s *liveSource) Athletes(ctx context.Context) (map[string]models.Resource, error) {
	doc, err := s.api.ListAthletes(ctx, s.meetID)
	if err != nil {
		return nil, fmt.Errorf("fetch athletes for meet %s: %w", s.meetID, err)
	}
	if s.store != nil {
		_, _ = s.store.SaveAthletes(s.meetID, doc)
	}
	athletes := make(map[string]models.Resource, len(doc.Data))
	for _, res := range doc.Data {
		athletes[res.ID] = res
	}
	return athletes, nil
}

func (s *liveSource) EventNodes(ctx context.Context) ([]models.Resource, error) {
	doc, err := s.api.ListEventNodes(ctx, s.meetID)
	if err != nil {
		return nil, fmt.Errorf("fetch event nodes for meet %s: %w", s.meetID, err)
	}
	if s.store != nil {
		_, _ = s.store.SaveEventNodes(s.meetID, doc)
	}
	return doc.Data, nil
}

func (s *liveSource) EventDetail(ctx context.Context, eventID string) (models.SingleDocument, bool, error) {
	doc, err := s.api.GetEvent(ctx, s.meetID, eventID)
	if err != nil {
		// Detail is only published once an event has been seeded; a missing
		// detail is a normal state, not a failure.
		if errors.Is(err, adapter.ErrNotFound) {
			return models.SingleDocument{}, false, nil
		}
		return models.SingleDocument{}, false, fmt.Errorf("fetch event %s: %w", eventID, err)
	}
	if s.store != nil {
		_, _ = s.store.SaveEvent(s.meetID, eventID, doc)
	}
	return doc, true, nil
}
