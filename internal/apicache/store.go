// Package apicache persists raw Swimtopia API responses as pretty-printed
// JSON files and reads them back, so the scoreboard can run against a
// snapshot without touching the network.
package apicache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/openswim/swimtopia-export/models"
)

// Snapshot file names carry the endpoint path with slashes replaced by
// underscores plus a capture timestamp, e.g.
//
//	meets_ID_229714_20250712_093045.json
//	meets_229714_athletes_20250712_093045.json
//	meets_229714_event-nodes_20250712_093045.json
//	meets_229714_events_ID_4101513_20250712_093046.json
const timestampLayout = "20060102_150405"

// Store reads and writes API snapshots under a single cache directory.
type Store struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewStore returns a Store rooted at dir. The directory is created on the
// first write, not here, so a read-only cache can be opened without
// filesystem side effects.
func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		dir:    dir,
		now:    time.Now,
		logger: logger.With().Str("component", "apicache").Str("dir", dir).Logger(),
	}
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

// SaveMeet writes the meet detail document.
func (s *Store) SaveMeet(meetID string, doc models.SingleDocument) (string, error) {
	return s.write(fmt.Sprintf("meets_ID_%s", meetID), doc)
}

// SaveAthletes writes the athlete collection for a meet.
func (s *Store) SaveAthletes(meetID string, doc models.CollectionDocument) (string, error) {
	return s.write(fmt.Sprintf("meets_%s_athletes", meetID), doc)
}

// SaveEventNodes writes the event-node collection for a meet.
func (s *Store) SaveEventNodes(meetID string, doc models.CollectionDocument) (string, error) {
	return s.write(fmt.Sprintf("meets_%s_event-nodes", meetID), doc)
}

// SaveEvent writes a single event detail document, including its compound
// heat, record and split resources.
func (s *Store) SaveEvent(meetID, eventID string, doc models.SingleDocument) (string, error) {
	return s.write(fmt.Sprintf("meets_%s_events_ID_%s", meetID, eventID), doc)
}

func (s *Store) write(stem string, doc any) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir %s: %w", s.dir, err)
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot %s: %w", stem, err)
	}

	name := fmt.Sprintf("%s_%s.json", stem, s.now().Format(timestampLayout))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}

	s.logger.Debug().Str("file", name).Int("bytes", len(body)).Msg("snapshot written")
	return path, nil
}

// LoadMeet returns the meet detail resource from the newest meet snapshot.
func (s *Store) LoadMeet() (models.SingleDocument, bool) {
	files := s.glob("*meets_ID_*.json")
	// Newest capture wins when several snapshots of the same meet exist.
	for i := len(files) - 1; i >= 0; i-- {
		var doc models.SingleDocument
		if s.decode(files[i], &doc) && doc.Data.Type == "meet" {
			return doc, true
		}
	}
	return models.SingleDocument{}, false
}

// LoadAthletes merges the athlete resources of every athlete snapshot into
// an ID-keyed map.
func (s *Store) LoadAthletes() map[string]models.Resource {
	athletes := make(map[string]models.Resource)
	for _, file := range s.glob("*athletes*.json") {
		var doc models.CollectionDocument
		if !s.decode(file, &doc) {
			continue
		}
		for _, res := range doc.Data {
			athletes[res.ID] = res
		}
	}
	return athletes
}

// LoadEventNodes returns the event-node resources of every event-node
// snapshot, in file order.
func (s *Store) LoadEventNodes() []models.Resource {
	var nodes []models.Resource
	for _, file := range s.glob("*event-nodes*.json") {
		var doc models.CollectionDocument
		if !s.decode(file, &doc) {
			continue
		}
		nodes = append(nodes, doc.Data...)
	}
	return nodes
}

// LoadEventDetail scans the event detail snapshots for the given event ID.
func (s *Store) LoadEventDetail(eventID string) (models.SingleDocument, bool) {
	for _, file := range s.glob("*events_ID_*.json") {
		var doc models.SingleDocument
		if !s.decode(file, &doc) {
			continue
		}
		if doc.Data.ID == eventID {
			return doc, true
		}
	}
	return models.SingleDocument{}, false
}

// Exists reports whether the cache directory is present and holds at least
// one snapshot.
func (s *Store) Exists() bool {
	return len(s.glob("*.json")) > 0
}

func (s *Store) glob(pattern string) []string {
	files, err := filepath.Glob(filepath.Join(s.dir, pattern))
	if err != nil {
		// Only possible with a malformed pattern, which is a programming
		// error on our side.
		s.logger.Error().Err(err).Str("pattern", pattern).Msg("bad glob pattern")
		return nil
	}
	sort.Strings(files)
	return files
}

// decode reads and unmarshals one snapshot, skipping unreadable or
// malformed files the way a stale cache directory tends to accumulate them.
func (s *Store) decode(path string, v any) bool {
	body, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", filepath.Base(path)).Msg("unreadable snapshot, skipping")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		s.logger.Warn().Err(err).Str("file", filepath.Base(path)).Msg("malformed snapshot, skipping")
		return false
	}
	return true
}
