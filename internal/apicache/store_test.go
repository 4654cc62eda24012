package apicache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openswim/swimtopia-export/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore(filepath.Join(t.TempDir(), "cache"), zerolog.Nop())

	// Deterministic, strictly increasing clock so every snapshot gets a
	// distinct file name and "newest wins" is decidable.
	base := time.Date(2025, 7, 12, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}

	return s
}

func meetDocument(meetID, name string) models.SingleDocument {
	attrs, _ := json.Marshal(models.MeetAttributes{Name: name})
	return models.SingleDocument{
		Data: models.Resource{Type: "meet", ID: meetID, Attributes: attrs},
	}
}

func athleteDocument(ids ...string) models.CollectionDocument {
	var doc models.CollectionDocument
	for _, id := range ids {
		doc.Data = append(doc.Data, models.Resource{Type: "athlete", ID: id})
	}
	return doc
}

// ── writes ────────────────────────────────────────────────────────────────────

func TestNewStore_DoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	s := NewStore(dir, zerolog.Nop())

	assert.Equal(t, dir, s.Dir())
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, s.Exists())
}

func TestSave_FileNaming(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		save func() (string, error)
		want string
	}{
		{
			name: "meet detail",
			save: func() (string, error) { return s.SaveMeet("229714", meetDocument("229714", "City Champs")) },
			want: "meets_ID_229714_20250712_093001.json",
		},
		{
			name: "athletes",
			save: func() (string, error) { return s.SaveAthletes("229714", athleteDocument("1")) },
			want: "meets_229714_athletes_20250712_093002.json",
		},
		{
			name: "event nodes",
			save: func() (string, error) { return s.SaveEventNodes("229714", models.CollectionDocument{}) },
			want: "meets_229714_event-nodes_20250712_093003.json",
		},
		{
			name: "event detail",
			save: func() (string, error) {
				return s.SaveEvent("229714", "4101513", models.SingleDocument{
					Data: models.Resource{Type: "event", ID: "4101513"},
				})
			},
			want: "meets_229714_events_ID_4101513_20250712_093004.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tt.save()
			require.NoError(t, err)
			assert.Equal(t, tt.want, filepath.Base(path))
			assert.FileExists(t, path)
		})
	}

	assert.True(t, s.Exists())
}

// ── meet ──────────────────────────────────────────────────────────────────────

func TestLoadMeet_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveMeet("229714", meetDocument("229714", "City Champs"))
	require.NoError(t, err)

	doc, ok := s.LoadMeet()
	require.True(t, ok)
	assert.Equal(t, "229714", doc.Data.ID)

	var attrs models.MeetAttributes
	require.NoError(t, doc.Data.DecodeAttributes(&attrs))
	assert.Equal(t, "City Champs", attrs.Name)
}

func TestLoadMeet_NewestSnapshotWins(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveMeet("229714", meetDocument("229714", "Stale Name"))
	require.NoError(t, err)
	_, err = s.SaveMeet("229714", meetDocument("229714", "Fresh Name"))
	require.NoError(t, err)

	doc, ok := s.LoadMeet()
	require.True(t, ok)

	var attrs models.MeetAttributes
	require.NoError(t, doc.Data.DecodeAttributes(&attrs))
	assert.Equal(t, "Fresh Name", attrs.Name)
}

func TestLoadMeet_IgnoresOtherResourceTypes(t *testing.T) {
	s := newTestStore(t)

	// An event detail snapshot must never be mistaken for a meet snapshot,
	// whatever its file name looks like.
	_, err := s.SaveEvent("229714", "4101513", models.SingleDocument{
		Data: models.Resource{Type: "event", ID: "4101513"},
	})
	require.NoError(t, err)

	_, ok := s.LoadMeet()
	assert.False(t, ok)
}

func TestLoadMeet_EmptyCache(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.LoadMeet()
	assert.False(t, ok)
}

// ── athletes ──────────────────────────────────────────────────────────────────

func TestLoadAthletes_MergesSnapshots(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveAthletes("229714", athleteDocument("100", "101"))
	require.NoError(t, err)
	_, err = s.SaveAthletes("229714", athleteDocument("101", "102"))
	require.NoError(t, err)

	athletes := s.LoadAthletes()
	assert.Len(t, athletes, 3)
	for _, id := range []string{"100", "101", "102"} {
		res, ok := athletes[id]
		require.True(t, ok, "athlete %s missing", id)
		assert.Equal(t, "athlete", res.Type)
	}
}

func TestLoadAthletes_EmptyCache(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.LoadAthletes())
}

// ── event nodes ───────────────────────────────────────────────────────────────

func TestLoadEventNodes_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveEventNodes("229714", models.CollectionDocument{Data: []models.Resource{
		{Type: "eventNode", ID: "n1"},
		{Type: "eventNode", ID: "n2"},
	}})
	require.NoError(t, err)

	nodes := s.LoadEventNodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "n1", nodes[0].ID)
	assert.Equal(t, "n2", nodes[1].ID)
}

// ── event detail ──────────────────────────────────────────────────────────────

func TestLoadEventDetail_FindsByID(t *testing.T) {
	s := newTestStore(t)

	for _, eventID := range []string{"4101513", "4101514"} {
		_, err := s.SaveEvent("229714", eventID, models.SingleDocument{
			Data:     models.Resource{Type: "event", ID: eventID},
			Included: []models.Resource{{Type: "eventRecord", ID: eventID + "-r1"}},
		})
		require.NoError(t, err)
	}

	doc, ok := s.LoadEventDetail("4101514")
	require.True(t, ok)
	assert.Equal(t, "4101514", doc.Data.ID)
	require.Len(t, doc.Included, 1)
	assert.Equal(t, "4101514-r1", doc.Included[0].ID)

	_, ok = s.LoadEventDetail("9999999")
	assert.False(t, ok)
}

// ── corrupt snapshots ─────────────────────────────────────────────────────────

func TestLoad_SkipsMalformedSnapshots(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveAthletes("229714", athleteDocument("100"))
	require.NoError(t, err)

	// A half-written capture from an interrupted snapshot run.
	broken := filepath.Join(s.Dir(), "meets_229714_athletes_20990101_000000.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"data": [`), 0o644))

	athletes := s.LoadAthletes()
	assert.Len(t, athletes, 1)
	assert.Contains(t, athletes, "100")
}
