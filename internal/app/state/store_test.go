package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/pkg/durable"
	"github.com/yigit/intlportal/internal/seed"
)

const key = "globalAnnouncements"

func newStore(t *testing.T, backend durable.Backend) *Store {
	t.Helper()
	slice := durable.NewSlice(backend, key, seed.Announcements, zerolog.Nop())
	return NewStore(context.Background(), seed.Students(), slice, zerolog.Nop())
}

func TestNewStore_SeedsWithoutWriting(t *testing.T) {
	backend := durable.NewMemoryBackend(nil)
	s := newStore(t, backend)

	snap := s.Snapshot()
	assert.Equal(t, seed.Announcements(), snap.Announcements)
	assert.Len(t, snap.Students, 5)
	assert.Empty(t, snap.Documents)
	assert.Zero(t, backend.Writes())
}

func TestNewStore_MalformedStoredValueFallsBackToSeed(t *testing.T) {
	backend := durable.NewMemoryBackend(map[string]string{key: `[{"id": 1`})
	s := newStore(t, backend)

	assert.Equal(t, seed.Announcements(), s.Snapshot().Announcements)
	assert.Zero(t, backend.Writes())
}

func TestNewStore_LoadsStoredAnnouncements(t *testing.T) {
	stored := `[{"id":"9","title":"Exam week","message":"Good luck","type":"warning","priority":"high","date":"2024-02-01","author":"Academic Office"}]`
	s := newStore(t, durable.NewMemoryBackend(map[string]string{key: stored}))

	got := s.Snapshot().Announcements
	require.Len(t, got, 1)
	assert.Equal(t, "Good luck", got[0].Message)
	assert.Equal(t, models.AnnouncementTypeWarning, got[0].Type)
}

func TestReplaceAnnouncements_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := durable.NewMemoryBackend(nil)
	s := newStore(t, backend)

	list := append(seed.Announcements(), models.Announcement{
		ID: "1705312800000", Title: "Holiday", Message: "Campus closed", Type: models.AnnouncementTypeInfo,
		Priority: models.PriorityLow, Date: "2024-01-15", Author: "Academic Office",
	})
	s.ReplaceAnnouncements(ctx, list)
	assert.Equal(t, 1, backend.Writes())

	reopened := newStore(t, backend)
	assert.Equal(t, list, reopened.Snapshot().Announcements)
}

func TestReplaceAnnouncements_PersistsWhenRequestCancelled(t *testing.T) {
	backend, err := durable.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	s := newStore(t, backend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list := append(seed.Announcements(), models.Announcement{
		ID: "1708437909000", Title: "Visa clinic", Message: "Bring your passport", Type: models.AnnouncementTypeInfo,
		Priority: models.PriorityMedium, Date: "2024-02-20", Author: "Academic Office",
	})
	s.ReplaceAnnouncements(ctx, list)
	require.Len(t, s.Snapshot().Announcements, 4)

	reopened := newStore(t, backend)
	assert.Equal(t, list, reopened.Snapshot().Announcements)
}

type failingBackend struct{}

func (failingBackend) Get(context.Context, string) (string, error) { return "", durable.ErrNotFound }
func (failingBackend) Set(context.Context, string, string) error  { return errors.New("disk full") }

func TestReplaceAnnouncements_SaveFailureIsNotSurfaced(t *testing.T) {
	s := newStore(t, failingBackend{})
	snap := s.ReplaceAnnouncements(context.Background(), nil)
	assert.Empty(t, snap.Announcements)
	assert.Same(t, snap, s.Snapshot())
}

func TestReplace_KeepsPreviousSnapshotsIntact(t *testing.T) {
	s := newStore(t, durable.NewMemoryBackend(nil))
	before := s.Snapshot()

	students := append([]models.Student{}, before.Students...)
	students[0].Name = "Renamed"
	after := s.ReplaceStudents(students)

	assert.Equal(t, "Maria Gonzalez", before.Students[0].Name)
	assert.Equal(t, "Renamed", after.Students[0].Name)
	assert.Equal(t, before.Version+1, after.Version)
	assert.Equal(t, before.Announcements, after.Announcements)

	students[0].Name = "Mutated after publish"
	assert.Equal(t, "Renamed", s.Snapshot().Students[0].Name)
}

func TestReplaceDocuments(t *testing.T) {
	s := newStore(t, durable.NewMemoryBackend(nil))
	docs := seed.StudentDocuments(models.User{StudentID: "STU2024001", Name: "Maria Gonzalez"})
	snap := s.ReplaceDocuments(docs)
	assert.Equal(t, docs, snap.Documents)
}

func TestSubscribeAnnouncements(t *testing.T) {
	s := newStore(t, durable.NewMemoryBackend(nil))
	updates, cancel := s.SubscribeAnnouncements(1)

	s.ReplaceAnnouncements(context.Background(), seed.Announcements()[:1])
	select {
	case got := <-updates:
		assert.Len(t, got, 1)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)

	// Publishing after cancellation must not panic on the closed channel.
	s.ReplaceAnnouncements(context.Background(), nil)
}
