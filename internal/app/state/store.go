// Package state holds the collections shared by every screen: students,
// documents and announcements. Each change replaces a whole collection and
// publishes a new snapshot; the last writer wins.
package state

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/pkg/durable"
)

// Snapshot is one immutable version of the shared collections. Callers
// must not modify the slices; copy them before editing.
type Snapshot struct {
	Version       uint64                `json:"version"`
	Students      []models.Student      `json:"students"`
	Documents     []models.Document     `json:"documents"`
	Announcements []models.Announcement `json:"announcements"`
}

// Store owns the current snapshot.
type Store struct {
	mu            sync.RWMutex
	current       *Snapshot
	announcements *durable.Slice[[]models.Announcement]
	logger        zerolog.Logger

	subMu       sync.Mutex
	subscribers map[int]chan []models.Announcement
	nextSub     int
}

// NewStore builds the first snapshot. Announcements are loaded from the
// durable slice, which falls back to its seed; nothing is written until the
// first ReplaceAnnouncements.
func NewStore(ctx context.Context, students []models.Student, announcements *durable.Slice[[]models.Announcement], logger zerolog.Logger) *Store {
	loaded := announcements.Load(ctx)
	if loaded == nil {
		loaded = []models.Announcement{}
	}

	s := &Store{
		announcements: announcements,
		logger:        logger,
		subscribers:   make(map[int]chan []models.Announcement),
	}
	s.current = &Snapshot{
		Version:       1,
		Students:      slices.Clone(students),
		Documents:     []models.Document{},
		Announcements: loaded,
	}
	logger.Info().Int("announcements", len(loaded)).Int("students", len(students)).Msg("Shared state initialised")
	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// publish swaps in next under the write lock. The previous snapshot is
// left untouched.
func (s *Store) publish(edit func(next *Snapshot)) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current
	next.Version++
	edit(&next)
	s.current = &next
	return s.current
}

// ReplaceStudents replaces the student collection.
func (s *Store) ReplaceStudents(students []models.Student) *Snapshot {
	students = slices.Clone(students)
	snap := s.publish(func(next *Snapshot) { next.Students = students })
	s.logger.Debug().Uint64("version", snap.Version).Int("count", len(students)).Msg("Students replaced")
	return snap
}

// ReplaceDocuments replaces the document collection.
func (s *Store) ReplaceDocuments(documents []models.Document) *Snapshot {
	documents = slices.Clone(documents)
	snap := s.publish(func(next *Snapshot) { next.Documents = documents })
	s.logger.Debug().Uint64("version", snap.Version).Int("count", len(documents)).Msg("Documents replaced")
	return snap
}

// ReplaceAnnouncements replaces the announcement list and mirrors it to
// durable storage. The save outlives ctx so a cancelled request cannot leave
// the published list unsaved. A failed save is logged and otherwise ignored.
func (s *Store) ReplaceAnnouncements(ctx context.Context, announcements []models.Announcement) *Snapshot {
	announcements = slices.Clone(announcements)
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	snap := s.publish(func(next *Snapshot) { next.Announcements = announcements })

	if err := s.announcements.Save(context.WithoutCancel(ctx), announcements); err != nil {
		s.logger.Error().Err(err).Str("key", s.announcements.Key()).Msg("Failed to persist announcements")
	}
	s.notify(announcements)
	return snap
}

// SubscribeAnnouncements returns a channel receiving every announcement
// list published after the call, and a function that ends the
// subscription. Slow subscribers miss updates rather than block writers.
func (s *Store) SubscribeAnnouncements(buffer int) (<-chan []models.Announcement, func()) {
	ch := make(chan []models.Announcement, buffer)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) notify(list []models.Announcement) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subscribers {
		select {
		case ch <- list:
		default:
			s.logger.Warn().Int("subscriber", id).Msg("Announcement subscriber is behind, dropping update")
		}
	}
}
