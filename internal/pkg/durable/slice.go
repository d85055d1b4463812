package durable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Slice is one JSON value mirrored to a Backend under a fixed key.
type Slice[T any] struct {
	backend  Backend
	key      string
	fallback func() T
	logger   zerolog.Logger
}

// NewSlice binds key on backend. fallback is called whenever nothing
// usable is stored.
func NewSlice[T any](backend Backend, key string, fallback func() T, logger zerolog.Logger) *Slice[T] {
	return &Slice[T]{
		backend:  backend,
		key:      key,
		fallback: fallback,
		logger:   logger.With().Str("durable_key", key).Logger(),
	}
}

// Key returns the storage key.
func (s *Slice[T]) Key() string { return s.key }

// Load returns the stored value, or the fallback when the key is missing,
// cannot be read or does not parse. Failures are logged, never returned.
// Load never writes.
func (s *Slice[T]) Load(ctx context.Context) T {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error().Err(err).Msg("Failed to read stored value, using fallback")
		}
		return s.fallback()
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Error().Err(err).Msg("Error parsing stored value, using fallback")
		return s.fallback()
	}
	return v
}

// Save serializes v and stores it, replacing whatever was there.
func (s *Slice[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}
