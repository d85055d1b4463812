// Package durable keeps small pieces of application state across
// restarts. Everything here is best-effort: there are no transactions,
// no versioning and no schema migration of the stored values.
package durable

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when nothing is stored under a key.
var ErrNotFound = errors.New("durable: key not found")

// Backend stores opaque text values by key.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
