package helpers

import (
	"strconv"
	"time"
)

// NextTimestampID derives a record id from the current time in
// milliseconds. If that id is already taken it is incremented until it
// is free, so ids created within the same millisecond stay distinct.
func NextTimestampID(now time.Time, taken func(id string) bool) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if taken == nil || !taken(id) {
			return id
		}
		n++
	}
}

// IDSet returns a lookup over ids extracted from items.
func IDSet[T any](items []T, id func(T) string) func(string) bool {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[id(item)] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := set[candidate]
		return ok
	}
}
