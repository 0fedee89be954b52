// Package kvstore provides the persistent key-value storage port the entity
// repositories are built on, with file, memory, Redis and Postgres backends.
package kvstore

import (
	"context"
	"errors"
)

// Well-known storage keys.
const (
	KeyUsers       = "signifi_users"
	KeyCourses     = "signifi_courses"
	KeyEnrollments = "signifi_enrollments"
	KeyStudents    = "signifi_students"
	KeyProfile     = "signifi_profile"
	KeySettings    = "signifi_settings"
	KeyTheme       = "signifi_theme"
)

// ErrClosed is returned by stores whose backing resource has been closed.
var ErrClosed = errors.New("kvstore: store is closed")

// Store is the storage port. Values are opaque strings keyed by string; all
// JSON encoding and decoding is layered above. No transactional guarantees:
// concurrent writers race and the last write wins.
type Store interface {
	// Get returns the value for key. The second return is false when the key
	// is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
