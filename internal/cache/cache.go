// Package cache provides a best-effort read-through cache in front of the
// read-heavy directory and mentor queries. Implementations must never fail a
// request: lookup misses and backend errors are equivalent, and writes that
// fail are dropped silently after logging.
package cache

import (
	"context"
	"strings"
	"time"
)

// Family prefixes. A write that changes data reachable by a cached read
// invalidates the whole family rather than individual keys.
const (
	FamilyAlumni  = "alumni:"
	FamilyMentors = "mentors:"
)

// TTLs by endpoint class.
const (
	ListingTTL   = 30 * time.Minute
	AggregateTTL = 60 * time.Minute
)

// Store is the injected cache client. All methods are best effort.
type Store interface {
	// Get returns the cached payload for key, or ok=false on miss or error.
	Get(ctx context.Context, key string) (value string, ok bool)
	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration)
	// Delete removes individual keys.
	Delete(ctx context.Context, keys ...string)
	// DeleteByPrefix removes every key in a family.
	DeleteByPrefix(ctx context.Context, prefix string)
}

// Param is one recognized query parameter of a cached endpoint.
type Param struct {
	Name  string
	Value string
}

// Key builds a deterministic cache key from an endpoint name and an
// explicitly ordered parameter tuple. Absent or empty values are normalized
// to "-" so that logically identical requests hash to the same key.
func Key(endpoint string, params ...Param) string {
	var b strings.Builder
	b.WriteString(endpoint)
	for _, p := range params {
		v := p.Value
		if v == "" {
			v = "-"
		}
		b.WriteByte(':')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}
