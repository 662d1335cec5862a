package report

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CacheKeyPrefix namespaces every report cache entry so invalidation can
// drop them all with one prefix scan.
const CacheKeyPrefix = "reports:"

// Cache is the byte cache the report service keeps marshaled rows in.
// A miss is a nil value with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// cacheKey assembles a report cache key from filter tokens.
func cacheKey(name string, tokens ...string) string {
	var b strings.Builder
	b.WriteString(CacheKeyPrefix)
	b.WriteString(name)
	for _, token := range tokens {
		b.WriteByte(':')
		b.WriteString(token)
	}
	return b.String()
}

func dayToken(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func idToken(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}
