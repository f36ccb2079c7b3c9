// README: Redis GEO mirror of the available-driver set.
package driver

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const availableGeoKey = "drivers:available"

// Store mirrors available drivers into a Redis GEO set so ops tooling can
// query live positions without touching the in-process registry. The registry
// remains the source of truth; the mirror is best-effort.
type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) Upsert(ctx context.Context, d Driver) error {
	return s.redis.GeoAdd(ctx, availableGeoKey, &redis.GeoLocation{
		Name:      strconv.FormatInt(d.ID, 10),
		Longitude: d.Position.Lng,
		Latitude:  d.Position.Lat,
	}).Err()
}

func (s *Store) Remove(ctx context.Context, id int64) error {
	return s.redis.ZRem(ctx, availableGeoKey, strconv.FormatInt(id, 10)).Err()
}
