package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/klauspost/compress/s2"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcal/internal/fitcal/calendar"
	"github.com/2beens/fitcal/internal/fitcal/logs"
	"github.com/2beens/fitcal/internal/fitcal/stats"
	"github.com/2beens/fitcal/internal/telemetry/metrics"
)

const (
	DefaultCacheSizeMB = 64
	// freecache rejects entries above 1/1024 of its size, a compressed year
	// grid has to fit under that
	MinCacheSizeMB = 32
	// bounds staleness after writes this process did not make
	cacheExpireSeconds = 5 * 60
)

type source interface {
	Load(ctx context.Context) (logs.CalendarData, error)
	Revision() uint64
}

// Views memoizes the projections by (view, year, store revision). A write
// through the store moves the revision, so old entries are never read again
// and just age out. Entries are stored as s2 compressed JSON.
type Views struct {
	store          source
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func New(store source, cacheSizeMB int, metricsManager *metrics.Manager) *Views {
	if cacheSizeMB <= 0 {
		cacheSizeMB = DefaultCacheSizeMB
	}
	if cacheSizeMB < MinCacheSizeMB {
		log.Warnf("views cache size %dMB too small, using %dMB", cacheSizeMB, MinCacheSizeMB)
		cacheSizeMB = MinCacheSizeMB
	}
	return &Views{
		store:          store,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func (v *Views) Calendar(ctx context.Context, year int, today string) (calendar.Grid, error) {
	key := fmt.Sprintf("calendar::%d::%d::%s", year, v.store.Revision(), today)
	return cached(ctx, v, "calendar", key, func(data logs.CalendarData) calendar.Grid {
		return calendar.Project(year, data, today)
	})
}

func (v *Views) Stats(ctx context.Context, year int) ([]stats.Point, error) {
	key := fmt.Sprintf("stats::%d::%d", year, v.store.Revision())
	return cached(ctx, v, "stats", key, func(data logs.CalendarData) []stats.Point {
		return stats.Project(year, data)
	})
}

func (v *Views) Charts(ctx context.Context, year int) (stats.Charts, error) {
	key := fmt.Sprintf("charts::%d::%d", year, v.store.Revision())
	return cached(ctx, v, "charts", key, func(data logs.CalendarData) stats.Charts {
		return stats.BuildCharts(year, stats.Project(year, data))
	})
}

func cached[T any](ctx context.Context, v *Views, view, key string, project func(logs.CalendarData) T) (T, error) {
	var result T
	if compressed, err := v.cache.Get([]byte(key)); err == nil {
		raw, unmarshalErr := s2.Decode(nil, compressed)
		if unmarshalErr == nil {
			unmarshalErr = json.Unmarshal(raw, &result)
		}
		if unmarshalErr == nil {
			v.metricsManager.CounterViewsCacheHits.WithLabelValues(view, "hit").Inc()
			return result, nil
		}
		log.Errorf("failed to unmarshal cached view [%s]: %s", key, unmarshalErr)
		var zero T
		result = zero
	}
	v.metricsManager.CounterViewsCacheHits.WithLabelValues(view, "miss").Inc()

	data, err := v.store.Load(ctx)
	if err != nil {
		return result, err
	}
	result = project(data)

	raw, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal view [%s]: %s", key, err)
		return result, nil
	}
	if err := v.cache.Set([]byte(key), s2.Encode(nil, raw), cacheExpireSeconds); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			log.Warnf("view [%s] too large to cache: %d bytes", key, len(raw))
		} else {
			log.Errorf("failed to cache view [%s]: %s", key, err)
		}
	}

	return result, nil
}
