package stats

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"civicconnect-be/repositories"

	"github.com/redis/go-redis/v9"
)

const overviewCacheKey = "stats:overview"

// Monitor recomputes the admin overview at a fixed interval, logs count
// changes against the previous snapshot, and caches the result in Redis.
type Monitor struct {
	issues   repositories.IssueRepository
	users    repositories.UserRepository
	cache    *redis.Client
	interval time.Duration

	mu       sync.Mutex
	prev     Overview
	havePrev bool
}

// NewMonitor creates a Monitor with the given refresh interval
func NewMonitor(issues repositories.IssueRepository, users repositories.UserRepository, cache *redis.Client, interval time.Duration) *Monitor {
	return &Monitor{
		issues:   issues,
		users:    users,
		cache:    cache,
		interval: interval,
	}
}

// Run refreshes the overview until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Refresh(ctx); err != nil {
				log.Println("Error refreshing stats overview:", err)
			}
		}
	}
}

// Refresh recomputes the overview from the store and updates the cache.
func (m *Monitor) Refresh(ctx context.Context) (Overview, error) {
	counts, err := m.issues.CountByStatus(ctx, "")
	if err != nil {
		return Overview{}, err
	}

	totalUsers, err := m.users.Count(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		Summary:    Summarize(counts),
		TotalUsers: totalUsers,
	}

	m.mu.Lock()
	if m.havePrev {
		if overview.TotalUsers > m.prev.TotalUsers {
			log.Println("A new user just registered!")
		}
		if overview.Total > m.prev.Total {
			log.Println("A new issue has been reported!")
		}
		if overview.Pending < m.prev.Pending {
			log.Println("An issue has been resolved!")
		}
	}
	m.prev = overview
	m.havePrev = true
	m.mu.Unlock()

	payload, err := json.Marshal(overview)
	if err != nil {
		return Overview{}, err
	}
	if err := m.cache.Set(ctx, overviewCacheKey, payload, 2*m.interval).Err(); err != nil {
		log.Println("Error caching stats overview:", err)
	}

	return overview, nil
}

// Snapshot returns the cached overview, recomputing on a cache miss.
func (m *Monitor) Snapshot(ctx context.Context) (Overview, error) {
	payload, err := m.cache.Get(ctx, overviewCacheKey).Bytes()
	if err == redis.Nil {
		return m.Refresh(ctx)
	}
	if err != nil {
		return Overview{}, err
	}

	var overview Overview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return Overview{}, err
	}

	return overview, nil
}
