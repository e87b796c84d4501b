package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/thinqscribe/waitlist-api/internal/log"
	"github.com/thinqscribe/waitlist-api/pkg/constants"
)

// OverviewCache is the slice of the application cache the stats domain uses.
// A Get miss is ("", nil).
type OverviewCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

const (
	overviewCacheKey = "stats:overview"
	overviewCacheTTL = 30 * time.Second
)

type StatsService interface {
	GetOverview(ctx context.Context) (*OverviewResponse, error)
}

type statsService struct {
	logger     *log.Logger
	repository StatsRepository
	cache      OverviewCache
}

func NewStatsService(logger *log.Logger, repository StatsRepository, cache OverviewCache) StatsService {
	return &statsService{logger: logger, repository: repository, cache: cache}
}

// GetOverview assembles the dashboard summary: the active total, the per
// status breakdown and the five newest signups in reduced form. The result is
// cached for a short window; the overview tolerates slightly stale numbers.
func (ss *statsService) GetOverview(ctx context.Context) (*OverviewResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, ss.logger)

	if cached := ss.cachedOverview(ctx, logger); cached != nil {
		return cached, nil
	}

	total, err := ss.repository.CountActiveEntries(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	breakdown, err := ss.repository.ActiveStatusBreakdown(ctx)
	if err != nil {
		logger.Error("Failed to aggregate status breakdown", "error", err)
		return nil, err
	}

	recent, err := ss.repository.RecentActiveEntries(ctx, constants.RecentEntriesLimit)
	if err != nil {
		logger.Error("Failed to load recent waitlist entries", "error", err)
		return nil, err
	}

	recentEntries := make([]RecentEntryResponse, 0, len(recent))
	for _, entry := range recent {
		recentEntries = append(recentEntries, ToRecentEntryResponse(entry))
	}

	overview := &OverviewResponse{
		TotalEntries:    total,
		StatusBreakdown: breakdown,
		RecentEntries:   recentEntries,
	}

	ss.storeOverview(ctx, logger, overview)
	return overview, nil
}

func (ss *statsService) cachedOverview(ctx context.Context, logger *log.Logger) *OverviewResponse {
	if ss.cache == nil {
		return nil
	}

	raw, err := ss.cache.Get(ctx, overviewCacheKey)
	if err != nil {
		logger.Warn("Failed to read stats overview from cache", "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var overview OverviewResponse
	if err := json.Unmarshal([]byte(raw), &overview); err != nil {
		logger.Warn("Discarding malformed cached stats overview", "error", err)
		return nil
	}
	return &overview
}

func (ss *statsService) storeOverview(ctx context.Context, logger *log.Logger, overview *OverviewResponse) {
	if ss.cache == nil {
		return
	}

	raw, err := json.Marshal(overview)
	if err != nil {
		logger.Warn("Failed to encode stats overview for cache", "error", err)
		return
	}
	if err := ss.cache.Set(ctx, overviewCacheKey, string(raw), overviewCacheTTL); err != nil {
		logger.Warn("Failed to cache stats overview", "error", err)
	}
}
