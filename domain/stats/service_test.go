package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/thinqscribe/waitlist-api/internal/log"
	"github.com/thinqscribe/waitlist-api/internal/models"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

func TestStatsService_GetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockStatsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewStatsService(logger, mockRepo, nil)

	t.Run("assembles totals, breakdown and reduced recent entries", func(t *testing.T) {
		joined := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

		mockRepo.EXPECT().
			CountActiveEntries(gomock.Any()).
			Return(int64(12), nil)

		mockRepo.EXPECT().
			ActiveStatusBreakdown(gomock.Any()).
			Return(map[string]int64{
				models.StatusStudent:  9,
				models.StatusEducator: 3,
			}, nil)

		mockRepo.EXPECT().
			RecentActiveEntries(gomock.Any(), 5).
			Return([]*models.WaitlistEntry{
				{ID: 12, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", JoinedAt: joined},
			}, nil)

		overview, err := service.GetOverview(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(12), overview.TotalEntries)
		assert.Equal(t, int64(9), overview.StatusBreakdown[models.StatusStudent])
		assert.Len(t, overview.RecentEntries, 1)
		assert.Equal(t, "Ann", overview.RecentEntries[0].FirstName)
		assert.Equal(t, "Lee", overview.RecentEntries[0].LastName)
		assert.Equal(t, joined.Format(time.RFC3339), overview.RecentEntries[0].JoinedAt)
	})

	t.Run("empty waitlist", func(t *testing.T) {
		mockRepo.EXPECT().CountActiveEntries(gomock.Any()).Return(int64(0), nil)
		mockRepo.EXPECT().ActiveStatusBreakdown(gomock.Any()).Return(map[string]int64{}, nil)
		mockRepo.EXPECT().RecentActiveEntries(gomock.Any(), 5).Return(nil, nil)

		overview, err := service.GetOverview(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), overview.TotalEntries)
		assert.Empty(t, overview.StatusBreakdown)
		assert.Empty(t, overview.RecentEntries)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			CountActiveEntries(gomock.Any()).
			Return(int64(0), apperrors.NewDatabaseError("database error", nil))

		overview, err := service.GetOverview(context.Background())

		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}

type fakeOverviewCache struct {
	entries map[string]string
	sets    int
}

func newFakeOverviewCache() *fakeOverviewCache {
	return &fakeOverviewCache{entries: make(map[string]string)}
}

func (f *fakeOverviewCache) Get(_ context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func (f *fakeOverviewCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	f.sets++
	return nil
}

func TestStatsService_GetOverviewCaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockStatsRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	cache := newFakeOverviewCache()
	service := NewStatsService(logger, mockRepo, cache)

	// The repository is queried exactly once; the second call is served
	// entirely from the cache.
	mockRepo.EXPECT().CountActiveEntries(gomock.Any()).Return(int64(4), nil).Times(1)
	mockRepo.EXPECT().ActiveStatusBreakdown(gomock.Any()).Return(map[string]int64{models.StatusStudent: 4}, nil).Times(1)
	mockRepo.EXPECT().RecentActiveEntries(gomock.Any(), 5).Return(nil, nil).Times(1)

	first, err := service.GetOverview(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := service.GetOverview(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first.TotalEntries, second.TotalEntries)
	assert.Equal(t, first.StatusBreakdown, second.StatusBreakdown)
	assert.Equal(t, 1, cache.sets)
}
