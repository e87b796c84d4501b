package stats

import (
	"context"

	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/internal/models"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=stats

type StatsRepository interface {
	CountActiveEntries(ctx context.Context) (int64, error)
	ActiveStatusBreakdown(ctx context.Context) (map[string]int64, error)
	RecentActiveEntries(ctx context.Context, limit int) ([]*models.WaitlistEntry, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (sr *statsRepository) CountActiveEntries(ctx context.Context) (int64, error) {
	var total int64
	err := sr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("is_active = ?", true).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("failed to count waitlist entries", err)
	}
	return total, nil
}

func (sr *statsRepository) ActiveStatusBreakdown(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := sr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to aggregate status breakdown", err)
	}

	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Status] = row.Count
	}
	return breakdown, nil
}

// RecentActiveEntries returns the newest signups first, with the id tiebreak
// keeping the order stable when several rows share a timestamp.
func (sr *statsRepository) RecentActiveEntries(ctx context.Context, limit int) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry
	err := sr.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to load recent waitlist entries", err)
	}
	return entries, nil
}
