package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/internal/models"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=waitlist

type WaitlistRepository interface {
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error)
	UpdateEntry(ctx context.Context, id uint, updates map[string]interface{}) error
	SoftDeleteEntry(ctx context.Context, id uint) error
	ListEntries(ctx context.Context, query ListEntriesQuery) ([]*models.WaitlistEntry, int64, error)
	CountActiveByStatus(ctx context.Context) (map[string]int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

// CreateEntry inserts the entry in a single statement and lets the unique
// index on email arbitrate duplicates, so concurrent signups with the same
// address cannot race past a prior existence check.
func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateEmail(err) {
			return nil, apperrors.NewConflictError("Email already exists in the waitlist", err)
		}
		return nil, apperrors.NewDatabaseError("failed to create waitlist entry", err)
	}
	return entry, nil
}

func (wr *waitlistRepository) FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := wr.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("waitlist entry %d not found", id), err)
		}
		return nil, apperrors.NewDatabaseError("failed to find waitlist entry", err)
	}
	return &entry, nil
}

func (wr *waitlistRepository) UpdateEntry(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isDuplicateEmail(result.Error) {
			return apperrors.NewConflictError("Email already exists in the waitlist", result.Error)
		}
		return apperrors.NewDatabaseError("failed to update waitlist entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("waitlist entry %d not found", id), nil)
	}
	return nil
}

// SoftDeleteEntry deactivates the entry but keeps the row, so its email stays
// covered by the unique index and cannot be reused by a later signup.
func (wr *waitlistRepository) SoftDeleteEntry(ctx context.Context, id uint) error {
	result := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return apperrors.NewDatabaseError("failed to delete waitlist entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("waitlist entry %d not found", id), nil)
	}
	return nil
}

// escapeLike quotes LIKE metacharacters in a search term so they match
// literally instead of acting as wildcards.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListEntries applies the resolved query over active entries and returns the
// page together with the total match count.
func (wr *waitlistRepository) ListEntries(ctx context.Context, query ListEntriesQuery) ([]*models.WaitlistEntry, int64, error) {
	scope := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Where("is_active = ?", true)
	if query.Status != StatusAll {
		scope = scope.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(query.Search)) + "%"
		scope = scope.Where(
			"LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to count waitlist entries", err)
	}

	var entries []*models.WaitlistEntry
	err := scope.
		Order(orderClause(query)).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to list waitlist entries", err)
	}
	return entries, total, nil
}

// CountActiveByStatus aggregates active entries per status across the whole
// waitlist, independent of any list filters.
func (wr *waitlistRepository) CountActiveByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count waitlist entries by status", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// orderClause builds the ORDER BY from whitelisted values only; sortBy and
// order are resolved in ParseListEntriesQuery and never carry raw input. The
// id tiebreak keeps pagination stable when the sort key has duplicates.
func orderClause(query ListEntriesQuery) string {
	direction := "DESC"
	if query.Order == orderAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s, id ASC", sortColumns[query.SortBy], direction)
}

func isDuplicateEmail(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
