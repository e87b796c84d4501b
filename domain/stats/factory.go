package stats

import (
	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/internal/log"
)

type StatsServiceFactory interface {
	CreateService() StatsService
	CreateController() *router.RESTController
}

type DefaultStatsServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  OverviewCache
}

func NewStatsServiceFactory(db *gorm.DB, logger *log.Logger, cache OverviewCache) StatsServiceFactory {
	return &DefaultStatsServiceFactory{
		db:     db,
		logger: logger,
		cache:  cache,
	}
}

func (f *DefaultStatsServiceFactory) CreateService() StatsService {
	repository := NewStatsRepository(f.db)
	return NewStatsService(f.logger, repository, f.cache)
}

func (f *DefaultStatsServiceFactory) CreateController() *router.RESTController {
	return NewStatsController(f.db, f.logger, f.cache)
}
