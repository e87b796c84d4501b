package monitoring

import (
	"context"

	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/internal/log"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  MonitoringCache
}

func NewMonitoringControllerFactory(db *gorm.DB, logger *log.Logger, cache MonitoringCache) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		db:     db,
		logger: logger,
		cache:  cache,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache)
}
