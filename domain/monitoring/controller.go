package monitoring

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/internal/log"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.root(c)
			})

			routerService.AddGetHandler(controller, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(c)
			})
		},
	)
}

func (ctrl *MonitoringController) root(c *router.RequestContext) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: 200,
		Data:       "ThinqScribe waitlist API is operational.",
		Message:    "OK",
	}
}

func (ctrl *MonitoringController) healthCheck(c *router.RequestContext) *router.ServiceResult {
	logger := router.GetLogger(c)
	healthStatus := ctrl.performHealthChecks(c.Request.Context(), logger)

	return &router.ServiceResult{
		StatusCode: 200,
		Data:       healthStatus,
		Message:    "waitlist-api health check completed",
	}
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
	} else {
		status.Database = 0
		logger.Error("Database health check failed")
	}

	if ctrl.cache == nil {
		status.Cache = 0
		logger.Info("Cache not configured, cache health check skipped")
	} else if ctrl.cache.Ping(ctx) == nil {
		status.Cache = 1
	} else {
		status.Cache = 0
		logger.Error("Cache health check failed")
	}

	return status
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
