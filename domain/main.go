package domain

import (
	"github.com/thinqscribe/waitlist-api/config"
	"github.com/thinqscribe/waitlist-api/domain/monitoring"
	"github.com/thinqscribe/waitlist-api/domain/stats"
	"github.com/thinqscribe/waitlist-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(stats.NewStatsController(appConfig.DB, appConfig.Logger, appConfig.Cache))
}
