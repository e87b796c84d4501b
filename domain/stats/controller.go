package stats

import (
	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/internal/log"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

// NewStatsController mounts the overview endpoint under the waitlist prefix
// so the dashboard fetches everything from one API root.
func NewStatsController(
	db *gorm.DB,
	logger *log.Logger,
	cache OverviewCache,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"StatsController",
		"v1",
		"/waitlist/stats",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewStatsRepository(db)
			service := NewStatsService(logger, repository, cache)

			rs.AddGetHandler(c, "/overview", getOverviewHandler(service))
		},
	)
}

func getOverviewHandler(service StatsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetOverview(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist statistics retrieved successfully")
	}
}
