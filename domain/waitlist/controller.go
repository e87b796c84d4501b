package waitlist

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/internal/log"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository)

			rs.AddPostHandler(c, "", createWaitlistEntryHandler(service))
			rs.AddGetHandler(c, "", listWaitlistEntriesHandler(service))
			rs.AddGetHandler(c, "/:id", getWaitlistEntryHandler(service))
			rs.AddPutHandler(c, "/:id", updateWaitlistEntryHandler(service))
			rs.AddDeleteHandler(c, "/:id", deleteWaitlistEntryHandler(service))
		},
	)
}

func createWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateEntry(ctx.Request.Context(), &req)
		if err != nil {
			return waitlistErrorResult(err)
		}

		return router.CreatedResult(response, "Successfully joined the waitlist")
	}
}

func listWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		query := ParseListEntriesQuery(ctx.Request.URL.Query())

		response, err := service.ListEntries(ctx.Request.Context(), query)
		if err != nil {
			return waitlistErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func getWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.GetEntry(ctx.Request.Context(), id)
		if err != nil {
			return waitlistErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entry retrieved successfully")
	}
}

func updateWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.UpdateEntry(ctx.Request.Context(), id, &req)
		if err != nil {
			return waitlistErrorResult(err)
		}

		return router.OKResult(response, "Waitlist entry updated successfully")
	}
}

func deleteWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		if err := service.DeleteEntry(ctx.Request.Context(), id); err != nil {
			return waitlistErrorResult(err)
		}

		return router.OKResult(nil, "Waitlist entry removed successfully")
	}
}

// waitlistErrorResult maps service errors onto the response envelope.
// Domain validation failures render like binding failures, and duplicate
// emails come back as 400 because the published signup contract reports
// them as a plain bad request rather than a conflict.
func waitlistErrorResult(err error) *router.ServiceResult {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return router.BadRequestResult("Invalid request payload", validationErr.Fields)
	}

	if apperrors.GetErrorType(err) == apperrors.ErrorTypeConflict {
		return router.BadRequestResult(apperrors.GetHumanReadableMessage(err), nil)
	}

	return router.ErrorResult(
		apperrors.HTTPStatusCode(err),
		apperrors.GetHumanReadableMessage(err),
		nil,
	)
}
