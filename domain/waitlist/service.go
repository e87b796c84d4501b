package waitlist

import (
	"context"
	"math"

	"github.com/thinqscribe/waitlist-api/internal/log"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

type WaitlistService interface {
	CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*WaitlistEntryResponse, error)
	GetEntry(ctx context.Context, id uint) (*WaitlistEntryResponse, error)
	UpdateEntry(ctx context.Context, id uint, req *UpdateWaitlistEntryRequest) (*WaitlistEntryResponse, error)
	DeleteEntry(ctx context.Context, id uint) error
	ListEntries(ctx context.Context, query ListEntriesQuery) (*ListEntriesResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (ws *waitlistService) CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, ws.logger)
	if req == nil {
		return nil, apperrors.NewInvalidRequestError("request body is required", nil)
	}

	normalizeCreateRequest(req)
	if failures := validateEntryFields(req.FirstName, req.LastName, req.Email, req.Status); len(failures) > 0 {
		return nil, &ValidationError{Fields: failures}
	}

	entry, err := ws.repository.CreateEntry(ctx, ToWaitlistEntryModel(req))
	if err != nil {
		logger.Error("failed to create waitlist entry", "email", req.Email, "error", err)
		return nil, err
	}

	logger.Info("waitlist entry created", "id", entry.ID, "status", entry.Status)
	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func (ws *waitlistService) GetEntry(ctx context.Context, id uint) (*WaitlistEntryResponse, error) {
	entry, err := ws.repository.FindEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

// UpdateEntry overwrites the mutable fields of an entry. The payload is
// validated under the same rules as signup, then persisted in one statement
// before the fresh record is read back.
func (ws *waitlistService) UpdateEntry(ctx context.Context, id uint, req *UpdateWaitlistEntryRequest) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, ws.logger)
	if req == nil {
		return nil, apperrors.NewInvalidRequestError("request body is required", nil)
	}

	normalizeUpdateRequest(req)
	if failures := validateEntryFields(req.FirstName, req.LastName, req.Email, req.Status); len(failures) > 0 {
		return nil, &ValidationError{Fields: failures}
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"status":     req.Status,
	}
	if err := ws.repository.UpdateEntry(ctx, id, updates); err != nil {
		logger.Error("failed to update waitlist entry", "id", id, "error", err)
		return nil, err
	}

	entry, err := ws.repository.FindEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("waitlist entry updated", "id", id)
	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

// DeleteEntry deactivates the entry; repeating the call on an already
// inactive entry succeeds again without changing anything.
func (ws *waitlistService) DeleteEntry(ctx context.Context, id uint) error {
	logger := log.GetLoggerInstanceFromContext(ctx, ws.logger)
	if err := ws.repository.SoftDeleteEntry(ctx, id); err != nil {
		logger.Error("failed to delete waitlist entry", "id", id, "error", err)
		return err
	}
	logger.Info("waitlist entry deactivated", "id", id)
	return nil
}

// ListEntries runs the filtered page query and the global status aggregation.
// The status counts always cover the whole active waitlist so the dashboard
// summary does not shrink when a filter or search narrows the table.
func (ws *waitlistService) ListEntries(ctx context.Context, query ListEntriesQuery) (*ListEntriesResponse, error) {
	entries, total, err := ws.repository.ListEntries(ctx, query)
	if err != nil {
		return nil, err
	}

	statusCounts, err := ws.repository.CountActiveByStatus(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, ToWaitlistEntryResponse(entry))
	}

	return &ListEntriesResponse{
		Data: data,
		Pagination: Pagination{
			CurrentPage:    query.Page,
			TotalPages:     totalPages(total, query.Limit),
			TotalEntries:   total,
			EntriesPerPage: query.Limit,
		},
		StatusCounts: statusCounts,
	}, nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
