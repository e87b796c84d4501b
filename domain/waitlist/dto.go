package waitlist

import (
	"github.com/thinqscribe/waitlist-api/internal/models"
	"github.com/thinqscribe/waitlist-api/pkg/constants"
)

// Field names follow the public API contract (camelCase), which predates this
// service and is consumed by the signup form and the admin table.

type CreateWaitlistEntryRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Status    string `json:"status"`
}

// UpdateWaitlistEntryRequest carries the full set of mutable fields; partial
// updates are not supported by the admin UI.
type UpdateWaitlistEntryRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Status    string `json:"status"`
}

type WaitlistEntryResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	JoinedAt  string `json:"joinedAt"`
}

type Pagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalEntries   int64 `json:"totalEntries"`
	EntriesPerPage int   `json:"entriesPerPage"`
}

type ListEntriesResponse struct {
	Data         []WaitlistEntryResponse `json:"data"`
	Pagination   Pagination              `json:"pagination"`
	StatusCounts map[string]int64        `json:"statusCounts"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *CreateWaitlistEntryRequest) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Status:    req.Status,
		IsActive:  true,
	}
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:        entry.ID,
		FirstName: entry.FirstName,
		LastName:  entry.LastName,
		Email:     entry.Email,
		Status:    entry.Status,
		JoinedAt:  entry.JoinedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
