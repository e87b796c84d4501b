package stats

import (
	"github.com/thinqscribe/waitlist-api/internal/models"
	"github.com/thinqscribe/waitlist-api/pkg/constants"
)

// RecentEntryResponse is the reduced projection used on the overview card;
// it deliberately omits email and id.
type RecentEntryResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JoinedAt  string `json:"joinedAt"`
}

type OverviewResponse struct {
	TotalEntries    int64                 `json:"totalEntries"`
	StatusBreakdown map[string]int64      `json:"statusBreakdown"`
	RecentEntries   []RecentEntryResponse `json:"recentEntries"`
}

func ToRecentEntryResponse(entry *models.WaitlistEntry) RecentEntryResponse {
	if entry == nil {
		return RecentEntryResponse{}
	}
	return RecentEntryResponse{
		FirstName: entry.FirstName,
		LastName:  entry.LastName,
		JoinedAt:  entry.JoinedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
