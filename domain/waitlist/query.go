package waitlist

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/thinqscribe/waitlist-api/internal/models"
	"github.com/thinqscribe/waitlist-api/pkg/constants"
)

// StatusAll disables the status filter in list queries.
const StatusAll = "all"

const (
	defaultSortBy = "createdAt"
	orderAsc      = "asc"
	orderDesc     = "desc"
)

// sortColumns whitelists the sortable API fields and maps them to their
// storage columns. Sort input never reaches SQL except through this table.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"joinedAt":  "joined_at",
	"status":    "status",
}

// ListEntriesQuery holds a fully resolved list query: every field is valid
// and defaulted, so the repository can use it without further checks.
type ListEntriesQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
	SortBy string
	Order  string
}

func (q ListEntriesQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseListEntriesQuery resolves raw query parameters against the list
// defaults. Unknown or malformed values fall back to their defaults rather
// than failing the request, matching how the admin dashboard has always
// treated them.
func ParseListEntriesQuery(values url.Values) ListEntriesQuery {
	query := ListEntriesQuery{
		Page:   1,
		Limit:  constants.DefaultPageSize,
		Status: StatusAll,
		Search: strings.TrimSpace(values.Get("search")),
		SortBy: defaultSortBy,
		Order:  orderDesc,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		query.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		if limit > constants.MaxPageSize {
			limit = constants.MaxPageSize
		}
		query.Limit = limit
	}
	if status := strings.TrimSpace(values.Get("status")); models.IsValidStatus(status) {
		query.Status = status
	}
	if sortBy := values.Get("sortBy"); sortColumns[sortBy] != "" {
		query.SortBy = sortBy
	}
	switch order := values.Get("order"); {
	case strings.EqualFold(order, orderAsc):
		query.Order = orderAsc
	case strings.EqualFold(order, orderDesc):
		query.Order = orderDesc
	}

	return query
}
