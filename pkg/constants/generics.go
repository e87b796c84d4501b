package constants

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Listing defaults for the waitlist query endpoint.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// RecentEntriesLimit is how many newest signups the stats overview returns.
const RecentEntriesLimit = 5
