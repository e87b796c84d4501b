package waitlist

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thinqscribe/waitlist-api/internal/models"
	apperrors "github.com/thinqscribe/waitlist-api/pkg/errors"
)

const (
	minNameLength = 2
	maxNameLength = 50
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// normalizeCreateRequest canonicalizes user input in place before validation
// and storage: names are trimmed, the email is trimmed and lowercased so that
// uniqueness is case-insensitive, and an absent status falls back to the
// default. Every write path goes through here so the two never disagree.
func normalizeCreateRequest(req *CreateWaitlistEntryRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Status = strings.TrimSpace(req.Status)
	if req.Status == "" {
		req.Status = models.DefaultStatus
	}
}

func normalizeUpdateRequest(req *UpdateWaitlistEntryRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Status = strings.TrimSpace(req.Status)
	if req.Status == "" {
		req.Status = models.DefaultStatus
	}
}

// validateEntryFields checks the normalized field values against the waitlist
// rules and returns one entry per failed field, in field order.
func validateEntryFields(firstName, lastName, email, status string) []apperrors.ValidationErrorResponse {
	var failures []apperrors.ValidationErrorResponse

	if msg := validateName(firstName, "First name"); msg != "" {
		failures = append(failures, apperrors.ValidationErrorResponse{Field: "firstName", Message: msg})
	}
	if msg := validateName(lastName, "Last name"); msg != "" {
		failures = append(failures, apperrors.ValidationErrorResponse{Field: "lastName", Message: msg})
	}

	if email == "" {
		failures = append(failures, apperrors.ValidationErrorResponse{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(email) {
		failures = append(failures, apperrors.ValidationErrorResponse{Field: "email", Message: "Please enter a valid email address"})
	}

	if !models.IsValidStatus(status) {
		failures = append(failures, apperrors.ValidationErrorResponse{
			Field:   "status",
			Message: fmt.Sprintf("%s is not a valid status", status),
		})
	}

	return failures
}

func validateName(value, label string) string {
	switch {
	case value == "":
		return fmt.Sprintf("%s is required", label)
	case utf8.RuneCountInString(value) < minNameLength:
		return fmt.Sprintf("%s must be at least %d characters", label, minNameLength)
	case utf8.RuneCountInString(value) > maxNameLength:
		return fmt.Sprintf("%s cannot exceed %d characters", label, maxNameLength)
	default:
		return ""
	}
}

// ValidationError carries per-field failures from domain validation so the
// transport layer can render them alongside binding errors in one format.
type ValidationError struct {
	Fields []apperrors.ValidationErrorResponse
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
