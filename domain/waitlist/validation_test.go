package waitlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinqscribe/waitlist-api/internal/models"
)

func TestNormalizeCreateRequest(t *testing.T) {
	t.Run("trims names and lowercases email", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			FirstName: "  Jo ",
			LastName:  " Ok ",
			Email:     "  JO@Example.COM ",
		}

		normalizeCreateRequest(req)

		assert.Equal(t, "Jo", req.FirstName)
		assert.Equal(t, "Ok", req.LastName)
		assert.Equal(t, "jo@example.com", req.Email)
	})

	t.Run("absent status defaults to student", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{FirstName: "Jo", LastName: "Ok", Email: "jo@example.com"}

		normalizeCreateRequest(req)

		assert.Equal(t, models.StatusStudent, req.Status)
	})

	t.Run("explicit status is preserved", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			FirstName: "Jo",
			LastName:  "Ok",
			Email:     "jo@example.com",
			Status:    models.StatusResearcher,
		}

		normalizeCreateRequest(req)

		assert.Equal(t, models.StatusResearcher, req.Status)
	})
}

func TestValidateEntryFields(t *testing.T) {
	t.Run("valid fields produce no failures", func(t *testing.T) {
		failures := validateEntryFields("Jo", "Ok", "jo@example.com", models.StatusStudent)
		assert.Empty(t, failures)
	})

	t.Run("names must be at least two characters", func(t *testing.T) {
		failures := validateEntryFields("J", "Ok", "jo@example.com", models.StatusStudent)

		assert.Len(t, failures, 1)
		assert.Equal(t, "firstName", failures[0].Field)
		assert.Equal(t, "First name must be at least 2 characters", failures[0].Message)
	})

	t.Run("names cannot exceed fifty characters", func(t *testing.T) {
		longName := strings.Repeat("a", 51)
		failures := validateEntryFields("Jo", longName, "jo@example.com", models.StatusStudent)

		assert.Len(t, failures, 1)
		assert.Equal(t, "lastName", failures[0].Field)
		assert.Equal(t, "Last name cannot exceed 50 characters", failures[0].Message)
	})

	t.Run("exactly fifty characters is accepted", func(t *testing.T) {
		failures := validateEntryFields("Jo", strings.Repeat("a", 50), "jo@example.com", models.StatusStudent)
		assert.Empty(t, failures)
	})

	t.Run("length is measured in characters, not bytes", func(t *testing.T) {
		// "李" is a single character encoded as three bytes.
		failures := validateEntryFields("李", "Ok", "jo@example.com", models.StatusStudent)
		assert.Len(t, failures, 1)
		assert.Equal(t, "firstName", failures[0].Field)
		assert.Equal(t, "First name must be at least 2 characters", failures[0].Message)

		// 26 two-byte characters is well within the 50-character limit.
		accented := strings.Repeat("é", 26)
		assert.Empty(t, validateEntryFields(accented, "Ok", "jo@example.com", models.StatusStudent))

		failures = validateEntryFields("Jo", strings.Repeat("é", 51), "jo@example.com", models.StatusStudent)
		assert.Len(t, failures, 1)
		assert.Equal(t, "Last name cannot exceed 50 characters", failures[0].Message)
	})

	t.Run("email format", func(t *testing.T) {
		for _, email := range []string{"plainaddress", "@example.com", "user@", "user@example", "user name@example.com"} {
			failures := validateEntryFields("Jo", "Ok", email, models.StatusStudent)
			assert.Len(t, failures, 1, "expected %q to be rejected", email)
			assert.Equal(t, "Please enter a valid email address", failures[0].Message)
		}

		for _, email := range []string{"user@example.com", "first.last@example.co", "user-name@sub.example.org"} {
			assert.Empty(t, validateEntryFields("Jo", "Ok", email, models.StatusStudent), "expected %q to be accepted", email)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		failures := validateEntryFields("Jo", "Ok", "jo@example.com", "alumni")

		assert.Len(t, failures, 1)
		assert.Equal(t, "status", failures[0].Field)
		assert.Equal(t, "alumni is not a valid status", failures[0].Message)
	})

	t.Run("failures accumulate in field order", func(t *testing.T) {
		failures := validateEntryFields("", "", "", "nope")

		assert.Len(t, failures, 4)
		assert.Equal(t, "firstName", failures[0].Field)
		assert.Equal(t, "lastName", failures[1].Field)
		assert.Equal(t, "email", failures[2].Field)
		assert.Equal(t, "status", failures[3].Field)
	})
}
