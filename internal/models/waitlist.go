package models

import (
	"time"

	"gorm.io/gorm"
)

// Waitlist statuses. The set is closed; the store never holds any other value.
const (
	StatusStudent      = "student"
	StatusEducator     = "educator"
	StatusProfessional = "professional"
	StatusResearcher   = "researcher"
	StatusOther        = "other"
)

// DefaultStatus is applied when a signup omits the status field.
const DefaultStatus = StatusStudent

// Statuses lists every valid status value.
func Statuses() []string {
	return []string{StatusStudent, StatusEducator, StatusProfessional, StatusResearcher, StatusOther}
}

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s string) bool {
	switch s {
	case StatusStudent, StatusEducator, StatusProfessional, StatusResearcher, StatusOther:
		return true
	}
	return false
}

// WaitlistEntry is a single waitlist signup.
//
// Soft deletion is modeled with IsActive rather than gorm.DeletedAt: an
// inactive entry disappears from listings and aggregates but its email keeps
// blocking re-registration, so the row must stay visible to the unique index.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Status    string    `gorm:"not null;index;default:student"`
	JoinedAt  time.Time `gorm:"not null"`
	// No default tag here: gorm would drop an explicit false from the
	// INSERT and let the column default flip it back to true.
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if e.JoinedAt.IsZero() {
		e.JoinedAt = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = DefaultStatus
	}
	return nil
}
