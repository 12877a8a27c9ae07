package reservations

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/courts"
)

type Status string

const (
	StatusPending                Status = "PENDING"
	StatusConfirmed              Status = "CONFIRMED"
	StatusCancelledByUser        Status = "CANCELLED_BY_USER"
	StatusCancelledByTransaction Status = "CANCELLED_BY_TRANSACTION"
)

// IsActive reports whether the reservation still claims its slot. Cancelled
// reservations free the slot but stay in the table; rows are never deleted.
func (s Status) IsActive() bool {
	return s != StatusCancelledByUser && s != StatusCancelledByTransaction
}

// Reservation claims one court for one hour. Date is always truncated to the
// start of the hour before any check runs.
type Reservation struct {
	ID        uuid.UUID    `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID    uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	CourtID   uuid.UUID    `json:"court_id" gorm:"type:uuid;not null;index"`
	Court     courts.Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
	Date      time.Time    `json:"date" gorm:"not null"`
	Status    Status       `json:"status" gorm:"not null;default:'PENDING'"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
