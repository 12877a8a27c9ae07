package schedule

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHours is one weekly schedule entry for an arena. Hours are whole
// numbers on a 24h clock; the lunch bounds are optional and only take effect
// when both are set.
type OpeningHours struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ArenaID      uuid.UUID `json:"arena_id" gorm:"type:uuid;not null;index"`
	WeekDay      Weekday   `json:"week_day" gorm:"not null"`
	Opening      int       `json:"opening" gorm:"not null"`
	Closing      int       `json:"closing" gorm:"not null"`
	LunchOpening *int      `json:"lunch_opening"`
	LunchClosing *int      `json:"lunch_closing"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (OpeningHours) TableName() string {
	return "opening_hours"
}
