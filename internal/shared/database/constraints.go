package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One active reservation per (court, hour). Cancelled rows stay behind as
	// soft state and must not block the slot from being booked again.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_active_reservation_per_slot
		ON reservations (court_id, date)
		WHERE status NOT IN ('CANCELLED_BY_USER', 'CANCELLED_BY_TRANSACTION');
	`).Error
	if err != nil {
		return err
	}

	// Index for availability queries scanning a court's reservations by date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_court_date
		ON reservations (court_id, date);
	`).Error
	if err != nil {
		return err
	}

	// One opening-hours row per (arena, weekday)
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_opening_hours_per_weekday
		ON opening_hours (arena_id, week_day);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
