package database

import (
	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/reservations"
	"github.com/gasparellodev/mono-repo2/internal/schedule"
	"github.com/gasparellodev/mono-repo2/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&arenas.Address{},
		&arenas.Arena{},
		&schedule.OpeningHours{},
		&courts.Court{},
		&reservations.Reservation{},
	)
}
