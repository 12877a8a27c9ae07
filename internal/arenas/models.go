package arenas

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/schedule"
)

type Address struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Description string    `json:"description" gorm:"not null"`
	Lat         float64   `json:"lat" gorm:"not null"`
	Lon         float64   `json:"lon" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Arena is a sports facility owned by an ARENA-role user. IsValidated is the
// moment the platform approved the arena; nil means not yet validated and the
// arena stays out of every player-facing listing.
type Arena struct {
	ID           uuid.UUID               `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name         string                  `json:"name" gorm:"not null"`
	CNPJ         string                  `json:"cnpj" gorm:"uniqueIndex;not null"`
	Phone        string                  `json:"phone"`
	IsValidated  *time.Time              `json:"is_validated"`
	OwnerID      uuid.UUID               `json:"owner_id" gorm:"type:uuid;not null;index"`
	AddressID    uuid.UUID               `json:"address_id" gorm:"type:uuid;not null"`
	Address      Address                 `json:"address" gorm:"foreignKey:AddressID"`
	OpeningHours []schedule.OpeningHours `json:"opening_hours,omitempty" gorm:"foreignKey:ArenaID"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
