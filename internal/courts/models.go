package courts

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
)

type SportType string

const (
	SportTypeFootball    SportType = "FOOTBALL"
	SportTypeFutsal      SportType = "FUTSAL"
	SportTypeBeachTennis SportType = "BEACH_TENNIS"
	SportTypeVolleyball  SportType = "VOLLEYBALL"
	SportTypeTennis      SportType = "TENNIS"
)

type CourtFloor string

const (
	CourtFloorSand      CourtFloor = "SAND"
	CourtFloorGrass     CourtFloor = "GRASS"
	CourtFloorSynthetic CourtFloor = "SYNTHETIC"
	CourtFloorConcrete  CourtFloor = "CONCRETE"
)

type Court struct {
	ID                uuid.UUID    `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name              string       `json:"name" gorm:"not null"`
	TypeCourt         CourtFloor   `json:"type_court" gorm:"not null"`
	SportType         SportType    `json:"sport_type" gorm:"not null"`
	ValuePerHour      float64      `json:"value_per_hour" gorm:"not null"`
	CoveredCourt      bool         `json:"covered_court" gorm:"not null;default:false"`
	CourtDigitalTimer bool         `json:"court_digital_timer" gorm:"not null;default:false"`
	CourtCamReplay    bool         `json:"court_cam_replay" gorm:"not null;default:false"`
	ArenaID           uuid.UUID    `json:"arena_id" gorm:"type:uuid;not null;index"`
	Arena             arenas.Arena `json:"arena,omitempty" gorm:"foreignKey:ArenaID"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
