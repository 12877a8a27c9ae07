package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleArena Role = "ARENA"
	RoleAdmin Role = "ADMIN"
)

type FavoriteSport string

const (
	FavoriteSportFootball    FavoriteSport = "FOOTBALL"
	FavoriteSportFutsal      FavoriteSport = "FUTSAL"
	FavoriteSportBeachTennis FavoriteSport = "BEACH_TENNIS"
	FavoriteSportVolleyball  FavoriteSport = "VOLLEYBALL"
	FavoriteSportTennis      FavoriteSport = "TENNIS"
)

type FavoriteTime string

const (
	FavoriteTimeMorning   FavoriteTime = "MORNING"
	FavoriteTimeAfternoon FavoriteTime = "AFTERNOON"
	FavoriteTimeNight     FavoriteTime = "NIGHT"
)

type User struct {
	ID            uuid.UUID     `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName     string        `json:"first_name" gorm:"not null"`
	LastName      string        `json:"last_name" gorm:"not null"`
	Nickname      string        `json:"nickname"`
	Cellphone     string        `json:"cellphone"`
	Avatar        *string       `json:"avatar"`
	FavoriteSport FavoriteSport `json:"favorite_sport"`
	FavoriteTime  FavoriteTime  `json:"favorite_time"`
	Password      string        `json:"-" gorm:"not null"` // hide in json
	Role          Role          `json:"role" gorm:"not null;default:'USER'"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleArena), string(RoleAdmin):
		return true
	default:
		return false
	}
}

func IsValidFavoriteSport(sport string) bool {
	switch FavoriteSport(sport) {
	case FavoriteSportFootball, FavoriteSportFutsal, FavoriteSportBeachTennis,
		FavoriteSportVolleyball, FavoriteSportTennis:
		return true
	default:
		return false
	}
}

func IsValidFavoriteTime(t string) bool {
	switch FavoriteTime(t) {
	case FavoriteTimeMorning, FavoriteTimeAfternoon, FavoriteTimeNight:
		return true
	default:
		return false
	}
}
