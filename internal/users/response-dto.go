package users

import "time"

type ProfileResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Nickname      string    `json:"nickname"`
	Cellphone     string    `json:"cellphone"`
	Avatar        *string   `json:"avatar"`
	FavoriteSport string    `json:"favorite_sport"`
	FavoriteTime  string    `json:"favorite_time"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProfileResponse(user *User) *ProfileResponse {
	return &ProfileResponse{
		ID:            user.ID.String(),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Nickname:      user.Nickname,
		Cellphone:     user.Cellphone,
		Avatar:        user.Avatar,
		FavoriteSport: string(user.FavoriteSport),
		FavoriteTime:  string(user.FavoriteTime),
		Email:         user.Email,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
