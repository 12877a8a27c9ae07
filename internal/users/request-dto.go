package users

type UpdateProfileRequest struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Nickname      *string `json:"nickname,omitempty"`
	Cellphone     *string `json:"cellphone,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	FavoriteSport *string `json:"favorite_sport,omitempty"`
	FavoriteTime  *string `json:"favorite_time,omitempty"`
}

// Fields returns only the fields actually present in the payload.
func (r *UpdateProfileRequest) Fields() map[string]string {
	fields := make(map[string]string)
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Nickname != nil {
		fields["nickname"] = *r.Nickname
	}
	if r.Cellphone != nil {
		fields["cellphone"] = *r.Cellphone
	}
	if r.Avatar != nil {
		fields["avatar"] = *r.Avatar
	}
	if r.FavoriteSport != nil {
		fields["favorite_sport"] = *r.FavoriteSport
	}
	if r.FavoriteTime != nil {
		fields["favorite_time"] = *r.FavoriteTime
	}
	return fields
}
