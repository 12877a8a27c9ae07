package reservations

type CreateReservationRequest struct {
	Date    string `json:"date" binding:"required"` // RFC 3339
	CourtID string `json:"court_id" binding:"required,uuid"`
}

type FindAllInDayQuery struct {
	Date          string  `form:"date" binding:"required"` // YYYY-MM-DD
	Latitude      float64 `form:"latitude" binding:"required,latitude"`
	Longitude     float64 `form:"longitude" binding:"required,longitude"`
	OnlyAvailable bool    `form:"only_available"`
	ArenaID       string  `form:"arena_id"`
	Sort          string  `form:"sort"`
}

type FindAllInMonthQuery struct {
	ArenaID string `form:"arena_id" binding:"required,uuid"`
	Month   int    `form:"month" binding:"required,min=1,max=12"`
	Year    int    `form:"year" binding:"required,min=2000"`
}
