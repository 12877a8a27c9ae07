package schedule

type CreateOpeningHoursRequest struct {
	WeekDay      string `json:"week_day" binding:"required"`
	Opening      int    `json:"opening" binding:"min=0,max=23"`
	Closing      int    `json:"closing" binding:"required,min=1,max=24"`
	ArenaID      string `json:"arena_id" binding:"required,uuid"`
	LunchOpening *int   `json:"lunch_opening,omitempty"`
	LunchClosing *int   `json:"lunch_closing,omitempty"`
}
