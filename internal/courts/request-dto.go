package courts

type CreateCourtRequest struct {
	Name              string `json:"name" binding:"required,min=2,max=100"`
	TypeCourt         string `json:"type_court" binding:"required"`
	SportType         string `json:"sport_type" binding:"required"`
	ValuePerHour      string `json:"value_per_hour" binding:"required"`
	CoveredCourt      bool   `json:"covered_court"`
	CourtDigitalTimer bool   `json:"court_digital_timer"`
	CourtCamReplay    bool   `json:"court_cam_replay"`
	ArenaID           string `json:"arena_id" binding:"required,uuid"`
}
