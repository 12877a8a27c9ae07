package arenas

type CreateArenaRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	CNPJ        string  `json:"cnpj" binding:"required,min=14,max=18"`
	Phone       string  `json:"phone" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Lat         float64 `json:"lat" binding:"required,latitude"`
	Lon         float64 `json:"lon" binding:"required,longitude"`
}

type LocationSearchQuery struct {
	Latitude  float64 `form:"latitude" binding:"required,latitude"`
	Longitude float64 `form:"longitude" binding:"required,longitude"`
	Input     string  `form:"input"`
}
