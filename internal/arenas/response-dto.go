package arenas

// ArenaDistanceResponse is the search/nearby list item: distance is meters
// from the caller's coordinates.
type ArenaDistanceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}
