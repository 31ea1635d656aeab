package model

// PlayerStats holds per-game averages; new players start at zero
type PlayerStats struct {
	PointsPerGame   float64 `json:"pointsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
}

// Player represents a stored player record
type Player struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Position  string      `json:"position"`
	Team      string      `json:"team"`
	Height    string      `json:"height"`
	Weight    string      `json:"weight"`
	BirthDate string      `json:"birthDate"`
	Stats     PlayerStats `json:"stats"`
}

// PlayerSummary is the filtered view served by the player-info endpoint
type PlayerSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Weight   string `json:"weight"`
	Height   string `json:"height"`
	Position string `json:"position"`
}

// PlayerCreate represents a player creation request
type PlayerCreate struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Position  string `json:"position" binding:"required,oneof='Point Guard' 'Shooting Guard' 'Small Forward' 'Power Forward' 'Center'"`
	Team      string `json:"team" binding:"required,min=2,max=50"`
	Height    string `json:"height" binding:"omitempty,max=10"`
	Weight    string `json:"weight" binding:"omitempty,max=10"`
	BirthDate string `json:"birthDate" binding:"omitempty,max=20"`
}
