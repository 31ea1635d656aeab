package model

// Coach represents a stored coach record
type Coach struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Age     *int     `json:"age"`
	Team    string   `json:"team"`
	History []string `json:"history"`
}

// CoachCreate represents a coach creation request
type CoachCreate struct {
	Name    string   `json:"name" binding:"required,min=2,max=100"`
	Age     *int     `json:"age" binding:"omitempty,gte=25,lte=80"`
	Team    string   `json:"team" binding:"required,min=2,max=50"`
	History []string `json:"history"`
}

// CoachUpdate represents a partial coach update; nil fields are untouched
type CoachUpdate struct {
	Name    *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Age     *int      `json:"age" binding:"omitempty,gte=25,lte=80"`
	Team    *string   `json:"team" binding:"omitempty,min=2,max=50"`
	History *[]string `json:"history"`
}
