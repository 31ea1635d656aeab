package model

// Roles recognized in token claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a principal in the fixed credential store
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Don't serialize password hashes
	Role         string `json:"role"`
}

// UserLogin represents a login request
type UserLogin struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	User        *UserInfo `json:"user"`
}

// UserInfo represents the public view of a user
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Info returns the public view of the user
func (u *User) Info() *UserInfo {
	return &UserInfo{ID: u.ID, Username: u.Username, Role: u.Role}
}
