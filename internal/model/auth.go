package model

// Principal is the authenticated user's identity and authorization data
// held client-side after a successful login. It exists only in memory
// and is never persisted across process restarts.
type Principal struct {
	ID        int64  `json:"id"`
	Token     string `json:"token"`
	Type      string `json:"type"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3,max=20"`
	LastName  string `json:"lastName" binding:"required,min=3,max=20"`
	Email     string `json:"email" binding:"required,email,max=50"`
	Password  string `json:"password" binding:"required,min=3,max=40"`
}
