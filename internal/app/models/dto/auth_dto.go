package dto

// LoginRequest represents the admin secret exchange
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed admin token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
