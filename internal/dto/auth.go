package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
}

// LoginResponse carries the bearer token issued at login
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
