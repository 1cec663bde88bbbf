package request

// RegisterRequest is the request body for registering a player.
// Name may be omitted; the server substitutes a default.
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
