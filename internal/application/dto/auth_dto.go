package dto

// LoginRequest credenciales del admin.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse token de sesión del admin.
type LoginResponse struct {
	Token string `json:"token"`
}
