package dto

// LoginRequest credenciales de cualquier tipo de cuenta.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token firmado y datos mínimos de la cuenta.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	AccountID string `json:"account_id"`
	UserType  string `json:"user_type"`
}
