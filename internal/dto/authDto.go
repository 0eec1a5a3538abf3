package dto

import "github.com/taekwondodev/go-role-login/internal/models"

// LoginRequest is not validated for shape: an empty password is just a
// password that does not match.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Role    models.Role `json:"role,omitzero"`
}
