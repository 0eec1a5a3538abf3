package controller

import (
	"encoding/json"
	"net/http"

	"github.com/taekwondodev/go-role-login/internal/auth/service"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/dto"
	"github.com/taekwondodev/go-role-login/internal/models"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) error {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return customerrors.ErrBadRequest
	}

	res, err := c.authService.Login(r.Context(), req)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) HealthCheck(w http.ResponseWriter, r *http.Request) error {
	res, err := c.authService.HealthCheck(r.Context())
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

// Dashboard serves the landing route of a role. It only gives the client
// redirect a real target; nothing is guarded here.
func (c *AuthController) Dashboard(role models.Role) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		return c.respond(w, http.StatusOK, &dto.DashboardResponse{Dashboard: string(role)})
	}
}

func (c *AuthController) respond(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
