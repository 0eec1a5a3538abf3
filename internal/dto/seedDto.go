package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/taekwondodev/go-role-login/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
	return v
}

// SeedRecord is one entry of the seed file.
type SeedRecord struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,role"`
}

func (s *SeedRecord) Validate() error {
	return validate.Struct(s)
}
