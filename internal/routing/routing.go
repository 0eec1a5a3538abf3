// Package routing maps a login role to the dashboard the client lands on.
package routing

import (
	"errors"
	"fmt"

	"github.com/taekwondodev/go-role-login/internal/models"
)

const (
	AdminDashboard = "/admin/dashboard"
	StaffDashboard = "/staff/dashboard"
	UserDashboard  = "/user/dashboard"
)

var ErrUnknownRole = errors.New("unknown role")

func Destination(role models.Role) (string, error) {
	switch role {
	case models.RoleAdmin:
		return AdminDashboard, nil
	case models.RoleStaff:
		return StaffDashboard, nil
	case models.RoleUser:
		return UserDashboard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// Dashboards returns every known role with its destination.
func Dashboards() map[models.Role]string {
	return map[models.Role]string{
		models.RoleAdmin: AdminDashboard,
		models.RoleStaff: StaffDashboard,
		models.RoleUser:  UserDashboard,
	}
}
