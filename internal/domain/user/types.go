package user

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient:
		return true
	default:
		return false
	}
}

// NewRole also accepts "cliente", the role name issued by the legacy login.
func NewRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "client", "cliente":
		return RoleClient, nil
	default:
		return "", ErrInvalidRole
	}
}

// Principal is the authenticated caller. ClientID is empty for admins.
type Principal struct {
	UserID   string
	Role     Role
	ClientID string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
