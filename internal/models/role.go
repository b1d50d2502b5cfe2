package models

import "fmt"

// Role is the closed set of trust levels. MASTER is never granted at signup;
// the first MASTER is bootstrapped directly in the database.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleManager  Role = "MANAGER"
	RoleMaster   Role = "MASTER"
)

// ParseRole maps a raw string onto a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleManager, RoleMaster:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }
