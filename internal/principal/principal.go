// Package principal carries the authenticated actor's identity. It is always
// passed explicitly into service calls, never read from ambient state.
package principal

import "github.com/sparat-2NE1/delivery/internal/models"

// Principal identifies the authenticated caller of a request.
type Principal struct {
	Username string
	Role     models.Role
}
