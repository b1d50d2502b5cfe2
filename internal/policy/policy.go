// Package policy decides whether an actor may perform an operation on an
// account owned by someone else. Decisions are pure functions of the inputs:
// no storage access, no side effects, identical inputs always yield the same
// answer.
package policy

import (
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
)

// Operation is the closed set of account operations subject to policy.
type Operation int

const (
	// UpdateProfile changes email, nickname and password of an account.
	UpdateProfile Operation = iota
	// UpdateRole changes the trust level of an account.
	UpdateRole
	// Delete soft-deletes an account.
	Delete
)

// Allows reports whether actor may run op against the account owned by
// ownerUsername.
//
//	UpdateProfile: the owner, or a MASTER.
//	UpdateRole:    a MASTER only.
//	Delete:        the owner, a MASTER, or a MANAGER.
//
// UpdateProfile additionally requires the actor to present the account's
// current password; that check belongs to the lifecycle service, not here.
func Allows(actor principal.Principal, ownerUsername string, op Operation) bool {
	switch op {
	case UpdateProfile:
		return actor.Username == ownerUsername || actor.Role == models.RoleMaster
	case UpdateRole:
		return actor.Role == models.RoleMaster
	case Delete:
		return actor.Username == ownerUsername ||
			actor.Role == models.RoleMaster ||
			actor.Role == models.RoleManager
	}
	return false
}
