package services

import "errors"

// Sentinel errors shared by the service layer. Handlers translate these to
// HTTP statuses with errors.Is; messages are returned to the caller as-is.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsersNotFound      = errors.New("users not found")
	ErrForbidden          = errors.New("Access denied.")
	ErrIncorrectPassword  = errors.New("Incorrect password.")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")

	ErrAddressExists   = errors.New("delivery address already exists for this user")
	ErrAddressLimit    = errors.New("delivery address limit reached (max 3)")
	ErrAddressNotFound = errors.New("delivery address not found")

	ErrStoreNotFound   = errors.New("store not found")
	ErrInvalidCategory = errors.New("invalid store category")
	ErrProductExists   = errors.New("product already exists in this store")
	ErrProductNotFound = errors.New("product not found")
	ErrRegionNotFound  = errors.New("region not found")
)
