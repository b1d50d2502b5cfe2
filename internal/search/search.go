// Package search builds the filter and sort for paginated user queries,
// decoupled from query execution so the construction logic can be tested on
// its own.
package search

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/models"
)

// ErrInvalidSortBy is returned for a sort field outside the allow-list.
var ErrInvalidSortBy = errors.New("SortBy must be one of the allowed values: 'createdAt', 'updatedAt', 'deletedAt'")

// Request is a sparse user search: every filter is optional, present filters
// are AND-combined.
type Request struct {
	Username string
	Email    string
	Role     *models.Role
	Page     int
	Size     int
	SortBy   string
	Order    string
}

// sortColumns maps API sort field names onto database columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"deletedAt": "deleted_at",
}

// Filter returns a GORM scope applying the request's filter conditions.
// Soft-deleted rows are always excluded. The email filter matches against the
// username column, not email; see DESIGN.md before changing this.
func Filter(req Request) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("deleted_at IS NULL")

		if req.Username != "" {
			db = db.Where("LOWER(username) LIKE ?", contains(req.Username))
		}

		if req.Email != "" {
			db = db.Where("LOWER(username) LIKE ?", contains(req.Email))
		}

		if req.Role != nil {
			db = db.Where("role = ?", *req.Role)
		}

		return db
	}
}

// OrderBy validates the sort field against the allow-list and resolves the
// direction. Only the literal "desc" sorts descending; any other order value
// is treated as ascending.
func OrderBy(sortBy, order string) (string, error) {
	col, ok := sortColumns[sortBy]
	if !ok {
		return "", ErrInvalidSortBy
	}

	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}

	return col + " " + dir, nil
}

// Paginate returns a scope applying a zero-based page window.
func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page * size).Limit(size)
	}
}

func contains(v string) string {
	return "%" + strings.ToLower(v) + "%"
}
