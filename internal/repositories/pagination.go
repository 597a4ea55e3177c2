package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// ErrInvalidPage is returned when a caller asks for a non-positive page or
// page size.
var ErrInvalidPage = fmt.Errorf("page and length must be positive")

// Paginate is a gorm scope applying the 1-based page window. It is composed
// onto the same query builder the COUNT runs on, so both always share the
// identical filter predicate.
func Paginate(page, length int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * length
		return db.Offset(offset).Limit(length)
	}
}

// ValidatePage rejects page windows the pagination contract leaves undefined
func ValidatePage(page, length int) error {
	if page < 1 || length < 1 {
		return ErrInvalidPage
	}
	return nil
}
