package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// LikePattern wraps a search term for a case-insensitive LIKE against LOWER(col).
func LikePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// Paginate is a gorm scope applying the window of p.
func Paginate(p Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Take)
	}
}

// RecordErr maps gorm.ErrRecordNotFound to a 404 *AppError carrying notFound.
func RecordErr(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFound)
	}
	return err
}

// IsDuplicate reports a unique-constraint violation (requires TranslateError).
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
