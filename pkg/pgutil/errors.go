package pgutil

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const sqlStateUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Field('C') == sqlStateUniqueViolation
}
