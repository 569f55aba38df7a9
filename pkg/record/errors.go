package record

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsNotFound reports whether err signals a lookup for an absent identifier.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConstraintViolation reports whether err is a uniqueness or foreign-key
// restriction raised by storage. Postgres reports these as class 23 errors;
// the sqlite driver used in tests reports them by message.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return strings.Contains(err.Error(), "constraint failed")
}
