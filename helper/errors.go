package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownCoach         = errors.New("unknown coach")
	ErrInvalidSlot          = errors.New("time is not a bookable slot")
	ErrSlotConflict         = errors.New("slot conflicts with an existing booking")
	ErrIdentityConflict     = errors.New("another member already has this name and birthday")
	ErrNotFound             = errors.New("record not found")
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation recognises unique index failures from Postgres, from
// GORM's translated error and, as a last resort, from the driver message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// IsExclusionViolation recognises the bookings_coach_gap constraint firing.
func IsExclusionViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgCode(err) == pgExclusionViolation {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "exclusion constraint")
}
