package utils

import (
	"time"

	"github.com/yukikurage/calendar-api/internal/constants"
)

// IsValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// IsValidClockTime reports whether s is a wall-clock time in HH:MM form.
func IsValidClockTime(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}
