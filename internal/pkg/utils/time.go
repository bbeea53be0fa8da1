package utils

import (
	"fmt"
	"radiox-service/internal/pkg/constvars"
	"strings"
	"time"
)

func ParseAppointmentDate(value string) (time.Time, error) {
	return time.Parse(constvars.AppointmentDateLayout, value)
}

func ParseStartTime(value string) (time.Time, error) {
	return time.Parse(constvars.AppointmentTimeLayout, strings.TrimSpace(value))
}

// FormatConfirmationDate renders an appointment date the way the confirmation email shows it,
// e.g. "Saturday, June 1, 2024". Falls back to the raw value when it is not a valid date.
func FormatConfirmationDate(value string) string {
	parsed, err := ParseAppointmentDate(value)
	if err != nil {
		return value
	}
	return parsed.Format(constvars.EmailConfirmationDateDisplayLayout)
}

// BuildSlotKey normalizes a (doctor, date, start time) triple into the key used for both
// the slot uniqueness filter and the redis hold lock.
func BuildSlotKey(doctorFirstName, doctorLastName, date, startTime string) string {
	return strings.ToLower(fmt.Sprintf(constvars.SlotKeyFormat,
		strings.TrimSpace(doctorFirstName),
		strings.TrimSpace(doctorLastName),
		strings.TrimSpace(date),
		strings.TrimSpace(startTime),
	))
}
