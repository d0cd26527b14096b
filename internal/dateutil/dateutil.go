// Package dateutil converts acquisition dates between the DD/MM/YYYY form
// used at the terminal and the ISO form used by storage.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DisplayLayout is the date form shown to and typed by the user.
	DisplayLayout = "02/01/2006"
	// ISOLayout is the date form used in storage.
	ISOLayout = "2006-01-02"
)

// displayPattern gates the input before time.Parse, which would otherwise
// accept single-digit days and months.
var displayPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Parse converts a DD/MM/YYYY string into a date at midnight UTC. Strings
// that do not match the pattern or name an impossible calendar date
// (e.g. 31/02/2023) are rejected.
func Parse(s string) (time.Time, error) {
	if !displayPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("data %q não está no formato DD/MM/YYYY", s)
	}
	t, err := time.Parse(DisplayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("data %q não é uma data válida", s)
	}
	return t, nil
}

// Format renders a date in DD/MM/YYYY form. Format is the inverse of Parse
// for every valid input.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ToISO converts a DD/MM/YYYY string to YYYY-MM-DD.
func ToISO(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.Format(ISOLayout), nil
}

// FromISO converts a YYYY-MM-DD string back to DD/MM/YYYY. Invalid input
// yields an empty string.
func FromISO(s string) string {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return ""
	}
	return Format(t)
}

// Today returns the current local date with the time zeroed, in UTC, so it
// compares directly against values returned by Parse.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
