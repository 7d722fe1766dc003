package utils

import (
	"strings"
	"time"

	"github.com/username/brokertax/src/models"
)

// timeSeparator splits the date from an optional time of day ("2024-03-15, 10:30:00").
const timeSeparator = ", "

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseDate tries each layout in order against the part of s before the first
// ", ". The first layout that parses wins. ok is false when none matches.
func ParseDate(s string, layouts []string) (models.Date, bool) {
	if strings.TrimSpace(s) == "" {
		return models.Date{}, false
	}
	datePart, _, _ := strings.Cut(s, timeSeparator)
	for _, layout := range layouts {
		t, err := time.Parse(layout, datePart)
		if err == nil {
			return models.DateOf(t), true
		}
	}
	return models.Date{}, false
}

// ParseTimestamp is ParseDate plus the optional time of day after ", ".
// A missing or unreadable time of day counts as midnight.
func ParseTimestamp(s string, layouts []string) (time.Time, bool) {
	d, ok := ParseDate(s, layouts)
	if !ok {
		return time.Time{}, false
	}
	_, clock, found := strings.Cut(s, timeSeparator)
	if !found {
		return d.Time, true
	}
	clock = strings.TrimSpace(clock)
	for _, layout := range timeOfDayLayouts {
		if c, err := time.Parse(layout, clock); err == nil {
			offset := time.Duration(c.Hour())*time.Hour +
				time.Duration(c.Minute())*time.Minute +
				time.Duration(c.Second())*time.Second
			return d.Time.Add(offset), true
		}
	}
	return d.Time, true
}
