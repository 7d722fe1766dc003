package models

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero value means "absent"
// and is encoded as JSON null.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time of day of t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Valid() bool {
	return !d.IsZero()
}

func (d Date) String() string {
	if !d.Valid() {
		return ""
	}
	return d.Format(DateLayout)
}

// AddYears moves the date by n calendar years. A 29 February that does not
// exist in the target year becomes 28 February.
func (d Date) AddYears(n int) Date {
	year := d.Year() + n
	day := d.Day()
	if d.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return NewDate(year, d.Month(), day)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}
