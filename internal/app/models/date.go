package models

import "time"

// DateLayout is the calendar-date format used in both backends
// (DATE column in PostgreSQL, plain string in the CSV files).
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. The zero value means
// "not set" and serializes to an empty CSV field.
type Date struct {
	time.Time
}

// Today returns the current calendar date, truncated to midnight UTC.
func Today() Date {
	now := time.Now().UTC()
	return Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String returns the date in DateLayout, or "" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *Date) UnmarshalCSV(value string) error {
	if value == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}
