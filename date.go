package xzib

import "github.com/panzi/xzib/date"

// Date is the calendar date used by Meta.CreatedAt; see package date for
// its parsing and formatting rules.
type Date = date.Date

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(value string) (Date, error) {
	return date.Parse(value)
}
