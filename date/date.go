// Package date implements the plain calendar date used by the META
// chunk's CreatedAt field: no timezone, no time-of-day, just a
// YYYY-MM-DD triple.
package date

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/panzi/xzib/errs"
)

// Date is a calendar date with no timezone or time component.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// Parse reads a "YYYY-MM-DD" string. Any other shape, or a
// non-numeric component, is an IllegalDate error.
func Parse(value string) (Date, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return Date{}, errs.NewIllegalDate(fmt.Sprintf("malformed date %q", value))
	}

	year, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Date{}, errs.NewIllegalDate(fmt.Sprintf("malformed date year %q", value))
	}
	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Date{}, errs.NewIllegalDate(fmt.Sprintf("malformed date month %q", value))
	}
	day, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Date{}, errs.NewIllegalDate(fmt.Sprintf("malformed date day %q", value))
	}

	return Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}, nil
}

// IsZero reports whether d is the unset zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats d as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
