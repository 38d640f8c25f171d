package gcbook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

var (
	yearRE     = regexp.MustCompile(`^\d{4}$`)
	relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmy]?)$`)
)

// ParseDate parses a date argument. It accepts:
//   - an ISO date, leniently ("2025-01-15", "2025-7-1"),
//   - a relative offset from today with an optional unit ("-30d", "+2w",
//     "-1m", "+1y"); a bare signed integer ("-30") counts days,
//   - "0d" for today.
//
// A bare four-digit year is ambiguous between the start and the end of the
// year; use [ParseBeginDate] or [ParseEndDate] where a year is acceptable.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	// "0d" has no sign, so the relative regexp does not cover it.
	if str == "0d" {
		return Today(), nil
	}

	if match := relativeRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regexp.
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}

		today := Today()
		switch match[3] {
		case "", "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return NewDate(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "y":
			return NewDate(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want %q, a ±N[dwmy] offset, or a year", str, DateFormat)
	}
	return NewDate(on.Date()), nil
}

// ParseBeginDate is ParseDate, with a bare year resolving to January 1st.
func ParseBeginDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if yearRE.MatchString(str) {
		year, _ := strconv.Atoi(str)
		return NewDate(year, time.January, 1), nil
	}
	return ParseDate(str)
}

// ParseEndDate is ParseDate, with a bare year resolving to December 31st.
func ParseEndDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if yearRE.MatchString(str) {
		year, _ := strconv.Atoi(str)
		return NewDate(year, time.December, 31), nil
	}
	return ParseDate(str)
}

// MustParseDate is like ParseDate but panics on error. Meant for tests.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
