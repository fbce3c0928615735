package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Month is one of the twelve calendar months, ordered chronologically.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Months lists every month in calendar order.
var Months = [...]Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

var monthNames = [...]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// Label is the title-cased month name ("March") for the given locale.
func (m Month) Label(tag language.Tag) string {
	return cases.Title(tag).String(m.String())
}

// ParseMonth accepts a full English month name, its three letter
// abbreviation (case-insensitive) or a number from 1 to 12.
func ParseMonth(s string) (Month, error) {
	s = cases.Upper(language.Und).String(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if m := Month(n); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("ParseMonth: %q: %w", s, ErrInvalidMonth)
	}
	for i, name := range monthNames {
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("ParseMonth: %q: %w", s, ErrInvalidMonth)
}

// ParseMonths parses a comma separated month list, keeping the given order.
func ParseMonths(s string) ([]Month, error) {
	var months []Month
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := ParseMonth(part)
		if err != nil {
			return nil, fmt.Errorf("ParseMonths: %w", err)
		}
		months = append(months, m)
	}
	if len(months) == 0 {
		return nil, fmt.Errorf("ParseMonths: %w", ErrNoMonthsSpecified)
	}
	return months, nil
}
