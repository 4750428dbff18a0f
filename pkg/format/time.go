// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLen is the length of a RFC3339 full-date.
const dateLen = 10

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isLeapYear reports whether year is a Gregorian leap year.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth holds the month lengths of a common year.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isValidDate reports whether s is a valid RFC3339 full-date.
// The format is YYYY-MM-DD.
func isValidDate(s string) bool {
	// full-date     = date-fullyear "-" date-month "-" date-mday
	// date-fullyear = 4DIGIT
	// date-month    = 2DIGIT  ; 01-12
	// date-mday     = 2DIGIT  ; 01-28, 01-29, 01-30, 01-31 based on month/year
	if len(s) != dateLen {
		return false
	}
	if s[4] != '-' || s[7] != '-' {
		return false
	}
	if !isDigits(s[:4]) || !isDigits(s[5:7]) || !isDigits(s[8:]) {
		return false
	}

	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:7])
	mday, _ := strconv.Atoi(s[8:])

	if month < 1 || month > 12 || mday < 1 {
		return false
	}
	limit := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		limit = 29
	}
	return mday <= limit
}

// timeParts holds the pieces of a parsed RFC3339 time.
type timeParts struct {
	hour, minute, second int
	frac                 string // fraction digits without trailing zeros
	zone                 string // empty if there is no offset
	offset               int    // seconds east of UTC
}

// seconds returns the time of day in UTC, in whole seconds.
// The result may fall outside a single day once the offset is applied.
// A time without an offset is taken to be UTC.
func (tp timeParts) seconds() int {
	return tp.hour*3600 + tp.minute*60 + tp.second - tp.offset
}

// parseTime parses a RFC3339 partial-time with an optional offset.
// It checks the ranges of all fields.
func parseTime(s string) (timeParts, bool) {
	// time-hour      = 2DIGIT  ; 00-23
	// time-minute    = 2DIGIT  ; 00-59
	// time-second    = 2DIGIT  ; 00-58, 00-59, 00-60 based on leap second rules
	// time-secfrac   = "." 1*DIGIT
	// time-numoffset = ("+" / "-") time-hour [[":"] time-minute]
	// time-offset    = "Z" / time-numoffset
	// partial-time   = time-hour ":" time-minute ":" time-second [time-secfrac]
	var tp timeParts
	if len(s) < 8 {
		return tp, false
	}
	if s[2] != ':' || s[5] != ':' {
		return tp, false
	}
	if !isDigits(s[:2]) || !isDigits(s[3:5]) || !isDigits(s[6:8]) {
		return tp, false
	}
	tp.hour, _ = strconv.Atoi(s[:2])
	tp.minute, _ = strconv.Atoi(s[3:5])
	tp.second, _ = strconv.Atoi(s[6:8])

	end := 8
	if end < len(s) && s[end] == '.' {
		end++
		start := end
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		if end == start {
			return tp, false
		}
		tp.frac = strings.TrimRight(s[start:end], "0")
	}
	tp.zone = s[end:]

	if tp.hour > 23 || tp.minute > 59 {
		return tp, false
	}
	if tp.second >= 60 && !(tp.hour == 23 && tp.minute == 59 && tp.second == 60) {
		return tp, false
	}

	offset, ok := parseZone(tp.zone)
	if !ok {
		return tp, false
	}
	tp.offset = offset
	return tp, true
}

// compareParts orders two instants given as whole seconds
// and fraction digits.
func compareParts(a, b int, fa, fb string) int {
	if c := cmp.Compare(a, b); c != 0 {
		return c
	}
	// Trailing zeros are trimmed, so the digit strings order lexically.
	return strings.Compare(fa, fb)
}

// parseZone parses a time zone offset, which may be empty.
// It returns the offset in seconds east of UTC.
func parseZone(zone string) (int, bool) {
	if zone == "" || zone == "Z" || zone == "z" {
		return 0, true
	}
	sign := 1
	switch zone[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	zone = zone[1:]
	var hh, mm string
	switch len(zone) {
	case 2:
		hh = zone
	case 4:
		hh, mm = zone[:2], zone[2:]
	case 5:
		if zone[2] != ':' {
			return 0, false
		}
		hh, mm = zone[:2], zone[3:]
	default:
		return 0, false
	}
	if !isDigits(hh) || (mm != "" && !isDigits(mm)) {
		return 0, false
	}
	h, _ := strconv.Atoi(hh)
	m := 0
	if mm != "" {
		m, _ = strconv.Atoi(mm)
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return sign * (h*3600 + m*60), true
}

// isValidTime reports whether s is a valid time.
// If strictZone is true, s must end with a time zone offset.
func isValidTime(s string, strictZone bool) bool {
	tp, ok := parseTime(s)
	if !ok {
		return false
	}
	return !strictZone || tp.zone != ""
}

// isValidPartialTime is the "time" format, where the offset is optional.
func isValidPartialTime(s string) bool {
	return isValidTime(s, false)
}

// isDateTimeSeparator reports whether c separates the date
// from the time in a date-time.
func isDateTimeSeparator(c byte) bool {
	switch c {
	case 'T', 't', ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// splitDateTime splits a date-time at its only separator.
func splitDateTime(s string) (date, tm string, ok bool) {
	idx := -1
	for i := range len(s) {
		if isDateTimeSeparator(s[i]) {
			if idx >= 0 {
				return "", "", false
			}
			idx = i
		}
	}
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

// isValidDateTime reports whether s is a valid date-time.
// Unlike a bare time, the time zone offset is required.
func isValidDateTime(s string) bool {
	date, tm, ok := splitDateTime(s)
	if !ok {
		return false
	}
	return isValidDate(date) && isValidTime(tm, true)
}

var (
	fastDateRE     = regexp.MustCompile(`^\d\d\d\d-[0-1]\d-[0-3]\d$`)
	fastTimeRE     = regexp.MustCompile(`(?i)^(?:[0-2]\d:[0-5]\d:[0-5]\d|23:59:60)(?:\.\d+)?(?:z|[+-]\d\d(?::?\d\d)?)?$`)
	fastDateTimeRE = regexp.MustCompile(`(?i)^\d\d\d\d-[0-1]\d-[0-3]\d[t\s](?:[0-2]\d:[0-5]\d:[0-5]\d|23:59:60)(?:\.\d+)?(?:z|[+-]\d\d(?::?\d\d)?)$`)
)

func fastDate(s string) bool     { return fastDateRE.MatchString(s) }
func fastTime(s string) bool     { return fastTimeRE.MatchString(s) }
func fastDateTime(s string) bool { return fastDateTimeRE.MatchString(s) }

// compareDate orders two dates.
func compareDate(a, b string) (int, bool) {
	if !isValidDate(a) || !isValidDate(b) {
		return 0, false
	}
	return strings.Compare(a, b), true
}

// compareTime orders two times as instants of a single day.
// A time without an offset is taken to be UTC.
func compareTime(a, b string) (int, bool) {
	ta, ok := parseTime(a)
	if !ok {
		return 0, false
	}
	tb, ok := parseTime(b)
	if !ok {
		return 0, false
	}
	return compareParts(ta.seconds(), tb.seconds(), ta.frac, tb.frac), true
}

// dateTimeSeconds returns the instant of a valid date-time
// in whole seconds since the Unix epoch, and its fraction digits.
func dateTimeSeconds(s string) (int, string, bool) {
	date, tm, ok := splitDateTime(s)
	if !ok || !isValidDate(date) {
		return 0, "", false
	}
	tp, ok := parseTime(tm)
	if !ok || tp.zone == "" {
		return 0, "", false
	}
	year, _ := strconv.Atoi(date[:4])
	month, _ := strconv.Atoi(date[5:7])
	mday, _ := strconv.Atoi(date[8:])
	day := time.Date(year, time.Month(month), mday, 0, 0, 0, 0, time.UTC).Unix()
	return int(day) + tp.seconds(), tp.frac, true
}

// compareDateTime orders two date-times as instants,
// taking their offsets into account.
func compareDateTime(a, b string) (int, bool) {
	sa, fa, ok := dateTimeSeconds(a)
	if !ok {
		return 0, false
	}
	sb, fb, ok := dateTimeSeconds(b)
	if !ok {
		return 0, false
	}
	return compareParts(sa, sb, fa, fb), true
}

// durationRE is the ISO 8601 duration grammar.
// A bare "P" and a "T" without components are rejected separately,
// as RE2 has no lookahead.
var durationRE = regexp.MustCompile(`^P(?:(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+S)?)?|(\d+W)?)$`)

// isValidDuration reports whether s is a valid duration.
func isValidDuration(s string) bool {
	if s == "P" {
		return false
	}
	m := durationRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return m[4] != "T"
}
