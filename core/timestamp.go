package core

import (
	"strconv"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	epochYear = 1970
)

var daysPerMonth = [12]uint64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has 366 days in the proleptic Gregorian calendar
func IsLeapYear(year uint64) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month (1-12) of year.
// It returns 0 for a month outside that range.
func DaysInMonth(year, month uint64) uint64 {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// Timestamp formats t as a UTC "YYYY-MM-DD HH:MM:SS" string.
// A time before the Unix epoch is treated as the epoch itself.
func Timestamp(t time.Time) string {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}
	return FormatTimestamp(uint64(secs))
}

// FormatTimestamp formats secs, counted from 1970-01-01 00:00:00 UTC, as
// "YYYY-MM-DD HH:MM:SS". The calendar is walked year by year and then month
// by month rather than delegated to package time.
func FormatTimestamp(secs uint64) string {
	return string(AppendTimestamp(make([]byte, 0, 19), secs))
}

// AppendTimestamp appends the FormatTimestamp rendering of secs to dst
func AppendTimestamp(dst []byte, secs uint64) []byte {
	second := secs % secondsPerMinute
	minute := (secs / secondsPerMinute) % 60
	hour := (secs / secondsPerHour) % 24

	days := secs / secondsPerDay

	year := uint64(epochYear)
	for {
		daysInYear := uint64(365)
		if IsLeapYear(year) {
			daysInYear = 366
		}
		if days < daysInYear {
			break
		}
		days -= daysInYear
		year++
	}

	month := uint64(1)
	for ; month < 12; month++ {
		dim := DaysInMonth(year, month)
		if days < dim {
			break
		}
		days -= dim
	}
	day := days + 1

	dst = appendPadded(dst, year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, month, 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, day, 2)
	dst = append(dst, ' ')
	dst = appendPadded(dst, hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, second, 2)
	return dst
}

// appendPadded appends v in decimal, left-padded with zeros to width digits
func appendPadded(dst []byte, v uint64, width int) []byte {
	var tmp [20]byte
	digits := strconv.AppendUint(tmp[:0], v, 10)
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}
