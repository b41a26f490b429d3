package utils

import "time"

// ISODate is the wire and storage format for all date-only fields.
const ISODate = "2006-01-02"

// Today returns today's local calendar date as an ISO date string
func Today() string {
	return time.Now().Format(ISODate)
}

// FirstOfMonth returns the first day of the current local month as an ISO date string
func FirstOfMonth() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(ISODate)
}

// StartOfDayMillis returns the Unix-millisecond timestamp of local midnight today.
// Used to match rows created today against autoCreateTime:milli columns.
func StartOfDayMillis() int64 {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).UnixMilli()
}

// ValidDate reports whether s is a well-formed ISO date. Empty is allowed
// because most date fields are optional.
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(ISODate, s)
	return err == nil
}
