package dto

import "time"

// TimestampLayout is the fixed human-readable format for created/lastLogin
// fields, e.g. "Jan 05, 2024 03:04:05 PM".
const TimestampLayout = "Jan 02, 2006 03:04:05 PM"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
