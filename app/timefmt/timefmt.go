// Package timefmt renders timestamps the way the board UI displays them:
// relative labels for recent activity, short dates for anything older.
package timefmt

import (
	"fmt"
	"time"
)

// Timestamp maps t to a human-readable label relative to now:
//
//	< 60s        "just now"
//	< 60 min     "{n} minute(s) ago"
//	< 24h        "{n} hour(s) ago"
//	1 day        "yesterday"
//	< 7 days     "{n} day(s) ago"
//	otherwise    "Jan 2", with the year appended when it differs from now's
//
// The function is pure: the same now and t always produce the same label.
func Timestamp(now, t time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	}
	days := hours / 24
	if days == 1 {
		return "yesterday"
	}
	if days < 7 {
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
