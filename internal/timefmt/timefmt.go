// Package timefmt converts post timestamps into human-relative labels.
package timefmt

import (
	"fmt"
	"time"
)

// Bucket boundaries in seconds. Half-open and checked in ascending order, so
// a value sitting exactly on a boundary falls into the next bucket.
const (
	minute = 60
	hour   = 3600
	day    = 86400
	week   = 604800
)

// Relative converts a timestamp into a label relative to now.
func Relative(t time.Time) string {
	return RelativeTo(t, time.Now())
}

// RelativeTo converts a timestamp into a label relative to the given reference
// time. Separated from Relative so callers can pin "now".
//
//	< 60s    "just now"
//	< 1h     "{n}m ago"
//	< 1d     "{n}h ago"
//	< 7d     "{n}d ago"
//	older    short month + day, e.g. "Mar 4"
func RelativeTo(t, now time.Time) string {
	diff := int64(now.Sub(t).Seconds())

	switch {
	case diff < minute:
		return "just now"
	case diff < hour:
		return fmt.Sprintf("%dm ago", diff/minute)
	case diff < day:
		return fmt.Sprintf("%dh ago", diff/hour)
	case diff < week:
		return fmt.Sprintf("%dd ago", diff/day)
	default:
		return t.Format("Jan 2")
	}
}
