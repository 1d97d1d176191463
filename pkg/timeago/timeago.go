// Package timeago renders past timestamps as short relative labels.
//
// Format is the default, hour-granularity policy used for posts, comments and
// notifications. FormatDay is the day-granularity variant used where only the
// calendar day matters (saved and followed dates).
package timeago

import (
	"fmt"
	"time"
)

func Format(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())

	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%dw ago", days/7)
}

func FormatDay(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
