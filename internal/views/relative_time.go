package views

import (
	"fmt"
	"time"
)

// RelativeTime renders t relative to now ("3 hours ago", "yesterday").
// A zero t yields "" and a t in the future yields "just now".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.Before(t) {
		return "just now"
	}
	d := now.Sub(t)
	months := monthsBetween(t, now)
	years := months / 12
	days := int(d / (24 * time.Hour))
	hours := int(d / time.Hour)
	minutes := int(d / time.Minute)

	switch {
	case years > 0:
		return plural(years, "year")
	case months > 0:
		return plural(months, "month")
	case days > 0:
		switch {
		case days == 1:
			return "yesterday"
		case days < 7:
			return fmt.Sprintf("%d days ago", days)
		case days < 14:
			return "1 week ago"
		case days < 30:
			return fmt.Sprintf("%d weeks ago", days/7)
		default:
			return fmt.Sprintf("%d days ago", days)
		}
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "just now"
	}
}

// SmartTimeDisplay labels an item "Created ..." while it is unchanged since creation
// (updated less than two minutes after it), else "Last updated ...".
func SmartTimeDisplay(createdAt, updatedAt, now time.Time) string {
	switch {
	case createdAt.IsZero() && updatedAt.IsZero():
		return ""
	case updatedAt.IsZero():
		return prefixed("Created ", RelativeTime(createdAt, now))
	case createdAt.IsZero():
		return prefixed("Last updated ", RelativeTime(updatedAt, now))
	}
	if updatedAt.Sub(createdAt) < 2*time.Minute {
		return prefixed("Created ", RelativeTime(createdAt, now))
	}
	return prefixed("Last updated ", RelativeTime(updatedAt, now))
}

func prefixed(prefix, rel string) string {
	if rel == "" {
		return ""
	}
	return prefix + rel
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// monthsBetween counts whole calendar months from a to b (b >= a).
func monthsBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	anchor := a.AddDate(0, months, 0)
	if anchor.After(b) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
