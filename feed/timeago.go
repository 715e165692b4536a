package feed

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders how long before now t was: just now, minutes,
// hours or days, and the plain date after a week.
func FormatTimeAgo(t, now time.Time) string {
	secs := int(now.Sub(t) / time.Second)
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	case secs < 604800:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
	return t.Format("Jan 2, 2006")
}
