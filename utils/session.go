package utils

import (
	"net/http"
	"regexp"
	"strings"
)

const (
	SessionHeader  = "X-Session-ID"
	GuestSessionID = "guest"
)

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// SessionID identifies the browser session a request belongs to. There is
// no login; unknown or malformed ids fall back to the shared guest session.
func SessionID(r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(SessionHeader))
	if !sessionPattern.MatchString(id) {
		return GuestSessionID
	}
	return id
}
