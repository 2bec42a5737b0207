package session

import "time"

// Session is the in-memory record kept per Slack user after a successful
// login against the Kerberos.io API. It lives until the user logs out,
// the token is rejected, or the process exits.
type Session struct {
	Token     string
	Username  string
	LoginTime time.Time
}
