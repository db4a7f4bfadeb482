package models

import "time"

// Session is the durably stored authentication state. The bearer token is
// treated as an opaque string and only ever placed into the Authorization
// header of outbound requests.
type Session struct {
	Token      string    `json:"token"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
