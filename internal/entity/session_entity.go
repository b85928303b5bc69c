package entity

import "time"

// Session is a server-side login session. It backs the JWT's jti claim so
// tokens can be revoked before they expire.
type Session struct {
	Id        string
	UserId    int
	Username  string
	Role      UserRole
	CreatedAt time.Time
	ExpiresAt time.Time
}
