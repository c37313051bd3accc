package domain

import "time"

// Role is the access level decoded from a session's token.
type Role string

const (
	// RoleCommuter is the unauthenticated default role.
	RoleCommuter Role = "COMMUTER"

	// RoleNTCUser is the elevated role permitted operator and
	// administrative routes.
	RoleNTCUser Role = "NTC_USER"
)

// Session holds an authenticated identity: the backend access token
// and the role derived from it. Written only by login and logout;
// read-only everywhere else.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"accessToken"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}
