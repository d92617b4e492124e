// Package session holds the signed-in user model and the authentication
// boundary. The session itself is a thin record: a user pointer plus a flag
// derived from it. Nothing here is persisted; the session lives only for the
// lifetime of the process.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role identifies which flavor of the app a user sees.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleParent, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleParent, RoleAdmin:
		return true
	}
	return false
}

// String returns the lowercase role tag.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable role name ("Student", "Teacher", ...).
func (r Role) DisplayName() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseRole converts a string tag into a Role.
// Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("session: unknown role %q", s)
	}
	return r, nil
}

// User is the signed-in account. Instances are immutable once constructed;
// login always builds a fresh record rather than mutating an existing one.
type User struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Role       Role
	AvatarPath string // optional, path or URL to an avatar image
	Verified   bool
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Session is the current sign-in state. Authenticated is never stored
// separately from the user pointer; it is always derived.
type Session struct {
	User *User
}

// Authenticated reports whether a user is signed in.
func (s Session) Authenticated() bool {
	return s.User != nil
}
