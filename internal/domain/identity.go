// Package domain contains the core business entities and interfaces.
package domain

import "strings"

// Role is the client-declared role of a signed-in user.
type Role string

// Known roles.
const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the loosely shaped account record returned by the backend or the
// offline fallback. Every field except DisplayName is optional; DisplayName
// is always filled in by NormalizeUser.
type User struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// Identity is the persisted session snapshot. It is written as a whole on
// login and removed as a whole on logout.
type Identity struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user"`
	Role            Role   `json:"role,omitempty"`
	Token           string `json:"token,omitempty"`
}

// ResolveUserKey returns the string used to scope per-user persisted data:
// id, else email, else username, else "guest".
func ResolveUserKey(u *User) string {
	switch {
	case u == nil:
		return "guest"
	case u.ID != "":
		return u.ID
	case u.Email != "":
		return u.Email
	case u.Username != "":
		return u.Username
	default:
		return "guest"
	}
}

// NormalizeUser returns a copy of u with DisplayName derived from the
// fallback chain: explicit display name, full name, first+last, name,
// username, email local-part, then the literal "Student". A nil input
// yields nil.
func NormalizeUser(u *User) *User {
	if u == nil {
		return nil
	}
	out := *u
	out.DisplayName = displayName(u)
	return &out
}

func displayName(u *User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.FirstName != "" || u.LastName != "" {
		return strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
			return local
		}
		return u.Email
	}
	return "Student"
}
