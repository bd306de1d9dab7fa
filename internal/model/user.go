package model

import "github.com/google/uuid"

// Role names stored in users.privilege and carried in the JWT "role" claim.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AvailableRoles lists every role the API recognises, least privileged first.
var AvailableRoles = []string{RoleUser, RoleAdmin, RoleSuperAdmin}

// ElevatedRoles is the fixed allow-list of roles permitted to bypass
// resource-ownership checks on mutating routes.
var ElevatedRoles = []string{RoleAdmin, RoleSuperAdmin}

// IsElevated reports whether a role may act on resources it does not own.
func IsElevated(role string) bool {
	for _, r := range ElevatedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UserIn carries the credentials supplied on register and login.
type UserIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User mirrors a row in the `users` table.  Users are keyed by UUID while
// every other entity uses an auto-increment id.  Password holds the bcrypt
// hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Privilege string    `json:"privilege"`
}
