package domain

import (
	"strings"
	"time"
)

// Membership links a user to the one workspace they belong to.
// UserID is unique across the whole store.
type Membership struct {
	WorkspaceID string
	UserID      string
	Role        Role
	CreatedAt   time.Time
}

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// DefaultInviteRole is granted when an invitation does not name a role.
const DefaultInviteRole = RoleMember

// ParseRole normalizes s to a known role. An empty string yields DefaultInviteRole.
func ParseRole(s string) (Role, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultInviteRole, true
	}
	switch r := Role(s); r {
	case RoleOwner, RoleAdmin, RoleMember:
		return r, true
	}
	return "", false
}

// Grantable reports whether the role can be granted through an invitation. There is exactly one
// OWNER per workspace, created with the workspace itself.
func (r Role) Grantable() bool {
	return r == RoleAdmin || r == RoleMember
}
