package model

// Role is a capability level. The levels form a total order and every level
// inherits the capabilities of the levels below it, so a single comparison
// answers any "is this allowed" question about a class of action.
type Role int

const (
	// RoleVisitor denotes the absence of a session. It is never stored on a
	// user record and never computed from one.
	RoleVisitor Role = iota
	RoleUser
	RoleModerator
	RoleAdmin
)

// Satisfies reports whether a principal holding r may perform an action that
// requires at least the given role.
func (r Role) Satisfies(required Role) bool {
	return r >= required
}

func (r Role) String() string {
	switch r {
	case RoleVisitor:
		return "visitor"
	case RoleUser:
		return "user"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

// RoleOf computes the role of a stored user record. The admin flag wins over
// the moderator flag; a record with neither is a plain user.
func RoleOf(u *User) Role {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsModerator:
		return RoleModerator
	}
	return RoleUser
}

// Principal is the identity attached to a session: the user id, the display
// login and the role resolved at login time. It never carries the password
// hash.
type Principal struct {
	Id    int
	Login string
	Role  Role
}

// CanModerate and CanAdminister exist for templates, which cannot compare
// roles directly.
func (p Principal) CanModerate() bool {
	return p.Role.Satisfies(RoleModerator)
}

func (p Principal) CanAdminister() bool {
	return p.Role.Satisfies(RoleAdmin)
}
