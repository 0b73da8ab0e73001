package identity

// Role is the closed set of actor roles. Every authorization decision in
// the workflow goes through these helpers rather than ad hoc string checks.
type Role string

const (
	RoleWriter   Role = "writer"
	RoleVocalist Role = "vocalist"
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "sub-admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleWriter, RoleVocalist, RoleAdmin, RoleSubAdmin:
		return Role(s), true
	}
	return "", false
}

// CanModerate reports whether the role carries admin authority over
// submission status. Admin and sub-admin are equivalent here; finer
// sub-admin permission sets live outside the workflow core.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleSubAdmin
}

func (r Role) IsWriter() bool   { return r == RoleWriter }
func (r Role) IsVocalist() bool { return r == RoleVocalist }
