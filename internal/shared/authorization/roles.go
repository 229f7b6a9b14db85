package authorization

type UserRole string

const (
	RolePatient UserRole = "PATIENT"
	RoleStaff   UserRole = "STAFF"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsPatient() bool {
	return r == RolePatient
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanReviewCases reports whether the role may see the full queue and act on
// cases it does not own.
func (r UserRole) CanReviewCases() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RolePatient || r == RoleStaff || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RolePatient
}
