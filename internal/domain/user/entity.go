package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"     // Agency administrator - full access
	RoleScheduler Role = "scheduler" // Scheduling staff - manages visits and assignments
	RoleCaregiver Role = "caregiver" // Field caregiver - clocks visits, documents care
	RoleNurse     Role = "nurse"     // Skilled nursing staff - same portal surface as caregivers
	RoleClient    Role = "client"    // Client portal account - read access to own visits
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
	ClientID   *string
}

// IsAdmin checks if user is an agency administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsScheduler checks if user can manage visits and assignments
func (u *User) IsScheduler() bool {
	return u.Role == RoleScheduler || u.Role == RoleAdmin
}

// IsCareStaff checks if user clocks visits and writes documentation
func (u *User) IsCareStaff() bool {
	return u.Role == RoleCaregiver || u.Role == RoleNurse
}

// IsClient checks if user is a client portal account
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsCareStaffRole reports whether role belongs to field care staff.
func IsCareStaffRole(role Role) bool {
	return role == RoleCaregiver || role == RoleNurse
}

// IsSchedulingRole reports whether role may create and manage visits.
func IsSchedulingRole(role Role) bool {
	return role == RoleScheduler || role == RoleAdmin
}
