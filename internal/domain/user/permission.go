package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Visit Management
	PermissionVisitViewOwn Permission = "visit.view_own"
	PermissionVisitViewAll Permission = "visit.view_all"
	PermissionVisitManage  Permission = "visit.manage"
	PermissionVisitClock   Permission = "visit.clock"

	// Documentation
	PermissionDocumentationWrite Permission = "documentation.write"

	// Assignment Management
	PermissionAssignmentViewAll Permission = "assignment.view_all"
	PermissionAssignmentManage  Permission = "assignment.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionVisitViewOwn,
		PermissionVisitViewAll,
		PermissionVisitManage,
		PermissionAssignmentViewAll,
		PermissionAssignmentManage,
		PermissionUserManage,
	},
	RoleScheduler: {
		PermissionViewOwnProfile,
		PermissionVisitViewAll,
		PermissionVisitManage,
		PermissionAssignmentViewAll,
		PermissionAssignmentManage,
	},
	RoleCaregiver: {
		PermissionViewOwnProfile,
		PermissionVisitViewOwn,
		PermissionVisitClock,
		PermissionDocumentationWrite,
	},
	RoleNurse: {
		PermissionViewOwnProfile,
		PermissionVisitViewOwn,
		PermissionVisitClock,
		PermissionDocumentationWrite,
	},
	RoleClient: {
		PermissionViewOwnProfile,
		PermissionVisitViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
