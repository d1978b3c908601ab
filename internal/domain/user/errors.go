package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrSchedulerAccessRequired = errors.New("scheduler or admin access required")
	ErrCareStaffAccessRequired = errors.New("caregiver or nurse access required")
	ErrClientAccessRequired    = errors.New("client portal access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrMissingEmployeeIdentity = errors.New("account has no linked employee record")
	ErrMissingClientIdentity   = errors.New("account has no linked client record")
)
