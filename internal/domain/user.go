package domain

import "github.com/google/uuid"

// Role is the platform role of a user.
type Role string

// Roles relevant to the review workflow.
const (
	RoleReader        Role = "READER"
	RoleReviewer      Role = "REVIEWER"
	RoleBusinessAdmin Role = "BUSINESS_ADMIN"
	RoleSystemAdmin   Role = "SYSTEM_ADMIN"
)

// UserStatus is the account status of a user.
type UserStatus string

// User status constants.
const (
	UserActive          UserStatus = "ACTIVE"
	UserPendingApproval UserStatus = "PENDING_APPROVAL"
	UserInactive        UserStatus = "INACTIVE"
)

// User represents a platform account.
type User struct {
	ID       uuid.UUID  `json:"id" db:"id"`
	FullName string     `json:"full_name" db:"full_name"`
	Email    string     `json:"email" db:"email"`
	Role     Role       `json:"role" db:"role"`
	Status   UserStatus `json:"status" db:"status"`
}

// IsActiveReviewer reports whether the user can take review assignments.
func (u *User) IsActiveReviewer() bool {
	return u.Role == RoleReviewer && u.Status == UserActive
}

// IsBusinessAdmin reports whether the user can assign reviewers and approve results.
func (u *User) IsBusinessAdmin() bool {
	return u.Role == RoleBusinessAdmin && u.Status == UserActive
}

// IsOperator reports whether the user may trigger maintenance runs.
func (u *User) IsOperator() bool {
	return u.Status == UserActive && (u.Role == RoleBusinessAdmin || u.Role == RoleSystemAdmin)
}

// IsValid checks if the role is known.
func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleReviewer, RoleBusinessAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// IsValid checks if the status is known.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserActive, UserPendingApproval, UserInactive:
		return true
	}
	return false
}
