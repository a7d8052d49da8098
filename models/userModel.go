package models

import (
	"strings"
	"time"
)

// UserRole is the closed set of staff roles.
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleDentist      UserRole = "dentist"
	RoleAssistant    UserRole = "assistant"
	RoleReceptionist UserRole = "receptionist"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDentist, RoleAssistant, RoleReceptionist:
		return true
	}
	return false
}

// User represents a staff account in the system
type User struct {
	ID           string     `gorm:"primaryKey;column:id" json:"id"`
	Username     string     `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email        string     `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	PasswordHash string     `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role         UserRole   `gorm:"size:50;not null;column:role" json:"role"`
	FirstName    string     `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string     `gorm:"column:last_name;not null" json:"last_name"`
	Phone        *string    `gorm:"column:phone" json:"phone,omitempty"`
	IsActive     bool       `gorm:"column:is_active" json:"is_active"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// rolePermissions is the static role to permission-list table. A bare "*"
// grants everything; "domain.*" grants every permission under that domain.
var rolePermissions = map[UserRole][]string{
	RoleAdmin: {"*"},
	RoleDentist: {
		"patients.*",
		"appointments.*",
		"treatments.*",
		"treatment_plans.*",
		"financial.view",
		"reports.*",
	},
	RoleAssistant: {
		"patients.view",
		"appointments.*",
		"treatments.create",
		"treatments.view",
		"inventory.*",
	},
	RoleReceptionist: {
		"patients.create",
		"patients.view",
		"patients.update_contact",
		"appointments.*",
		"financial.*",
		"inventory.view",
	},
}

// HasPermission reports whether the role grants the named permission,
// either exactly, via the global wildcard, or via a domain wildcard.
func HasPermission(role UserRole, permission string) bool {
	permissions := rolePermissions[role]

	for _, p := range permissions {
		if p == "*" || p == permission {
			return true
		}
	}

	// A bare domain name like "patients" counts as its own domain, so a
	// "patients.*" grant covers it.
	domain, _, _ := strings.Cut(permission, ".")
	for _, p := range permissions {
		if p == domain+".*" {
			return true
		}
	}
	return false
}
