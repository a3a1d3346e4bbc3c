package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	RoleGuest      = "Guest"
	RoleEmployee   = "Employee"
	RoleSuperAdmin = "SuperAdmin"
)

type User struct {
	ID       string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FullName string         `gorm:"size:255" json:"fullName"`
	Email    string         `gorm:"uniqueIndex;size:150" json:"email"`
	Password string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Roles    datatypes.JSON `gorm:"column:roles" json:"roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleList decodes the roles column; a corrupt column reads as no roles.
func (u *User) RoleList() []string {
	var roles []string
	if err := json.Unmarshal(u.Roles, &roles); err != nil {
		return nil
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

func RolesJSON(roles ...string) datatypes.JSON {
	raw, _ := json.Marshal(roles)
	return datatypes.JSON(raw)
}
