package models

import (
	"fmt"
	"strings"
)

// Role identifies the capability set a user operates under.
type Role string

const (
	RoleUser           Role = "USER"
	RoleOrderProcessor Role = "ORDER_PROCESSOR"
	RoleAdmin          Role = "ADMIN"
	RoleSuperAdmin     Role = "SUPER_ADMIN"
)

// ParseRole converts a raw string into a known Role.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, nil
	case RoleOrderProcessor:
		return RoleOrderProcessor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// IsStaff reports whether the role belongs to the back-office side
// (everyone except regular customers).
func (r Role) IsStaff() bool {
	return r == RoleOrderProcessor || r == RoleAdmin || r == RoleSuperAdmin
}

// User represents an account in the system. Accounts are created on signup,
// default to the USER role, and must pass identity verification before they
// can place sourcing orders.
type User struct {
	BaseModel
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"is_verified"`
	// TotalOrders is a denormalized counter maintained on order creation.
	TotalOrders int `json:"total_orders"`
}
