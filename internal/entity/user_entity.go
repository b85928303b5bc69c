package entity

import "time"

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleTechnician UserRole = "technician"
)

type User struct {
	Id           int
	Username     string
	PasswordHash *string
	FullName     string
	Email        string
	Phone        string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
