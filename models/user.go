// user.go - Defines the User model and the role enumeration

package models

// Role determines which endpoints a user may invoke.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`         // Unique user ID (primary key)
	Name     string `json:"name"`                         // Display name
	Email    string `gorm:"unique;not null" json:"email"` // Must be unique across all users
	Password string `gorm:"not null" json:"-"`            // Bcrypt hash, never serialized
	Role     Role   `gorm:"not null" json:"role"`         // ADMIN / TEACHER / STUDENT, immutable after creation
}
