// teacher.go - Teacher profile extending a TEACHER user

package models

type Teacher struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"` // Owning user, one profile per user
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
