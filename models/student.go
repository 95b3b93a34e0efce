// student.go - Student profile extending a STUDENT user

package models

type Student struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"userId"` // Owning user, one profile per user
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Grade  string `json:"grade"` // Free-form, not validated
}
