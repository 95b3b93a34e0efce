// enrollment.go - Join entity recording a student's registration in a course

package models

// Enrollment is keyed by the (student, course) pair; the composite
// primary key is what makes a duplicate enroll fail at the store.
type Enrollment struct {
	StudentID uint `gorm:"primaryKey;autoIncrement:false" json:"studentId"`
	CourseID  uint `gorm:"primaryKey;autoIncrement:false" json:"courseId"`
}
