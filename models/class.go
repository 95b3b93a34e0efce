// class.go - A scheduled weekly meeting of a course

package models

type Class struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CourseID  uint   `gorm:"not null" json:"courseId"`
	Course    Course `gorm:"foreignKey:CourseID" json:"-"`
	TeacherID uint   `gorm:"not null" json:"teacherId"` // Kept alongside course->subject->teacher, not enforced consistent
	Day       string `json:"day"`                       // Monday through Friday
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
}
