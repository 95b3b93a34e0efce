// subject.go - Subjects and the courses offered for them

package models

// Subject is a named discipline taught by exactly one teacher.
type Subject struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `json:"name"`
	TeacherID uint    `gorm:"not null" json:"teacherId"`
	Teacher   Teacher `gorm:"foreignKey:TeacherID" json:"-"`
}

// Course is an offering of a subject. The schema permits multiple
// courses per subject even though no endpoint distinguishes them yet.
type Course struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SubjectID uint    `gorm:"not null" json:"subjectId"`
	Subject   Subject `gorm:"foreignKey:SubjectID" json:"-"`
}
