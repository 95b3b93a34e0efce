// records.go - Response DTOs assembled from joined rows
//
// The API exposes nested shapes (course.subject.name,
// teacher.user.name) that do not match the storage rows, so handlers
// build them explicitly instead of dumping model structs.

package handlers

// classRow is the scan target for the schedule joins.
type classRow struct {
	ID          uint
	Day         string
	StartTime   string
	EndTime     string
	Room        string
	SubjectName string
}

// courseRow is the scan target for the available-courses join.
type courseRow struct {
	ID          uint
	SubjectName string
	TeacherName string
}

type SubjectRef struct {
	Name string `json:"name"`
}

type UserRef struct {
	Name string `json:"name"`
}

type CourseRef struct {
	Subject SubjectRef `json:"subject"`
}

type TeacherRef struct {
	User UserRef `json:"user"`
}

// ClassRecord is one scheduled meeting in a schedule response.
type ClassRecord struct {
	ID          uint      `json:"id"`
	Day         string    `json:"day"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Room        string    `json:"room"`
	SubjectName string    `json:"subjectName"`
	Course      CourseRef `json:"course"`
}

// CourseRecord is one offering in the available-courses response. The
// flat subjectName/teacherName fields are kept alongside the nested
// shape for the original UI.
type CourseRecord struct {
	ID          uint       `json:"id"`
	SubjectName string     `json:"subjectName"`
	TeacherName string     `json:"teacherName"`
	Subject     SubjectRef `json:"subject"`
	Teacher     TeacherRef `json:"teacher"`
}

func newClassRecord(row classRow) ClassRecord {
	return ClassRecord{
		ID:          row.ID,
		Day:         row.Day,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Room:        row.Room,
		SubjectName: row.SubjectName,
		Course:      CourseRef{Subject: SubjectRef{Name: row.SubjectName}},
	}
}

func newCourseRecord(row courseRow) CourseRecord {
	return CourseRecord{
		ID:          row.ID,
		SubjectName: row.SubjectName,
		TeacherName: row.TeacherName,
		Subject:     SubjectRef{Name: row.SubjectName},
		Teacher:     TeacherRef{User: UserRef{Name: row.TeacherName}},
	}
}
