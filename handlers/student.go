// student.go - Student schedule, course browsing and enrollment

package handlers

import (
	"errors"
	"net/http"

	"school-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EnrollInput struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// StudentSchedule returns the classes reachable through the calling
// student's enrollments.
func (h *Handler) StudentSchedule(c *gin.Context) {
	user, ok := h.requireRole(c, models.RoleStudent)
	if !ok {
		return
	}

	var student models.Student
	if err := h.db.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student profile not found"})
		return
	}

	var rows []classRow
	err := h.db.Model(&models.Enrollment{}).
		Select("classes.id, classes.day, classes.start_time, classes.end_time, classes.room, subjects.name AS subject_name").
		Joins("JOIN courses ON enrollments.course_id = courses.id").
		Joins("JOIN classes ON classes.course_id = courses.id").
		Joins("JOIN subjects ON courses.subject_id = subjects.id").
		Where("enrollments.student_id = ?", student.ID).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load schedule"})
		return
	}

	schedule := make([]ClassRecord, 0, len(rows))
	for _, row := range rows {
		schedule = append(schedule, newClassRecord(row))
	}
	c.JSON(http.StatusOK, schedule)
}

// AvailableCourses returns every course offering. No filtering or
// pagination; capacity is not tracked.
func (h *Handler) AvailableCourses(c *gin.Context) {
	if _, ok := h.requireRole(c, models.RoleStudent); !ok {
		return
	}

	var rows []courseRow
	err := h.db.Model(&models.Course{}).
		Select("courses.id, subjects.name AS subject_name, users.name AS teacher_name").
		Joins("JOIN subjects ON courses.subject_id = subjects.id").
		Joins("JOIN teachers ON subjects.teacher_id = teachers.id").
		Joins("JOIN users ON teachers.user_id = users.id").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load courses"})
		return
	}

	courses := make([]CourseRecord, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, newCourseRecord(row))
	}
	c.JSON(http.StatusOK, courses)
}

// Enroll registers the calling student in a course. The composite
// primary key on enrollments makes a concurrent duplicate fail at the
// store rather than insert twice.
func (h *Handler) Enroll(c *gin.Context) {
	user, ok := h.requireRole(c, models.RoleStudent)
	if !ok {
		return
	}

	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	if err := h.db.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student profile not found"})
		return
	}

	if err := h.db.First(&models.Course{}, input.CourseID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course not found"})
		return
	}

	enrollment := models.Enrollment{StudentID: student.ID, CourseID: input.CourseID}
	if err := h.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "already enrolled in this course"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not enroll"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrolled successfully"})
}
