// teacher.go - Admin teacher provisioning and teacher schedules

package handlers

import (
	"errors"
	"net/http"

	"school-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddTeacherInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TeacherInfo is one row of the admin teacher listing.
type TeacherInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddTeacher creates a TEACHER user plus its teacher profile, in one
// transaction like Register.
func (h *Handler) AddTeacher(c *gin.Context) {
	if _, ok := h.requireRole(c, models.RoleAdmin); !ok {
		return
	}

	var input AddTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := h.tokens.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add teacher"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: hash,
			Role:     models.RoleTeacher,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Teacher{UserID: user.ID}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not add teacher"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Teacher added successfully"})
}

// ListTeachers returns every provisioned teacher. No pagination.
func (h *Handler) ListTeachers(c *gin.Context) {
	if _, ok := h.requireRole(c, models.RoleAdmin); !ok {
		return
	}

	teachers := []TeacherInfo{}
	err := h.db.Model(&models.User{}).
		Select("users.id, users.name, users.email").
		Joins("JOIN teachers ON teachers.user_id = users.id").
		Where("users.role = ?", models.RoleTeacher).
		Scan(&teachers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list teachers"})
		return
	}

	c.JSON(http.StatusOK, teachers)
}

// TeacherSchedule returns the classes taught by the calling teacher.
func (h *Handler) TeacherSchedule(c *gin.Context) {
	user, ok := h.requireRole(c, models.RoleTeacher)
	if !ok {
		return
	}

	var teacher models.Teacher
	if err := h.db.Where("user_id = ?", user.ID).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "teacher profile not found"})
		return
	}

	var rows []classRow
	err := h.db.Model(&models.Class{}).
		Select("classes.id, classes.day, classes.start_time, classes.end_time, classes.room, subjects.name AS subject_name").
		Joins("JOIN courses ON classes.course_id = courses.id").
		Joins("JOIN subjects ON courses.subject_id = subjects.id").
		Where("classes.teacher_id = ?", teacher.ID).
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
