// database.go - Handles database connection, migration and seeding

package database

import (
	"errors"

	"school-backend/config"
	"school-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database, runs migrations and seeds the
// default administrator account. TranslateError makes unique-constraint
// violations surface as gorm.ErrDuplicatedKey so handlers can map them
// to API errors instead of leaking raw sqlite messages.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Subject{},
		&models.Course{},
		&models.Class{},
		&models.Enrollment{},
	); err != nil {
		return nil, err
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// seedAdmin creates the default admin user on first run. Startup stays
// idempotent: nothing happens when the account already exists.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedSampleData populates demo subjects, one course per subject and one
// Monday class per course, assigned to the first teacher on record. It
// is a no-op when no teacher exists or subjects were already seeded.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var teacher models.Teacher
	if err := db.First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	subjects := []string{"Mathematics", "Physics", "Chemistry", "Biology", "English"}
	times := []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}
	rooms := []string{"101", "102", "103", "104", "105"}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, name := range subjects {
			subject := models.Subject{Name: name, TeacherID: teacher.ID}
			if err := tx.Create(&subject).Error; err != nil {
				return err
			}
			course := models.Course{SubjectID: subject.ID}
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
			class := models.Class{
				CourseID:  course.ID,
				TeacherID: teacher.ID,
				Day:       "Monday",
				StartTime: times[i],
				EndTime:   times[i+1],
				Room:      rooms[i],
			}
			if err := tx.Create(&class).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
