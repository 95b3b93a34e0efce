// main.go - Entry point for the school scheduling backend

package main

import (
	"os"

	"school-backend/auth"
	"school-backend/config"
	"school-backend/database"
	"school-backend/handlers"
	"school-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load() // .env is optional

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if cfg.SeedSampleData {
		if err := database.SeedSampleData(db); err != nil {
			logger.Fatal().Err(err).Msg("sample data seeding failed")
		}
	}

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	h := handlers.New(db, tokens)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Public routes (no authentication required)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)

	// Protected routes; role checks happen inside each handler
	api := r.Group("/api")
	api.Use(middleware.Authenticate(db, tokens))
	{
		api.GET("/teachers", h.ListTeachers)
		api.POST("/teachers", h.AddTeacher)
		api.GET("/teachers/schedule", h.TeacherSchedule)
		api.GET("/students/schedule", h.StudentSchedule)
		api.GET("/courses/available", h.AvailableCourses)
		api.POST("/students/enroll", h.Enroll)
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
