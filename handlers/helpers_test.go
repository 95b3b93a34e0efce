// helpers_test.go - Shared setup for handler tests
//
// Each test gets a throwaway sqlite file and a router wired exactly
// like main.go. Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"school-backend/auth"
	"school-backend/config"
	"school-backend/database"
	"school-backend/middleware"
	"school-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.Service
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")
	cfg.BcryptCost = bcrypt.MinCost // keep hashing fast in tests

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	h := New(db, tokens)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	api := r.Group("/api")
	api.Use(middleware.Authenticate(db, tokens))
	api.GET("/teachers", h.ListTeachers)
	api.POST("/teachers", h.AddTeacher)
	api.GET("/teachers/schedule", h.TeacherSchedule)
	api.GET("/students/schedule", h.StudentSchedule)
	api.GET("/courses/available", h.AvailableCourses)
	api.POST("/students/enroll", h.Enroll)

	return &testEnv{router: r, db: db, tokens: tokens, cfg: cfg}
}

// request performs a JSON request against the test router, optionally
// with a bearer token.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// adminToken signs a token for the seeded administrator.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	var admin models.User
	require.NoError(t, e.db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	token, err := e.tokens.IssueToken(admin.ID)
	require.NoError(t, err)
	return token
}

// createTeacher inserts a teacher user plus profile and returns the
// profile and a signed token.
func (e *testEnv) createTeacher(t *testing.T, name, email string) (models.Teacher, string) {
	t.Helper()
	hash, err := e.tokens.HashPassword("teacherpass")
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: hash, Role: models.RoleTeacher}
	require.NoError(t, e.db.Create(&user).Error)
	teacher := models.Teacher{UserID: user.ID}
	require.NoError(t, e.db.Create(&teacher).Error)
	token, err := e.tokens.IssueToken(user.ID)
	require.NoError(t, err)
	return teacher, token
}

// registerStudent goes through the real register+login flow and returns
// the student's token.
func (e *testEnv) registerStudent(t *testing.T, name, email, grade string) string {
	t.Helper()
	w := e.request(t, "POST", "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "studentpass", "grade": grade,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.request(t, "POST", "/api/auth/login", "", gin.H{
		"email": email, "password": "studentpass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	e.decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) seedCourse(t *testing.T, teacher models.Teacher, subjectName string) models.Course {
	t.Helper()
	subject := models.Subject{Name: subjectName, TeacherID: teacher.ID}
	require.NoError(t, e.db.Create(&subject).Error)
	course := models.Course{SubjectID: subject.ID}
	require.NoError(t, e.db.Create(&course).Error)
	return course
}

func (e *testEnv) seedClass(t *testing.T, course models.Course, teacher models.Teacher, day, start, end, room string) models.Class {
	t.Helper()
	class := models.Class{
		CourseID:  course.ID,
		TeacherID: teacher.ID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Room:      room,
	}
	require.NoError(t, e.db.Create(&class).Error)
	return class
}
