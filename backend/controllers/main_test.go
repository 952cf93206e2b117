package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"listenup/backend/config"
	"listenup/backend/models"
	"listenup/backend/routes"
	"listenup/backend/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	app          *fiber.App
	db           *gorm.DB
	cfg          *config.Config
	adminUser    models.User
	studentUser  models.User
	adminToken   string
	studentToken string
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

func setup() {
	cfg = &config.Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "listenup_test"),
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = utils.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg)

	adminUser = createUser("admin@listenup.test", "Admin123!", models.RoleAdmin)
	studentUser = createUser("student@listenup.test", "Student123!", models.RoleStudent)

	adminToken = tokenFor(adminUser)
	studentToken = tokenFor(studentUser)
}

func teardown() {
	db.Migrator().DropTable(
		&models.VocabularyEntry{},
		&models.Progress{},
		&models.Question{},
		&models.Lesson{},
		&models.User{},
	)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func createUser(email, password, role string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	user := models.User{Email: email, PasswordHash: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func tokenFor(user models.User) string {
	token, err := utils.GenerateJWTToken(user.ID, user.Role, cfg)
	if err != nil {
		panic(err)
	}
	return token
}

func doRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func doRequestList(t *testing.T, method, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func createLesson(t *testing.T, title string, published bool) models.Lesson {
	t.Helper()
	lesson := models.Lesson{
		Title:       title,
		Description: "test lesson",
		Level:       models.LevelBeginner,
		YoutubeURL:  "https://youtu.be/testvideo",
		IsPublished: published,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatal(err)
	}
	return lesson
}

func createQuestion(t *testing.T, lessonID, qType, prompt, options, correct string) models.Question {
	t.Helper()
	question := models.Question{
		LessonID:      lessonID,
		Type:          qType,
		Question:      prompt,
		Options:       options,
		CorrectAnswer: correct,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatal(err)
	}
	return question
}
