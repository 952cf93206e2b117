package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "newuser@listenup.test",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, result["accessToken"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "newuser@listenup.test", user["email"])
	assert.Equal(t, "STUDENT", user["role"])
	assert.NotContains(t, user, "passwordHash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	body := map[string]string{
		"email":    "twice@listenup.test",
		"password": "password123",
	}

	resp, _ := doRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := doRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User with this email already exists", result["message"])
}

func TestRegisterRejectsBadInput(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "short@listenup.test",
		"password": "abc",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "student@listenup.test",
		"password": "Student123!",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["accessToken"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "student@listenup.test",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@listenup.test",
		"password": "whatever123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/users/me", studentToken, nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "student@listenup.test", result["email"])
	assert.Equal(t, "STUDENT", result["role"])
}

func TestMeRequiresToken(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/api/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
