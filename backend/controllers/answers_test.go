package controllers_test

import (
	"listenup/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestValidateAnswerCaseInsensitive(t *testing.T) {
	lesson := createLesson(t, "Answer Lesson", true)
	question := createQuestion(t, lesson.ID, models.QuestionMultipleChoice,
		`What is the correct form of "to be" for "I"?`, `["is","am","are"]`, "Am")

	for _, answer := range []string{"am", "AM", "Am", "aM"} {
		resp, result := doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
			"questionId": question.ID,
			"answer":     answer,
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, result["isCorrect"], "answer %q", answer)
		assert.Equal(t, "Am", result["correctAnswer"])
		assert.Equal(t, question.ID, result["questionId"])
	}
}

func TestValidateAnswerWrongStillDisclosesCorrect(t *testing.T) {
	lesson := createLesson(t, "Answer Lesson Wrong", true)
	question := createQuestion(t, lesson.ID, models.QuestionFillBlank,
		"She ____ in a bank.", `["work","works"]`, "works")

	resp, result := doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
		"questionId": question.ID,
		"answer":     "work",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, result["isCorrect"])
	assert.Equal(t, "works", result["correctAnswer"])
}

func TestValidateAnswerDoesNotTrim(t *testing.T) {
	lesson := createLesson(t, "Answer Lesson Trim", true)
	question := createQuestion(t, lesson.ID, models.QuestionOpen,
		"Say hello.", `[]`, "hello")

	resp, result := doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
		"questionId": question.ID,
		"answer":     " hello ",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, result["isCorrect"])
}

func TestValidateAnswerMissingFields(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
		"questionId": "",
		"answer":     "am",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
		"questionId": "question1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValidateAnswerUnknownQuestion(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/answers/validate", studentToken, map[string]string{
		"questionId": "no-such-question",
		"answer":     "am",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Question not found", result["message"])
}

func TestValidateAnswerRequiresAuth(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/answers/validate", "", map[string]string{
		"questionId": "question1",
		"answer":     "am",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
