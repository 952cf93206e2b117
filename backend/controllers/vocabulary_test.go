package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVocabularyEntry(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "  listen ",
		"meaning": " escuchar ",
		"example": "I listen to podcasts every day.",
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	entry := result["data"].(map[string]interface{})
	assert.Equal(t, "listen", entry["word"])
	assert.Equal(t, "escuchar", entry["meaning"])
	assert.Equal(t, studentUser.ID, entry["userId"])
}

func TestCreateVocabularyDuplicateWord(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "Greet",
		"meaning": "saludar",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same word differing only in case and whitespace.
	resp, result := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "  greet ",
		"meaning": "saludar de nuevo",
	})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "This word already exists in your vocabulary", result["message"])
}

func TestCreateVocabularyMissingFields(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word": "alone",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "   ",
		"meaning": "blank word",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateVocabularyUnknownLesson(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":     "orphan",
		"meaning":  "huérfano",
		"lessonId": "no-such-lesson",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListVocabularySearch(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "butterfly",
		"meaning": "mariposa",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, entries := doRequestList(t, "GET", "/api/vocabulary?search=BUTTER", studentToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, entries, 1)
	assert.Equal(t, "butterfly", entries[0]["word"])
}

func TestVocabularyQuizClampAndOwnership(t *testing.T) {
	// Another user's entries must never leak into the quiz.
	other := createUser("othervocab@listenup.test", "Other123!", "STUDENT")
	otherToken := tokenFor(other)

	for i := 0; i < 3; i++ {
		resp, _ := doRequest(t, "POST", "/api/vocabulary", otherToken, map[string]string{
			"word":    fmt.Sprintf("quizword%d", i),
			"meaning": fmt.Sprintf("meaning %d", i),
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, entries := doRequestList(t, "GET", "/api/vocabulary/quiz?limit=999", otherToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.LessOrEqual(t, len(entries), 20)
	for _, entry := range entries {
		assert.Equal(t, other.ID, entry["userId"])
	}

	resp, entries = doRequestList(t, "GET", "/api/vocabulary/quiz?limit=0", otherToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, entries, 1)

	resp, entries = doRequestList(t, "GET", "/api/vocabulary/quiz?limit=2", otherToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, entries, 2)
}

func TestUpdateVocabularyEntry(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "chair",
		"meaning": "silla",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := result["data"].(map[string]interface{})["id"].(string)

	resp, updated := doRequest(t, "PUT", "/api/vocabulary/"+id, studentToken, map[string]string{
		"meaning": "silla (furniture)",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "silla (furniture)", updated["meaning"])
}

func TestUpdateVocabularyToDuplicateWord(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "table",
		"meaning": "mesa",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "desk",
		"meaning": "escritorio",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := result["data"].(map[string]interface{})["id"].(string)

	resp, _ = doRequest(t, "PUT", "/api/vocabulary/"+id, studentToken, map[string]string{
		"word": "TABLE",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteVocabularyEntryOwnerScoped(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/vocabulary", studentToken, map[string]string{
		"word":    "temporary",
		"meaning": "temporal",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := result["data"].(map[string]interface{})["id"].(string)

	// A different user cannot delete it.
	resp, _ = doRequest(t, "DELETE", "/api/vocabulary/"+id, adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, "DELETE", "/api/vocabulary/"+id, studentToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, "DELETE", "/api/vocabulary/"+id, studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
