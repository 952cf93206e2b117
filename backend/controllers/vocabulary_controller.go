package controllers

import (
	"errors"
	"listenup/backend/config"
	"listenup/backend/middleware"
	"listenup/backend/models"
	"listenup/backend/utils"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	quizDefaultLimit = 5
	quizMinLimit     = 1
	quizMaxLimit     = 20
	// Size of the most-recently-created window the quiz samples from.
	quizPoolSize = 50
)

type VocabularyController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewVocabularyController(db *gorm.DB, cfg *config.Config) *VocabularyController {
	return &VocabularyController{DB: db, Cfg: cfg}
}

type VocabularyInput struct {
	Word     string  `json:"word" example:"listen" maxLength:"120"`
	Meaning  string  `json:"meaning" example:"escuchar" maxLength:"300"`
	Example  *string `json:"example" example:"I listen to podcasts every day."`
	LessonID *string `json:"lessonId" example:"lesson1"`
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func clampQuizLimit(limit int) int {
	if limit < quizMinLimit {
		return quizMinLimit
	}
	if limit > quizMaxLimit {
		return quizMaxLimit
	}
	return limit
}

// shuffleEntries performs an unbiased in-place Fisher-Yates shuffle.
func shuffleEntries(entries []models.VocabularyEntry) {
	for i := len(entries) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		entries[i], entries[j] = entries[j], entries[i]
	}
}

// CreateEntry godoc
// @Summary Add a word to the user's vocabulary
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param entry body VocabularyInput true "Vocabulary entry"
// @Success 201 {object} models.VocabularyEntry
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /vocabulary [post]
func (vc *VocabularyController) CreateEntry(c *fiber.Ctx) error {
	var input VocabularyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	word := strings.TrimSpace(input.Word)
	meaning := strings.TrimSpace(input.Meaning)
	if word == "" || meaning == "" {
		return utils.BadRequest(c, "Word and meaning are required")
	}

	entry := models.VocabularyEntry{
		UserID:         middleware.UserID(c),
		Word:           word,
		NormalizedWord: normalizeWord(word),
		Meaning:        meaning,
	}

	if input.Example != nil {
		if example := strings.TrimSpace(*input.Example); example != "" {
			entry.Example = &example
		}
	}

	if input.LessonID != nil && strings.TrimSpace(*input.LessonID) != "" {
		lessonID := strings.TrimSpace(*input.LessonID)
		var lesson models.Lesson
		if err := vc.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.BadRequest(c, "Lesson not found")
			}
			return utils.InternalServerError(c, "Could not query database")
		}
		entry.LessonID = &lessonID
	}

	if err := vc.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "This word already exists in your vocabulary")
		}
		return utils.InternalServerError(c, "Could not create vocabulary entry")
	}

	return utils.Created(c, entry)
}

// ListEntries godoc
// @Summary List the user's vocabulary
// @Tags vocabulary
// @Produce json
// @Param search query string false "Search by word, meaning or example"
// @Param lessonId query string false "Filter by lesson"
// @Success 200 {array} models.VocabularyEntry
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /vocabulary [get]
func (vc *VocabularyController) ListEntries(c *fiber.Ctx) error {
	query := vc.DB.Where("user_id = ?", middleware.UserID(c))

	if lessonID := strings.TrimSpace(c.Query("lessonId")); lessonID != "" {
		query = query.Where("lesson_id = ?", lessonID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("word ILIKE ? OR meaning ILIKE ? OR example ILIKE ?", pattern, pattern, pattern)
	}

	var entries []models.VocabularyEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(entries)
}

// GetQuiz godoc
// @Summary Get a quick self-test from the user's vocabulary
// @Description Samples a random subset of the user's most recent entries.
// @Tags vocabulary
// @Produce json
// @Param limit query int false "Number of items (clamped to 1..20)" default(5)
// @Success 200 {array} models.VocabularyEntry
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /vocabulary/quiz [get]
func (vc *VocabularyController) GetQuiz(c *fiber.Ctx) error {
	limit := quizDefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	limit = clampQuizLimit(limit)

	var entries []models.VocabularyEntry
	err := vc.DB.Where("user_id = ?", middleware.UserID(c)).
		Order("created_at DESC").
		Limit(quizPoolSize).
		Find(&entries).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	shuffleEntries(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return c.JSON(entries)
}

// UpdateEntry godoc
// @Summary Update a vocabulary entry
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body VocabularyInput true "Fields to update"
// @Success 200 {object} models.VocabularyEntry
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /vocabulary/{id} [put]
func (vc *VocabularyController) UpdateEntry(c *fiber.Ctx) error {
	var entry models.VocabularyEntry
	err := vc.DB.Where("id = ? AND user_id = ?", c.Params("id"), middleware.UserID(c)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Vocabulary entry not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input VocabularyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Word != "" {
		word := strings.TrimSpace(input.Word)
		if word == "" {
			return utils.BadRequest(c, "Word cannot be empty")
		}
		entry.Word = word
		entry.NormalizedWord = normalizeWord(word)
	}
	if input.Meaning != "" {
		meaning := strings.TrimSpace(input.Meaning)
		if meaning == "" {
			return utils.BadRequest(c, "Meaning cannot be empty")
		}
		entry.Meaning = meaning
	}
	if input.Example != nil {
		if example := strings.TrimSpace(*input.Example); example != "" {
			entry.Example = &example
		} else {
			entry.Example = nil
		}
	}
	if input.LessonID != nil {
		lessonID := strings.TrimSpace(*input.LessonID)
		if lessonID == "" {
			entry.LessonID = nil
		} else {
			var lesson models.Lesson
			if err := vc.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.BadRequest(c, "Lesson not found")
				}
				return utils.InternalServerError(c, "Could not query database")
			}
			entry.LessonID = &lessonID
		}
	}

	if err := vc.DB.Save(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "This word already exists in your vocabulary")
		}
		return utils.InternalServerError(c, "Could not update vocabulary entry")
	}

	return c.JSON(entry)
}

// DeleteEntry godoc
// @Summary Delete a vocabulary entry
// @Tags vocabulary
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /vocabulary/{id} [delete]
func (vc *VocabularyController) DeleteEntry(c *fiber.Ctx) error {
	result := vc.DB.Where("user_id = ?", middleware.UserID(c)).
		Delete(&models.VocabularyEntry{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete vocabulary entry")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Vocabulary entry not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Vocabulary entry deleted"})
}
