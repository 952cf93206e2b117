package controllers

import (
	"errors"
	"listenup/backend/config"
	"listenup/backend/models"
	"listenup/backend/utils"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var youtubePattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+$`)

type LessonsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLessonsController(db *gorm.DB, cfg *config.Config) *LessonsController {
	return &LessonsController{DB: db, Cfg: cfg}
}

type LessonInput struct {
	Title       string `json:"title" example:"Introduction to English"`
	Description string `json:"description" example:"Introductory lesson for beginners"`
	Level       string `json:"level" example:"beginner" enums:"beginner,intermediate,advanced"`
	YoutubeURL  string `json:"youtubeUrl" example:"https://www.youtube.com/watch?v=example"`
	IsPublished *bool  `json:"isPublished"`
}

// GetLessons godoc
// @Summary List published lessons
// @Tags lessons
// @Produce json
// @Param level query string false "Filter by level"
// @Success 200 {array} models.Lesson
// @Router /lessons [get]
func (lc *LessonsController) GetLessons(c *fiber.Ctx) error {
	query := lc.DB.Where("is_published = ?", true)

	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var lessons []models.Lesson
	if err := query.Order("created_at").Find(&lessons).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(lessons)
}

// GetLesson godoc
// @Summary Get a published lesson by ID
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} utils.ErrorResponse
// @Router /lessons/{id} [get]
func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	err := lc.DB.Where("id = ? AND is_published = ?", c.Params("id"), true).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(lesson)
}

// CreateLesson godoc
// @Summary Create a lesson (Admin only)
// @Tags lessons
// @Accept json
// @Produce json
// @Param lesson body LessonInput true "Lesson data"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons [post]
func (lc *LessonsController) CreateLesson(c *fiber.Ctx) error {
	var input LessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if !models.ValidLevel(input.Level) {
		return utils.BadRequest(c, "Level must be beginner, intermediate or advanced")
	}
	if !youtubePattern.MatchString(input.YoutubeURL) {
		return utils.BadRequest(c, "URL must be a valid YouTube URL")
	}

	lesson := models.Lesson{
		Title:       input.Title,
		Description: input.Description,
		Level:       input.Level,
		YoutubeURL:  input.YoutubeURL,
	}
	if input.IsPublished != nil {
		lesson.IsPublished = *input.IsPublished
	}

	if err := lc.DB.Create(&lesson).Error; err != nil {
		return utils.InternalServerError(c, "Could not create lesson")
	}

	return utils.Created(c, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson (Admin only)
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param lesson body LessonInput true "Fields to update"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id} [put]
func (lc *LessonsController) UpdateLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	if err := lc.DB.First(&lesson, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input LessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != "" {
		lesson.Title = input.Title
	}
	if input.Description != "" {
		lesson.Description = input.Description
	}
	if input.Level != "" {
		if !models.ValidLevel(input.Level) {
			return utils.BadRequest(c, "Level must be beginner, intermediate or advanced")
		}
		lesson.Level = input.Level
	}
	if input.YoutubeURL != "" {
		if !youtubePattern.MatchString(input.YoutubeURL) {
			return utils.BadRequest(c, "URL must be a valid YouTube URL")
		}
		lesson.YoutubeURL = input.YoutubeURL
	}
	if input.IsPublished != nil {
		lesson.IsPublished = *input.IsPublished
	}

	if err := lc.DB.Save(&lesson).Error; err != nil {
		return utils.InternalServerError(c, "Could not update lesson")
	}

	return c.JSON(lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson (Admin only)
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id} [delete]
func (lc *LessonsController) DeleteLesson(c *fiber.Ctx) error {
	result := lc.DB.Delete(&models.Lesson{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete lesson")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Lesson not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Lesson deleted"})
}
