package controllers

import (
	"errors"
	"listenup/backend/config"
	"listenup/backend/middleware"
	"listenup/backend/models"
	"listenup/backend/utils"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrLessonNotPublished is returned when progress is recorded against a
// missing or unpublished lesson.
var ErrLessonNotPublished = errors.New("lesson not found or not published")

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

type ProgressInput struct {
	LessonID string `json:"lessonId" example:"lesson1"`
	Score    *int   `json:"score" minimum:"0" maximum:"100" example:"85"`
}

// ScoreFromCounts converts raw answer counts to a 0..100 percentage.
func ScoreFromCounts(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// CreateOrUpdateProgress upserts the single progress row for the
// (userID, lessonID) pair, stamping the completion time. The lesson must
// exist and be published. A concurrent insert losing the race against the
// unique index falls back to an update.
func (pc *ProgressController) CreateOrUpdateProgress(userID, lessonID string, score int) (*models.Progress, error) {
	var lesson models.Lesson
	if err := pc.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotPublished
		}
		return nil, err
	}
	if !lesson.IsPublished {
		return nil, ErrLessonNotPublished
	}

	var progress models.Progress
	err := pc.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil {
		progress.Score = score
		progress.Completed = time.Now()
		if err := pc.DB.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.Progress{
		UserID:    userID,
		LessonID:  lessonID,
		Score:     score,
		Completed: time.Now(),
	}
	if err := pc.DB.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pc.CreateOrUpdateProgress(userID, lessonID, score)
		}
		return nil, err
	}
	return &progress, nil
}

// CalculateScore derives the percentage score from answer counts and records
// it once the quiz is fully attempted. It returns nil without touching the
// store while questions remain unanswered, or when the lesson has none.
func (pc *ProgressController) CalculateScore(userID, lessonID string, correct, total, answered int) (*models.Progress, error) {
	if total == 0 {
		return nil, nil
	}
	if answered != total {
		return nil, nil
	}
	return pc.CreateOrUpdateProgress(userID, lessonID, ScoreFromCounts(correct, total))
}

// RecordProgress godoc
// @Summary Create or update progress for a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Param progress body ProgressInput true "Lesson and score"
// @Success 200 {object} models.Progress
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [post]
func (pc *ProgressController) RecordProgress(c *fiber.Ctx) error {
	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.LessonID == "" || input.Score == nil {
		return utils.BadRequest(c, "Lesson ID and score are required")
	}
	if *input.Score < 0 || *input.Score > 100 {
		return utils.BadRequest(c, "Score must be between 0 and 100")
	}

	progress, err := pc.CreateOrUpdateProgress(middleware.UserID(c), input.LessonID, *input.Score)
	if err != nil {
		if errors.Is(err, ErrLessonNotPublished) {
			return utils.BadRequest(c, "Lesson not found or not published")
		}
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(progress)
}

// GetMyProgress godoc
// @Summary Get authenticated user's progress
// @Tags progress
// @Produce json
// @Success 200 {array} models.Progress
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/me [get]
func (pc *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	var entries []models.Progress
	err := pc.DB.Preload("Lesson").
		Where("user_id = ?", middleware.UserID(c)).
		Order("completed DESC").
		Find(&entries).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(entries)
}

// GetLessonProgress godoc
// @Summary Get progress records for a lesson
// @Tags progress
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {array} models.Progress
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/lesson/{lessonId} [get]
func (pc *ProgressController) GetLessonProgress(c *fiber.Ctx) error {
	var entries []models.Progress
	err := pc.DB.Where("lesson_id = ?", c.Params("lessonId")).Find(&entries).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(entries)
}
