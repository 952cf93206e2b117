package controllers

import (
	"errors"
	"listenup/backend/config"
	"listenup/backend/models"
	"listenup/backend/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnswersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnswersController(db *gorm.DB, cfg *config.Config) *AnswersController {
	return &AnswersController{DB: db, Cfg: cfg}
}

type ValidateAnswerInput struct {
	QuestionID string `json:"questionId" example:"question123"`
	Answer     string `json:"answer" example:"am"`
}

// ValidateAnswer godoc
// @Summary Validate an answer
// @Description Compares a submitted answer to the stored one, ignoring letter
// @Description case. The correct answer is returned on every call, wrong
// @Description guesses included, which the frontend relies on for feedback.
// @Tags answers
// @Accept json
// @Produce json
// @Param answer body ValidateAnswerInput true "Answer to validate"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /answers/validate [post]
func (ac *AnswersController) ValidateAnswer(c *fiber.Ctx) error {
	var input ValidateAnswerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.QuestionID == "" || input.Answer == "" {
		return utils.BadRequest(c, "Question ID and answer are required")
	}

	var question models.Question
	if err := ac.DB.First(&question, "id = ?", input.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Question not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Plain case-fold comparison; answers are not trimmed.
	isCorrect := strings.ToLower(question.CorrectAnswer) == strings.ToLower(input.Answer)

	return c.JSON(fiber.Map{
		"isCorrect":     isCorrect,
		"correctAnswer": question.CorrectAnswer,
		"questionId":    question.ID,
	})
}
