package controllers

import (
	"encoding/json"
	"errors"
	"listenup/backend/config"
	"listenup/backend/models"
	"listenup/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuestionsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuestionsController(db *gorm.DB, cfg *config.Config) *QuestionsController {
	return &QuestionsController{DB: db, Cfg: cfg}
}

type QuestionInput struct {
	LessonID                 string   `json:"lessonId" example:"lesson1"`
	Type                     string   `json:"type" enums:"MULTIPLE_CHOICE,TRUE_FALSE,FILL_BLANK,OPEN"`
	Question                 string   `json:"question" example:"What is the correct form of \"to be\" for \"I\"?"`
	Options                  []string `json:"options"`
	OptionsForMultipleChoice []string `json:"optionsForMultipleChoice"`
	OptionsForFillBlank      []string `json:"optionsForFillBlank"`
	CorrectAnswer            string   `json:"correctAnswer" example:"am"`
}

// resolveOptions picks the option list matching the question's type tag.
// MULTIPLE_CHOICE and TRUE_FALSE read optionsForMultipleChoice, FILL_BLANK
// reads optionsForFillBlank, and the generic options value passes through
// when no variant is supplied. OPEN questions carry no meaningful options.
func resolveOptions(input QuestionInput) []string {
	switch input.Type {
	case models.QuestionMultipleChoice, models.QuestionTrueFalse:
		if input.OptionsForMultipleChoice != nil {
			return input.OptionsForMultipleChoice
		}
	case models.QuestionFillBlank:
		if input.OptionsForFillBlank != nil {
			return input.OptionsForFillBlank
		}
	}
	return input.Options
}

func encodeOptions(options []string) string {
	if options == nil {
		options = []string{}
	}
	encoded, _ := json.Marshal(options)
	return string(encoded)
}

func decodeOptions(raw string) []string {
	var options []string
	if raw != "" {
		json.Unmarshal([]byte(raw), &options)
	}
	if options == nil {
		options = []string{}
	}
	return options
}

// GetQuestionsByLesson godoc
// @Summary List questions for a lesson
// @Description Returns the lesson's questions without their correct answers
// @Tags questions
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {array} map[string]interface{}
// @Router /questions/lesson/{lessonId} [get]
func (qc *QuestionsController) GetQuestionsByLesson(c *fiber.Ctx) error {
	var questions []models.Question
	if err := qc.DB.Where("lesson_id = ?", c.Params("lessonId")).Order("created_at").Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// The correct answer never leaves the server on read endpoints.
	result := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		result = append(result, fiber.Map{
			"id":       q.ID,
			"type":     q.Type,
			"question": q.Question,
			"options":  decodeOptions(q.Options),
		})
	}

	return c.JSON(result)
}

// CreateQuestion godoc
// @Summary Create a question (Admin only)
// @Tags questions
// @Accept json
// @Produce json
// @Param question body QuestionInput true "Question data"
// @Success 201 {object} models.Question
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions [post]
func (qc *QuestionsController) CreateQuestion(c *fiber.Ctx) error {
	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.LessonID == "" || input.Question == "" || input.CorrectAnswer == "" {
		return utils.BadRequest(c, "Lesson ID, question and correct answer are required")
	}
	if !models.ValidQuestionType(input.Type) {
		return utils.BadRequest(c, "Invalid question type")
	}

	var lesson models.Lesson
	if err := qc.DB.First(&lesson, "id = ?", input.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	question := models.Question{
		LessonID:      input.LessonID,
		Type:          input.Type,
		Question:      input.Question,
		Options:       encodeOptions(resolveOptions(input)),
		CorrectAnswer: input.CorrectAnswer,
	}
	if err := qc.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not create question")
	}

	return utils.Created(c, question)
}

// UpdateQuestion godoc
// @Summary Update a question (Admin only)
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body QuestionInput true "Fields to update"
// @Success 200 {object} models.Question
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions/{id} [put]
func (qc *QuestionsController) UpdateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := qc.DB.First(&question, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Question not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Type != "" {
		if !models.ValidQuestionType(input.Type) {
			return utils.BadRequest(c, "Invalid question type")
		}
		question.Type = input.Type
	}
	if input.Question != "" {
		question.Question = input.Question
	}
	if input.CorrectAnswer != "" {
		question.CorrectAnswer = input.CorrectAnswer
	}

	input.Type = question.Type
	if resolved := resolveOptions(input); resolved != nil {
		question.Options = encodeOptions(resolved)
	}

	if err := qc.DB.Save(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not update question")
	}

	return c.JSON(question)
}

// DeleteQuestion godoc
// @Summary Delete a question (Admin only)
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /questions/{id} [delete]
func (qc *QuestionsController) DeleteQuestion(c *fiber.Ctx) error {
	result := qc.DB.Delete(&models.Question{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete question")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Question not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Question deleted"})
}
