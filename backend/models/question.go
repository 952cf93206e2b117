package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTrueFalse      = "TRUE_FALSE"
	QuestionFillBlank      = "FILL_BLANK"
	QuestionOpen           = "OPEN"
)

type Question struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	LessonID string `gorm:"size:36;not null;index" json:"lessonId"`
	Type     string `gorm:"not null" json:"type"`
	Question string `gorm:"not null" json:"question"`
	Options  string `json:"-"` // JSON array of options
	// Never serialized on read endpoints; disclosed only by the validate flow.
	CorrectAnswer string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

func ValidQuestionType(t string) bool {
	switch t {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionFillBlank, QuestionOpen:
		return true
	}
	return false
}
