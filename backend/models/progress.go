package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Progress holds the latest recorded score for a (user, lesson) pair.
// The composite unique index backs the one-row-per-pair invariant against
// concurrent submissions.
type Progress struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_progress_user_lesson" json:"userId"`
	LessonID  string    `gorm:"size:36;not null;uniqueIndex:idx_progress_user_lesson" json:"lessonId"`
	Score     int       `gorm:"not null" json:"score"`
	Completed time.Time `json:"completed"`
	Lesson    *Lesson   `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"lesson,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Progress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
