package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabularyEntry is a user-owned word/meaning record. NormalizedWord
// (lowercased, trimmed) deduplicates entries per user.
type VocabularyEntry struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:36;not null;uniqueIndex:idx_vocabulary_user_word" json:"userId"`
	LessonID       *string   `gorm:"size:36" json:"lessonId"`
	Word           string    `gorm:"not null" json:"word"`
	NormalizedWord string    `gorm:"not null;uniqueIndex:idx_vocabulary_user_word" json:"-"`
	Meaning        string    `gorm:"not null" json:"meaning"`
	Example        *string   `json:"example"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (v *VocabularyEntry) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
