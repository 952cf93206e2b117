// Package seed fills the database with demo content for local development.
package seed

import (
	"listenup/backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run creates demo users, lessons, questions and vocabulary. It is
// idempotent: existing rows are left untouched.
func Run(db *gorm.DB) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	studentHash, err := bcrypt.GenerateFromPassword([]byte("Student123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@listenup.com",
		PasswordHash: string(adminHash),
		Role:         models.RoleAdmin,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	student := models.User{
		Email:        "student@listenup.com",
		PasswordHash: string(studentHash),
		Role:         models.RoleStudent,
	}
	if err := db.Where("email = ?", student.Email).FirstOrCreate(&student).Error; err != nil {
		return err
	}

	lessons := []models.Lesson{
		{
			ID:          "lesson1",
			Title:       "Introduction to English",
			Description: "Introductory lesson for beginners",
			Level:       models.LevelBeginner,
			YoutubeURL:  "https://youtu.be/ql9-75jhQxE",
			IsPublished: true,
		},
		{
			ID:          "lesson2",
			Title:       "Greetings and Introductions",
			Description: "Learn how to greet and introduce yourself in English",
			Level:       models.LevelBeginner,
			YoutubeURL:  "https://youtu.be/V7Dvcy0gq-U",
			IsPublished: true,
		},
		{
			ID:          "lesson3",
			Title:       "Present Tense Verbs",
			Description: "Using the present simple tense in everyday speech",
			Level:       models.LevelBeginner,
			YoutubeURL:  "https://youtu.be/8Yml9ImDERM",
			IsPublished: true,
		},
	}
	for i := range lessons {
		if err := db.Where("id = ?", lessons[i].ID).FirstOrCreate(&lessons[i]).Error; err != nil {
			return err
		}
	}

	questions := []models.Question{
		{
			ID:            "question1",
			LessonID:      "lesson1",
			Type:          models.QuestionMultipleChoice,
			Question:      `What is the correct form of "to be" for "I"?`,
			Options:       `["is","am","are","be"]`,
			CorrectAnswer: "am",
		},
		{
			ID:            "question2",
			LessonID:      "lesson1",
			Type:          models.QuestionTrueFalse,
			Question:      `"Hello" is a common English greeting.`,
			Options:       `["True","False"]`,
			CorrectAnswer: "True",
		},
		{
			ID:            "question3",
			LessonID:      "lesson2",
			Type:          models.QuestionFillBlank,
			Question:      "She ____ in a bank.",
			Options:       `["work","works","working"]`,
			CorrectAnswer: "works",
		},
		{
			ID:            "question4",
			LessonID:      "lesson2",
			Type:          models.QuestionOpen,
			Question:      "Introduce yourself in one sentence.",
			Options:       `[]`,
			CorrectAnswer: "My name is",
		},
	}
	for i := range questions {
		if err := db.Where("id = ?", questions[i].ID).FirstOrCreate(&questions[i]).Error; err != nil {
			return err
		}
	}

	example := "I listen to podcasts every day."
	lessonRef := "lesson1"
	words := []models.VocabularyEntry{
		{
			UserID:         student.ID,
			LessonID:       &lessonRef,
			Word:           "listen",
			NormalizedWord: "listen",
			Meaning:        "escuchar",
			Example:        &example,
		},
		{
			UserID:         student.ID,
			Word:           "greet",
			NormalizedWord: "greet",
			Meaning:        "saludar",
		},
	}
	for i := range words {
		err := db.Where("user_id = ? AND normalized_word = ?", words[i].UserID, words[i].NormalizedWord).
			FirstOrCreate(&words[i]).Error
		if err != nil {
			return err
		}
	}

	return nil
}
