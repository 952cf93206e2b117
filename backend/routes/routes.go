package routes

import (
	"listenup/backend/config"
	"listenup/backend/controllers"
	"listenup/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authRequired := middleware.AuthMiddleware(cfg)
	adminRequired := middleware.AdminMiddleware(db, cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/users/me", authRequired, authController.Me)

	// Lessons: public read of published content, admin-only mutation
	lessonsController := controllers.NewLessonsController(db, cfg)
	lessons := app.Group("/api/lessons")
	lessons.Get("/", lessonsController.GetLessons)
	lessons.Get("/:id", lessonsController.GetLesson)
	lessons.Post("/", authRequired, adminRequired, lessonsController.CreateLesson)
	lessons.Put("/:id", authRequired, adminRequired, lessonsController.UpdateLesson)
	lessons.Delete("/:id", authRequired, adminRequired, lessonsController.DeleteLesson)

	// Questions
	questionsController := controllers.NewQuestionsController(db, cfg)
	questions := app.Group("/api/questions")
	questions.Get("/lesson/:lessonId", questionsController.GetQuestionsByLesson)
	questions.Post("/", authRequired, adminRequired, questionsController.CreateQuestion)
	questions.Put("/:id", authRequired, adminRequired, questionsController.UpdateQuestion)
	questions.Delete("/:id", authRequired, adminRequired, questionsController.DeleteQuestion)

	// Answer validation
	answersController := controllers.NewAnswersController(db, cfg)
	app.Post("/api/answers/validate", authRequired, answersController.ValidateAnswer)

	// Progress
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/api/progress", authRequired)
	progress.Post("/", progressController.RecordProgress)
	progress.Get("/me", progressController.GetMyProgress)
	progress.Get("/lesson/:lessonId", progressController.GetLessonProgress)

	// Vocabulary
	vocabularyController := controllers.NewVocabularyController(db, cfg)
	vocabulary := app.Group("/api/vocabulary", authRequired)
	vocabulary.Post("/", vocabularyController.CreateEntry)
	vocabulary.Get("/", vocabularyController.ListEntries)
	vocabulary.Get("/quiz", vocabularyController.GetQuiz)
	vocabulary.Put("/:id", vocabularyController.UpdateEntry)
	vocabulary.Delete("/:id", vocabularyController.DeleteEntry)
}
