package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "penilaianku_backend/internals/features/assessments/subjects/controller"
)

// SubjectRoutes: full CRUD.
func SubjectRoutes(r fiber.Router, db *gorm.DB, v interface{ Struct(any) error }) {
	ctl := subjectController.NewSubjectController(db, v)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.List)
	subjects.Post("/", ctl.Create)
	subjects.Put("/:id", ctl.Update)
	subjects.Delete("/:id", ctl.Delete)
}
