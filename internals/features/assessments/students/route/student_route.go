package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "penilaianku_backend/internals/features/assessments/students/controller"
)

// StudentRoutes: full CRUD.
// Contoh mount: StudentRoutes(app.Group("/api"), db, v)
func StudentRoutes(r fiber.Router, db *gorm.DB, v interface{ Struct(any) error }) {
	ctl := studentController.NewStudentController(db, v)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
