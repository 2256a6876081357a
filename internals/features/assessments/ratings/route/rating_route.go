package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ratingController "penilaianku_backend/internals/features/assessments/ratings/controller"
)

// RatingRoutes: list + upsert (satu-satunya path tulis) + delete by id.
func RatingRoutes(r fiber.Router, db *gorm.DB, v interface{ Struct(any) error }) {
	ctl := ratingController.NewRatingController(db, v)

	ratings := r.Group("/ratings")
	ratings.Get("/", ctl.List)
	ratings.Post("/", ctl.Upsert)
	ratings.Delete("/:id", ctl.Delete)
}
