package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "penilaianku_backend/internals/features/assessments/export/controller"
)

func ExportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := exportController.NewExportController(db)

	r.Get("/export", ctl.Download)
}
