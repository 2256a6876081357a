// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "penilaianku_backend/internals/features/assessments/dashboard/route"
	exportRoute "penilaianku_backend/internals/features/assessments/export/route"
	ratingRoute "penilaianku_backend/internals/features/assessments/ratings/route"
	studentRoute "penilaianku_backend/internals/features/assessments/students/route"
	subjectRoute "penilaianku_backend/internals/features/assessments/subjects/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	v := validator.New()
	api := app.Group("/api")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(api, db, v)

	log.Println("[INFO] Mounting Subject routes...")
	subjectRoute.SubjectRoutes(api, db, v)

	log.Println("[INFO] Mounting Rating routes...")
	ratingRoute.RatingRoutes(api, db, v)

	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(api, db)

	log.Println("[INFO] Mounting Export routes...")
	exportRoute.ExportRoutes(api, db)
}
