package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "penilaianku_backend/internals/features/assessments/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)

	dashboard := r.Group("/dashboard")
	dashboard.Get("/overview", ctl.Overview)
}
