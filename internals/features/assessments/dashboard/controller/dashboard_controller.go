// file: internals/features/assessments/dashboard/controller/dashboard_controller.go
package controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"penilaianku_backend/internals/configs"
	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
	aggregation "penilaianku_backend/internals/features/assessments/ratings/service"
	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
	helper "penilaianku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* =======================================================
   OVERVIEW — GET /dashboard/overview?year=&term=
   Kartu total + distribusi level + rekap per subject +
   daftar tahun. Komposisi fetch + aggregation engine.
   ======================================================= */
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	period := aggregation.Period{}
	if y, err := strconv.Atoi(strings.TrimSpace(c.Query("year"))); err == nil {
		period.Year = &y
	}
	if t, err := ratingModel.ParseTerm(c.Query("term")); err == nil && c.Query("term") != "" {
		period.Term = t
	}

	var students []studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}

	var subjects []subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		Order("subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	var ratings []ratingModel.RatingModel
	if err := h.DB.WithContext(c.Context()).
		Find(&ratings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rating")
	}

	scheme := ratingModel.LevelScheme(configs.LevelScheme)
	distribution := aggregation.BuildLevelDistribution(ratings, scheme, period)
	summary := aggregation.BuildSubjectSummary(ratings, subjects, scheme, period)
	totals := aggregation.TotalsOverview(students, subjects, ratings)

	// Kewajiban pemanggil CollectYears: tahun yang sedang dipilih
	// disisipkan kalau belum ada di data, supaya dropdown tetap konsisten.
	years := aggregation.CollectYears(ratings)
	if period.Year != nil && !containsYear(years, *period.Year) {
		years = append(years, *period.Year)
		sort.Ints(years)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"totals":          totals,
		"levels":          scheme.KnownKeys(),
		"distribution":    distribution.Counts,
		"filtered_count":  len(distribution.Filtered),
		"subject_summary": summary,
		"years":           years,
	})
}

func containsYear(years []int, y int) bool {
	for _, v := range years {
		if v == y {
			return true
		}
	}
	return false
}
