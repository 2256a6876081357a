// file: internals/features/assessments/export/controller/export_controller.go
package controller

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"penilaianku_backend/internals/configs"
	exportService "penilaianku_backend/internals/features/assessments/export/service"
	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
	helper "penilaianku_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

/* =======================================================
   DOWNLOAD — GET /export?year=&term=&subject_id=
   Rating (join nama) → workbook .xlsx → attachment.
   List kosong → 400 "tidak ada data", BUKAN workbook kosong.
   ======================================================= */
func (h *ExportController) Download(c *fiber.Ctx) error {
	log.Printf("[EXPORT][DOWNLOAD] ▶️ incoming request")

	q := h.DB.WithContext(c.Context()).Model(&ratingModel.RatingModel{})
	if y, err := strconv.Atoi(strings.TrimSpace(c.Query("year"))); err == nil {
		q = q.Where("rating_year = ?", y)
	}
	if t, err := ratingModel.ParseTerm(c.Query("term")); err == nil && c.Query("term") != "" {
		q = q.Where("rating_term = ?", t)
	}
	if sid, err := uuid.Parse(strings.TrimSpace(c.Query("subject_id"))); err == nil {
		q = q.Where("rating_subject_id = ?", sid)
	}

	var list []ratingModel.RatingModel
	if err := q.
		Preload("Student").
		Preload("Subject").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rating")
	}

	if len(list) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data untuk diexport")
	}

	scheme := ratingModel.LevelScheme(configs.LevelScheme)
	rows := make([]exportService.ExportRow, 0, len(list))
	for _, r := range list {
		level, err := scheme.Parse(r.RatingLevel)
		if err != nil {
			// data lama dengan skema berbeda: drop, jangan gagalkan export
			log.Printf("[EXPORT][DOWNLOAD] ⚠️ level %q dilewati: %v", r.RatingLevel, err)
			continue
		}
		row := exportService.ExportRow{
			Year:  r.RatingYear,
			Term:  r.RatingTerm,
			Level: level,
		}
		if r.Student != nil {
			row.StudentName = r.Student.StudentName
		}
		if r.Subject != nil {
			row.SubjectName = r.Subject.SubjectName
		}
		rows = append(rows, row)
	}

	buf, err := exportService.BuildWorkbook(rows)
	if err != nil {
		log.Printf("[EXPORT][DOWNLOAD] ❌ build workbook: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}

	filename := fmt.Sprintf("ratings_export_%d.xlsx", time.Now().UnixMilli())
	c.Set(fiber.HeaderContentType, exportService.ExcelContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
