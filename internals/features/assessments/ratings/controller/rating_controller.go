// file: internals/features/assessments/ratings/controller/rating_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"penilaianku_backend/internals/configs"
	ratingDTO "penilaianku_backend/internals/features/assessments/ratings/dto"
	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
	helper "penilaianku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RatingController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewRatingController(db *gorm.DB, v interface{ Struct(any) error }) *RatingController {
	return &RatingController{DB: db, Validator: v}
}

func activeScheme() ratingModel.LevelScheme {
	return ratingModel.LevelScheme(configs.LevelScheme)
}

// applyListFilters: query param → kondisi WHERE.
// Nilai kosong/tidak valid berarti "semua" untuk dimensi itu, bukan "tidak ada".
func applyListFilters(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if y, err := strconv.Atoi(strings.TrimSpace(c.Query("year"))); err == nil {
		q = q.Where("rating_year = ?", y)
	}
	if t, err := ratingModel.ParseTerm(c.Query("term")); err == nil && c.Query("term") != "" {
		q = q.Where("rating_term = ?", t)
	}
	if sid, err := uuid.Parse(strings.TrimSpace(c.Query("student_id"))); err == nil {
		q = q.Where("rating_student_id = ?", sid)
	}
	if sid, err := uuid.Parse(strings.TrimSpace(c.Query("subject_id"))); err == nil {
		q = q.Where("rating_subject_id = ?", sid)
	}
	return q
}

/* =======================================================
   LIST — filter opsional year/term/student_id/subject_id,
   join nama student & subject untuk grid
   ======================================================= */
func (h *RatingController) List(c *fiber.Ctx) error {
	q := applyListFilters(c, h.DB.WithContext(c.Context()).Model(&ratingModel.RatingModel{}))

	var list []ratingModel.RatingModel
	if err := q.
		Preload("Student").
		Preload("Subject").
		Order("rating_year DESC").
		Order("rating_term ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rating")
	}

	return helper.JsonList(c, "OK", ratingDTO.FromRatingModels(list, activeScheme()))
}

/* =======================================================
   UPSERT — keyed by (student, subject, year, term).
   Slot sudah ada → update level in place, tidak bikin baris
   baru. Level kosong → hapus rating slot tsb (kebijakan
   eksplisit, lihat DESIGN.md).
   ======================================================= */
func (h *RatingController) Upsert(c *fiber.Ctx) error {
	log.Printf("[RATINGS][UPSERT] ▶️ incoming request")

	var p ratingDTO.UpsertRatingRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Slot kosongkan? Tidak perlu parse level.
	if p.IsClear() {
		return h.clearSlot(c, p)
	}

	scheme := activeScheme()
	level, err := scheme.Parse(p.Level)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Referensi harus hidup: rating tidak pernah dibuat tanpa
	// student & subject yang resolve.
	var cnt int64
	if err := h.DB.WithContext(c.Context()).
		Model(&studentModel.StudentModel{}).
		Where("student_id = ?", p.StudentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	if err := h.DB.WithContext(c.Context()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", p.SubjectID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	ent := p.ToModel(level)
	if err := h.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "rating_student_id"},
				{Name: "rating_subject_id"},
				{Name: "rating_year"},
				{Name: "rating_term"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"rating_level":      ent.RatingLevel,
				"rating_updated_at": time.Now(),
			}),
		}).
		Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rating")
	}

	// Reload supaya id & timestamp konsisten saat path update kena
	_ = h.DB.WithContext(c.Context()).
		Preload("Student").
		Preload("Subject").
		First(&ent,
			"rating_student_id = ? AND rating_subject_id = ? AND rating_year = ? AND rating_term = ?",
			p.StudentID, p.SubjectID, p.Year, p.Term,
		).Error

	return helper.JsonOK(c, "Berhasil menyimpan rating", ratingDTO.FromRatingModel(ent, scheme))
}

// clearSlot: level kosong pada upsert = hapus rating slot tsb.
// Slot yang memang kosong bukan error (idempoten).
func (h *RatingController) clearSlot(c *fiber.Ctx, p ratingDTO.UpsertRatingRequest) error {
	res := h.DB.WithContext(c.Context()).
		Where(
			"rating_student_id = ? AND rating_subject_id = ? AND rating_year = ? AND rating_term = ?",
			p.StudentID, p.SubjectID, p.Year, p.Term,
		).
		Delete(&ratingModel.RatingModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rating")
	}

	msg := "Slot rating sudah kosong"
	if res.RowsAffected > 0 {
		msg = "Rating slot dihapus"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{
		"student_id": p.StudentID,
		"subject_id": p.SubjectID,
		"year":       p.Year,
		"term":       p.Term,
	})
}

/* =======================================================
   DELETE — by id
   ======================================================= */
func (h *RatingController) Delete(c *fiber.Ctx) error {
	log.Printf("[RATINGS][DELETE] ▶️ incoming request")

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent ratingModel.RatingModel
	if err := h.DB.WithContext(c.Context()).
		First(&ent, "rating_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rating tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := h.DB.WithContext(c.Context()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rating")
	}

	return helper.JsonDeleted(c, "Berhasil menghapus rating", fiber.Map{
		"rating_id": ent.RatingID,
	})
}
