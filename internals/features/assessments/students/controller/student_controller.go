// file: internals/features/assessments/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "penilaianku_backend/internals/features/assessments/students/dto"
	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	helper "penilaianku_backend/internals/helpers"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type StudentController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewStudentController(db *gorm.DB, v interface{ Struct(any) error }) *StudentController {
	return &StudentController{DB: db, Validator: v}
}

/* =======================================================
   LIST — urut nama (ascending)
   ======================================================= */
func (h *StudentController) List(c *fiber.Ctx) error {
	var list []studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		Order("student_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.JsonList(c, "OK", studentDTO.FromStudentModels(list))
}

/* =======================================================
   CREATE
   ======================================================= */
func (h *StudentController) Create(c *fiber.Ctx) error {
	log.Printf("[STUDENTS][CREATE] ▶️ incoming request")

	var p studentDTO.CreateStudentRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan student")
	}

	return helper.JsonCreated(c, "Berhasil membuat student", studentDTO.FromStudentModel(ent))
}

/* =======================================================
   UPDATE — hanya nama
   ======================================================= */
func (h *StudentController) Update(c *fiber.Ctx) error {
	log.Printf("[STUDENTS][UPDATE] ▶️ incoming request")

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		First(&ent, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	ent.StudentName = p.Name
	ent.StudentUpdatedAt = time.Now()
	if err := h.DB.WithContext(c.Context()).
		Model(&ent).
		Updates(map[string]any{
			"student_name":       ent.StudentName,
			"student_updated_at": ent.StudentUpdatedAt,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui student")
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui student", studentDTO.FromStudentModel(ent))
}

/* =======================================================
   DELETE — cascade: rating milik student ikut terhapus
   (satu transaksi; tidak bergantung state FK di DB)
   ======================================================= */
func (h *StudentController) Delete(c *fiber.Ctx) error {
	log.Printf("[STUDENTS][DELETE] ▶️ incoming request")

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		First(&ent, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("rating_student_id = ?", ent.StudentID).
			Delete(&ratingModel.RatingModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus rating student")
		}
		if err := tx.Delete(&ent).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonDeleted(c, "Berhasil menghapus student", fiber.Map{
		"student_id": ent.StudentID,
	})
}
