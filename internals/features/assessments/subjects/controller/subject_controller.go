// file: internals/features/assessments/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "penilaianku_backend/internals/features/assessments/subjects/dto"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
	helper "penilaianku_backend/internals/helpers"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SubjectController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewSubjectController(db *gorm.DB, v interface{ Struct(any) error }) *SubjectController {
	return &SubjectController{DB: db, Validator: v}
}

// isDuplicateNameErr: deteksi pelanggaran unique index nama subject
func isDuplicateNameErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "uq_subjects_name") ||
		strings.Contains(msg, "duplicate key")
}

/* =======================================================
   LIST — urut nama (ascending)
   ======================================================= */
func (h *SubjectController) List(c *fiber.Ctx) error {
	var list []subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		Order("subject_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	return helper.JsonList(c, "OK", subjectDTO.FromSubjectModels(list))
}

/* =======================================================
   CREATE — nama unik, duplikat → 409
   ======================================================= */
func (h *SubjectController) Create(c *fiber.Ctx) error {
	log.Printf("[SUBJECTS][CREATE] ▶️ incoming request")

	var p subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := p.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(&ent).Error; err != nil {
		if isDuplicateNameErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama subject sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}

	return helper.JsonCreated(c, "Berhasil membuat subject", subjectDTO.FromSubjectModel(ent))
}

/* =======================================================
   UPDATE — nama & desc, nama tetap wajib unik
   ======================================================= */
func (h *SubjectController) Update(c *fiber.Ctx) error {
	log.Printf("[SUBJECTS][UPDATE] ▶️ incoming request")

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		First(&ent, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	ent.SubjectName = p.Name
	ent.SubjectDesc = p.Desc
	ent.SubjectUpdatedAt = time.Now()
	if err := h.DB.WithContext(c.Context()).
		Model(&ent).
		Updates(map[string]any{
			"subject_name":       ent.SubjectName,
			"subject_desc":       ent.SubjectDesc,
			"subject_updated_at": ent.SubjectUpdatedAt,
		}).Error; err != nil {
		if isDuplicateNameErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama subject sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui subject")
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui subject", subjectDTO.FromSubjectModel(ent))
}

/* =======================================================
   DELETE — cascade: rating pada subject ikut terhapus
   ======================================================= */
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	log.Printf("[SUBJECTS][DELETE] ▶️ incoming request")

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		First(&ent, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("rating_subject_id = ?", ent.SubjectID).
			Delete(&ratingModel.RatingModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus rating subject")
		}
		if err := tx.Delete(&ent).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus subject")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonDeleted(c, "Berhasil menghapus subject", fiber.Map{
		"subject_id": ent.SubjectID,
	})
}
