// file: internals/features/assessments/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "penilaianku_backend/internals/features/assessments/students/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateStudentRequest struct {
	Name string `json:"student_name" form:"student_name" validate:"required,min=1,max=100"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	now := time.Now()
	return m.StudentModel{
		StudentName:      r.Name,
		StudentCreatedAt: now,
		StudentUpdatedAt: now,
	}
}

// Update hanya boleh mengganti nama (lihat lifecycle di model)
type UpdateStudentRequest struct {
	Name string `json:"student_name" form:"student_name" validate:"required,min=1,max=100"`
}

func (r *UpdateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentName      string    `json:"student_name"`
	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func FromStudentModel(mm m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        mm.StudentID,
		StudentName:      mm.StudentName,
		StudentCreatedAt: mm.StudentCreatedAt,
		StudentUpdatedAt: mm.StudentUpdatedAt,
	}
}

func FromStudentModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, len(list))
	for i, mm := range list {
		out[i] = FromStudentModel(mm)
	}
	return out
}
