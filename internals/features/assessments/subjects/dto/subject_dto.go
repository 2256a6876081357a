// file: internals/features/assessments/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "penilaianku_backend/internals/features/assessments/subjects/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateSubjectRequest struct {
	Name string  `json:"subject_name" form:"subject_name" validate:"required,min=1,max=100"`
	Desc *string `json:"subject_desc" form:"subject_desc"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	now := time.Now()
	return m.SubjectModel{
		SubjectName:      r.Name,
		SubjectDesc:      r.Desc,
		SubjectCreatedAt: now,
		SubjectUpdatedAt: now,
	}
}

type UpdateSubjectRequest struct {
	Name string  `json:"subject_name" form:"subject_name" validate:"required,min=1,max=100"`
	Desc *string `json:"subject_desc" form:"subject_desc"`
}

func (r *UpdateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectDesc      *string   `json:"subject_desc,omitempty"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at"`
}

func FromSubjectModel(mm m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        mm.SubjectID,
		SubjectName:      mm.SubjectName,
		SubjectDesc:      mm.SubjectDesc,
		SubjectCreatedAt: mm.SubjectCreatedAt,
		SubjectUpdatedAt: mm.SubjectUpdatedAt,
	}
}

func FromSubjectModels(list []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, len(list))
	for i, mm := range list {
		out[i] = FromSubjectModel(mm)
	}
	return out
}
