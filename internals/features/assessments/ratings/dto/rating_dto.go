// file: internals/features/assessments/ratings/dto/rating_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "penilaianku_backend/internals/features/assessments/ratings/model"
)

/* =========================================================
   UPSERT
   Satu path tulis untuk rating: keyed by
   (student, subject, year, term). Level kosong = hapus slot
   (kebijakan eksplisit, lihat DESIGN.md).
   ========================================================= */

type UpsertRatingRequest struct {
	StudentID uuid.UUID `json:"student_id" form:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" form:"subject_id" validate:"required"`
	Year      int       `json:"year" form:"year" validate:"required,min=2000,max=2100"`
	Term      string    `json:"term" form:"term" validate:"required,oneof=MID END"`
	Level     string    `json:"level" form:"level"`
}

func (r *UpsertRatingRequest) Normalize() {
	r.Term = strings.ToUpper(strings.TrimSpace(r.Term))
	r.Level = strings.TrimSpace(r.Level)
}

// IsClear: request ini minta slot dikosongkan, bukan diisi.
func (r UpsertRatingRequest) IsClear() bool { return r.Level == "" }

func (r UpsertRatingRequest) ToModel(level m.Level) m.RatingModel {
	now := time.Now()
	return m.RatingModel{
		RatingStudentID: r.StudentID,
		RatingSubjectID: r.SubjectID,
		RatingYear:      r.Year,
		RatingTerm:      m.Term(r.Term),
		RatingLevel:     level.Key(),
		RatingCreatedAt: now,
		RatingUpdatedAt: now,
	}
}

/* =========================================================
   RESPONSE — rating + nama student/subject hasil join
   ========================================================= */

type RatingResponse struct {
	RatingID    uuid.UUID `json:"rating_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name,omitempty"`
	Year        int       `json:"year"`
	Term        m.Term    `json:"term"`
	TermLabel   string    `json:"term_label"`
	Level       string    `json:"level"`
	LevelLabel  string    `json:"level_label"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRatingModel(mm m.RatingModel, scheme m.LevelScheme) RatingResponse {
	resp := RatingResponse{
		RatingID:   mm.RatingID,
		StudentID:  mm.RatingStudentID,
		SubjectID:  mm.RatingSubjectID,
		Year:       mm.RatingYear,
		Term:       mm.RatingTerm,
		TermLabel:  mm.RatingTerm.Label(),
		Level:      mm.RatingLevel,
		LevelLabel: scheme.DisplayLabelFor(mm.RatingLevel),
		CreatedAt:  mm.RatingCreatedAt,
		UpdatedAt:  mm.RatingUpdatedAt,
	}
	if mm.Student != nil {
		resp.StudentName = mm.Student.StudentName
	}
	if mm.Subject != nil {
		resp.SubjectName = mm.Subject.SubjectName
	}
	return resp
}

func FromRatingModels(list []m.RatingModel, scheme m.LevelScheme) []RatingResponse {
	out := make([]RatingResponse, len(list))
	for i, mm := range list {
		out[i] = FromRatingModel(mm, scheme)
	}
	return out
}
