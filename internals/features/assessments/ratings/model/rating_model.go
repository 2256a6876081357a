// file: internals/features/assessments/ratings/model/rating_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
)

type RatingModel struct {
	/* ============ PK ============ */
	RatingID uuid.UUID `gorm:"column:rating_id;type:uuid;default:gen_random_uuid();primaryKey" json:"rating_id"`

	/* ============ FK + slot unik (student, subject, year, term) ============ */
	RatingStudentID uuid.UUID `gorm:"column:rating_student_id;type:uuid;not null;uniqueIndex:uq_ratings_slot;index:idx_ratings_student" json:"rating_student_id"`
	RatingSubjectID uuid.UUID `gorm:"column:rating_subject_id;type:uuid;not null;uniqueIndex:uq_ratings_slot;index:idx_ratings_subject" json:"rating_subject_id"`
	RatingYear      int       `gorm:"column:rating_year;not null;uniqueIndex:uq_ratings_slot;index:idx_ratings_year" json:"rating_year"`
	RatingTerm      Term      `gorm:"column:rating_term;type:varchar(8);not null;uniqueIndex:uq_ratings_slot" json:"rating_term"`

	/* ============ Nilai ============ */
	// Kunci kanonik level ("EXCELLENT" dst, atau "1".."5") — lihat level.go
	RatingLevel string `gorm:"column:rating_level;type:varchar(16);not null" json:"rating_level"`

	/* ============ Audit ============ */
	RatingCreatedAt time.Time `gorm:"column:rating_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"rating_created_at"`
	RatingUpdatedAt time.Time `gorm:"column:rating_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"rating_updated_at"`

	/* ============ Relasi (FK cascade di DB) ============ */
	Student *studentModel.StudentModel `gorm:"foreignKey:RatingStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:RatingSubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RatingModel) TableName() string { return "ratings" }
