// file: internals/features/assessments/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	/* ============ PK ============ */
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	/* ============ Identitas ============ */
	// Nama unik; insert duplikat ditolak DB (uq_subjects_name)
	SubjectName string  `gorm:"column:subject_name;type:varchar(100);not null;uniqueIndex:uq_subjects_name" json:"subject_name"`
	SubjectDesc *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	/* ============ Audit ============ */
	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
