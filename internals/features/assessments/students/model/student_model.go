// file: internals/features/assessments/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	/* ============ PK ============ */
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	/* ============ Identitas ============ */
	StudentName string `gorm:"column:student_name;type:varchar(100);not null;index:idx_students_name" json:"student_name"`

	/* ============ Audit ============ */
	StudentCreatedAt time.Time `gorm:"column:student_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
