package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "penilaianku_backend/internals/features/assessments/ratings/model"
)

func validRequest() UpsertRatingRequest {
	return UpsertRatingRequest{
		StudentID: uuid.New(),
		SubjectID: uuid.New(),
		Year:      2024,
		Term:      "MID",
		Level:     "EXCELLENT",
	}
}

func TestUpsertRatingRequest_Validation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(validRequest()))

	// tahun di luar [2000, 2100]
	p := validRequest()
	p.Year = 1999
	assert.Error(t, v.Struct(p))

	p = validRequest()
	p.Year = 2101
	assert.Error(t, v.Struct(p))

	// term di luar MID/END
	p = validRequest()
	p.Term = "Q1"
	assert.Error(t, v.Struct(p))

	// referensi wajib ada
	p = validRequest()
	p.StudentID = uuid.Nil
	assert.Error(t, v.Struct(p))
}

func TestUpsertRatingRequest_NormalizeAndClear(t *testing.T) {
	p := UpsertRatingRequest{Term: " mid ", Level: "  "}
	p.Normalize()

	assert.Equal(t, "MID", p.Term)
	assert.Equal(t, "", p.Level)
	assert.True(t, p.IsClear())

	p.Level = "EXCELLENT"
	assert.False(t, p.IsClear())
}

func TestFromRatingModel_Labels(t *testing.T) {
	mm := m.RatingModel{
		RatingID:        uuid.New(),
		RatingStudentID: uuid.New(),
		RatingSubjectID: uuid.New(),
		RatingYear:      2024,
		RatingTerm:      m.TermEnd,
		RatingLevel:     "MODERATE",
	}

	resp := FromRatingModel(mm, m.LevelSchemeCategorical)
	assert.Equal(t, "End-Year", resp.TermLabel)
	assert.Equal(t, "Moderate", resp.LevelLabel)
	assert.Empty(t, resp.StudentName) // tanpa preload, nama kosong
}
