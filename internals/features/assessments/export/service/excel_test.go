package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
)

func mustLevel(t *testing.T, s ratingModel.LevelScheme, raw string) ratingModel.Level {
	t.Helper()
	l, err := s.Parse(raw)
	assert.NoError(t, err)
	return l
}

func sampleRows(t *testing.T) []ExportRow {
	s := ratingModel.LevelSchemeCategorical
	return []ExportRow{
		{Year: 2024, Term: ratingModel.TermMid, StudentName: "Bima", SubjectName: "Math", Level: mustLevel(t, s, "LOW")},
		{Year: 2023, Term: ratingModel.TermEnd, StudentName: "Alice", SubjectName: "Reading", Level: mustLevel(t, s, "EXCELLENT")},
		{Year: 2024, Term: ratingModel.TermMid, StudentName: "Alice", SubjectName: "Math", Level: mustLevel(t, s, "MODERATE")},
		{Year: 2024, Term: ratingModel.TermEnd, StudentName: "Alice", SubjectName: "Math", Level: mustLevel(t, s, "EXCELLENT")},
	}
}

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	assert.NoError(t, err)
	return rows
}

func TestBuildWorkbook_ContentAndOrder(t *testing.T) {
	buf, err := BuildWorkbook(sampleRows(t))
	assert.NoError(t, err)

	rows := readRows(t, buf)
	assert.Equal(t, [][]string{
		{"Year", "Term", "Student", "Subject", "Rating"},
		{"2023", "End-Year", "Alice", "Reading", "Excellent"},
		{"2024", "End-Year", "Alice", "Math", "Excellent"},
		{"2024", "Mid-Year", "Alice", "Math", "Moderate"},
		{"2024", "Mid-Year", "Bima", "Math", "Low"},
	}, rows)
}

func TestBuildWorkbook_DeterministicUnderPermutation(t *testing.T) {
	a := sampleRows(t)
	b := sampleRows(t)
	// permutasi input
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]

	bufA, err := BuildWorkbook(a)
	assert.NoError(t, err)
	bufB, err := BuildWorkbook(b)
	assert.NoError(t, err)

	assert.Equal(t, readRows(t, bufA), readRows(t, bufB))
}

func TestBuildWorkbook_ColumnWidths(t *testing.T) {
	buf, err := BuildWorkbook(sampleRows(t))
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	for _, cw := range columnWidths {
		w, err := f.GetColWidth(SheetName, cw.col)
		assert.NoError(t, err)
		assert.InDelta(t, cw.width, w, 0.01, "kolom %s", cw.col)
	}
}

func TestSortRows_CaseSensitiveLexical(t *testing.T) {
	s := ratingModel.LevelSchemeCategorical
	rows := []ExportRow{
		{Year: 2024, Term: ratingModel.TermMid, StudentName: "alice", SubjectName: "Math", Level: mustLevel(t, s, "LOW")},
		{Year: 2024, Term: ratingModel.TermMid, StudentName: "Bima", SubjectName: "Math", Level: mustLevel(t, s, "LOW")},
	}
	SortRows(rows)

	// uppercase < lowercase pada perbandingan byte
	assert.Equal(t, "Bima", rows[0].StudentName)
	assert.Equal(t, "alice", rows[1].StudentName)
}

func TestBuildWorkbook_NumericLevels(t *testing.T) {
	s := ratingModel.LevelSchemeNumeric
	rows := []ExportRow{
		{Year: 2024, Term: ratingModel.TermMid, StudentName: "Alice", SubjectName: "Math", Level: mustLevel(t, s, "4")},
	}
	buf, err := BuildWorkbook(rows)
	assert.NoError(t, err)

	got := readRows(t, buf)
	assert.Equal(t, []string{"2024", "Mid-Year", "Alice", "Math", "4"}, got[1])
}
