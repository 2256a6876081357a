// file: internals/features/assessments/export/service/excel.go
package service

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
)

const (
	SheetName = "Ratings"

	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportRow: satu baris workbook — rating yang sudah di-join dengan
// nama student & subject.
type ExportRow struct {
	Year        int
	Term        ratingModel.Term
	StudentName string
	SubjectName string
	Level       ratingModel.Level
}

// SortRows mengurutkan baris secara deterministik:
// Year ↑, Term ↑, Student ↑, Subject ↑ (perbandingan lexical, case-sensitive).
// Dua export dari data yang sama selalu identik, apapun urutan inputnya.
func SortRows(rows []ExportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Term != b.Term {
			return a.Term < b.Term
		}
		if a.StudentName != b.StudentName {
			return a.StudentName < b.StudentName
		}
		return a.SubjectName < b.SubjectName
	})
}

// Lebar kolom mengikuti layout lama: Year/Term/Student/Subject/Rating.
var columnWidths = []struct {
	col   string
	width float64
}{
	{"A", 8},
	{"B", 12},
	{"C", 22},
	{"D", 25},
	{"E", 12},
}

// BuildWorkbook membangun workbook .xlsx satu sheet dari baris export.
// Baris diurutkan dulu (SortRows); file excelize selalu di-Close, baik
// sukses maupun gagal.
func BuildWorkbook(rows []ExportRow) (*bytes.Buffer, error) {
	SortRows(rows)

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("gagal set nama sheet: %w", err)
	}

	for _, cw := range columnWidths {
		if err := f.SetColWidth(SheetName, cw.col, cw.col, cw.width); err != nil {
			return nil, fmt.Errorf("gagal set lebar kolom %s: %w", cw.col, err)
		}
	}

	header := []any{"Year", "Term", "Student", "Subject", "Rating"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("gagal tulis header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			r.Year,
			r.Term.Label(),
			r.StudentName,
			r.SubjectName,
			r.Level.DisplayLabel(),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("gagal tulis baris %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("gagal serialize workbook: %w", err)
	}
	return buf, nil
}
