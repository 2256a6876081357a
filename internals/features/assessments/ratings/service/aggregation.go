// file: internals/features/assessments/ratings/service/aggregation.go
package service

import (
	"sort"

	"github.com/google/uuid"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
)

/* =========================================================
   AGGREGATION ENGINE — fungsi murni di atas list rating.
   Tidak ada I/O di sini; controller yang fetch & kirim hasil.
   ========================================================= */

// Period: filter (year, term). Year nil = semua tahun, Term "" = semua term
// (filter kosong berarti "match all", bukan "match none").
type Period struct {
	Year *int
	Term ratingModel.Term
}

// YearOf: helper untuk bikin Period.Year dari int literal.
func YearOf(y int) *int { return &y }

// FilterByPeriod mengembalikan slice baru berisi rating yang cocok dengan
// period. Input tidak dimutasi; memanggil dua kali hasilnya sama (idempoten).
func FilterByPeriod(ratings []ratingModel.RatingModel, p Period) []ratingModel.RatingModel {
	out := make([]ratingModel.RatingModel, 0, len(ratings))
	for _, r := range ratings {
		if p.Year != nil && r.RatingYear != *p.Year {
			continue
		}
		if p.Term != "" && r.RatingTerm != p.Term {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CollectYears: daftar tahun unik, urut naik.
// Catatan untuk pemanggil: kalau tahun yang sedang dipilih user tidak ada
// di hasil, pemanggil sendiri yang menyisipkannya (bukan fungsi ini) —
// lihat dashboard controller.
func CollectYears(ratings []ratingModel.RatingModel) []int {
	seen := make(map[int]struct{}, len(ratings))
	years := make([]int, 0, len(ratings))
	for _, r := range ratings {
		if _, ok := seen[r.RatingYear]; ok {
			continue
		}
		seen[r.RatingYear] = struct{}{}
		years = append(years, r.RatingYear)
	}
	sort.Ints(years)
	return years
}

// LevelDistribution: hasil hitung distribusi level untuk satu period.
type LevelDistribution struct {
	// Counts selalu memuat SEMUA level skema (zero-filled) supaya chart
	// tidak perlu null-check kategori.
	Counts   map[string]int            `json:"counts"`
	Filtered []ratingModel.RatingModel `json:"-"`
}

func BuildLevelDistribution(ratings []ratingModel.RatingModel, scheme ratingModel.LevelScheme, p Period) LevelDistribution {
	filtered := FilterByPeriod(ratings, p)

	counts := make(map[string]int, len(scheme.KnownKeys()))
	for _, key := range scheme.KnownKeys() {
		counts[key] = 0
	}
	for _, r := range filtered {
		counts[r.RatingLevel]++
	}

	return LevelDistribution{Counts: counts, Filtered: filtered}
}

// SubjectSummaryRow: satu baris rekap per subject (termasuk subject tanpa
// rating di period tsb — counts nol semua).
type SubjectSummaryRow struct {
	SubjectID   uuid.UUID      `json:"subject_id"`
	SubjectName string         `json:"subject_name"`
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
}

// BuildSubjectSummary: satu baris per subject, urut sesuai list subjects.
// Rating yang menunjuk subject tak dikenal di-drop diam-diam (tidak bikin
// baris baru, tidak error).
func BuildSubjectSummary(
	ratings []ratingModel.RatingModel,
	subjects []subjectModel.SubjectModel,
	scheme ratingModel.LevelScheme,
	p Period,
) []SubjectSummaryRow {
	filtered := FilterByPeriod(ratings, p)
	keys := scheme.KnownKeys()

	rows := make([]SubjectSummaryRow, len(subjects))
	index := make(map[uuid.UUID]int, len(subjects))
	for i, s := range subjects {
		counts := make(map[string]int, len(keys))
		for _, k := range keys {
			counts[k] = 0
		}
		rows[i] = SubjectSummaryRow{
			SubjectID:   s.SubjectID,
			SubjectName: s.SubjectName,
			Counts:      counts,
		}
		index[s.SubjectID] = i
	}

	for _, r := range filtered {
		i, ok := index[r.RatingSubjectID]
		if !ok {
			continue
		}
		rows[i].Counts[r.RatingLevel]++
		rows[i].Total++
	}

	return rows
}

// Overview: angka headline untuk kartu dashboard (tanpa filter).
type Overview struct {
	StudentCount int `json:"student_count"`
	SubjectCount int `json:"subject_count"`
	RatingCount  int `json:"rating_count"`
}

func TotalsOverview(
	students []studentModel.StudentModel,
	subjects []subjectModel.SubjectModel,
	ratings []ratingModel.RatingModel,
) Overview {
	return Overview{
		StudentCount: len(students),
		SubjectCount: len(subjects),
		RatingCount:  len(ratings),
	}
}
