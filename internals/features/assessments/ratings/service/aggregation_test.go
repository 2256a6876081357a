package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	ratingModel "penilaianku_backend/internals/features/assessments/ratings/model"
	studentModel "penilaianku_backend/internals/features/assessments/students/model"
	subjectModel "penilaianku_backend/internals/features/assessments/subjects/model"
)

var (
	studentAlice = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	studentBima  = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	subjectMath  = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	subjectRead  = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
)

func rating(student, subject uuid.UUID, year int, term ratingModel.Term, level string) ratingModel.RatingModel {
	return ratingModel.RatingModel{
		RatingID:        uuid.New(),
		RatingStudentID: student,
		RatingSubjectID: subject,
		RatingYear:      year,
		RatingTerm:      term,
		RatingLevel:     level,
	}
}

func sampleRatings() []ratingModel.RatingModel {
	return []ratingModel.RatingModel{
		rating(studentAlice, subjectMath, 2024, ratingModel.TermMid, "EXCELLENT"),
		rating(studentAlice, subjectRead, 2024, ratingModel.TermEnd, "MODERATE"),
		rating(studentBima, subjectMath, 2024, ratingModel.TermMid, "LOW"),
		rating(studentBima, subjectMath, 2023, ratingModel.TermEnd, "EXCELLENT"),
	}
}

func TestFilterByPeriod_SubsetAndIdempotent(t *testing.T) {
	ratings := sampleRatings()

	p := Period{Year: YearOf(2024), Term: ratingModel.TermMid}
	once := FilterByPeriod(ratings, p)
	twice := FilterByPeriod(once, p)

	assert.Len(t, once, 2)
	assert.Equal(t, once, twice)
	for _, r := range once {
		assert.Equal(t, 2024, r.RatingYear)
		assert.Equal(t, ratingModel.TermMid, r.RatingTerm)
	}

	// input tidak dimutasi
	assert.Len(t, ratings, 4)
}

func TestFilterByPeriod_EmptyDimensionsMatchAll(t *testing.T) {
	ratings := sampleRatings()

	assert.Len(t, FilterByPeriod(ratings, Period{}), 4)
	assert.Len(t, FilterByPeriod(ratings, Period{Year: YearOf(2024)}), 3)
	assert.Len(t, FilterByPeriod(ratings, Period{Term: ratingModel.TermEnd}), 2)

	// period tanpa match tetap slice kosong, bukan nil panic
	assert.Empty(t, FilterByPeriod(ratings, Period{Year: YearOf(1999)}))
}

func TestCollectYears_SortedUnique(t *testing.T) {
	years := CollectYears(sampleRatings())
	assert.Equal(t, []int{2023, 2024}, years)

	assert.Empty(t, CollectYears(nil))
}

func TestBuildLevelDistribution_ZeroFilled(t *testing.T) {
	ratings := sampleRatings()
	p := Period{Year: YearOf(2024), Term: ratingModel.TermMid}

	dist := BuildLevelDistribution(ratings, ratingModel.LevelSchemeCategorical, p)

	// semua level skema selalu ada, walau nol
	assert.Equal(t, map[string]int{
		"EXCELLENT": 1,
		"MODERATE":  0,
		"LOW":       1,
	}, dist.Counts)

	// total count = jumlah hasil filter
	sum := 0
	for _, n := range dist.Counts {
		sum += n
	}
	assert.Equal(t, len(dist.Filtered), sum)
}

func TestBuildLevelDistribution_SpecScenario(t *testing.T) {
	ratings := []ratingModel.RatingModel{
		rating(studentAlice, subjectMath, 2024, ratingModel.TermMid, "EXCELLENT"),
	}
	dist := BuildLevelDistribution(ratings, ratingModel.LevelSchemeCategorical,
		Period{Year: YearOf(2024), Term: ratingModel.TermMid})

	assert.Equal(t, map[string]int{
		"EXCELLENT": 1,
		"MODERATE":  0,
		"LOW":       0,
	}, dist.Counts)
}

func TestBuildSubjectSummary(t *testing.T) {
	ratings := sampleRatings()
	subjects := []subjectModel.SubjectModel{
		{SubjectID: subjectMath, SubjectName: "Math"},
		{SubjectID: subjectRead, SubjectName: "Reading"},
	}
	p := Period{Year: YearOf(2024)}

	rows := BuildSubjectSummary(ratings, subjects, ratingModel.LevelSchemeCategorical, p)

	// satu baris per subject, urut sesuai input
	assert.Len(t, rows, len(subjects))
	assert.Equal(t, "Math", rows[0].SubjectName)
	assert.Equal(t, "Reading", rows[1].SubjectName)

	// per baris: counts jumlahnya = total
	grandTotal := 0
	for _, row := range rows {
		sum := 0
		for _, n := range row.Counts {
			sum += n
		}
		assert.Equal(t, row.Total, sum)
		grandTotal += row.Total
	}

	// total seluruh baris = rating terfilter yang subject-nya dikenal
	assert.Equal(t, 3, grandTotal)
}

func TestBuildSubjectSummary_UnknownSubjectDropped(t *testing.T) {
	ghost := uuid.New()
	ratings := []ratingModel.RatingModel{
		rating(studentAlice, ghost, 2024, ratingModel.TermMid, "LOW"),
	}
	subjects := []subjectModel.SubjectModel{
		{SubjectID: subjectMath, SubjectName: "Math"},
	}

	rows := BuildSubjectSummary(ratings, subjects, ratingModel.LevelSchemeCategorical, Period{})

	// rating subject tak dikenal: tidak error, tidak bikin baris baru
	assert.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Total)
}

func TestBuildSubjectSummary_SubjectWithoutRatingsZeroFilled(t *testing.T) {
	subjects := []subjectModel.SubjectModel{
		{SubjectID: subjectMath, SubjectName: "Math"},
	}

	rows := BuildSubjectSummary(nil, subjects, ratingModel.LevelSchemeCategorical, Period{})

	assert.Len(t, rows, 1)
	assert.Equal(t, map[string]int{
		"EXCELLENT": 0,
		"MODERATE":  0,
		"LOW":       0,
	}, rows[0].Counts)
}

func TestTotalsOverview(t *testing.T) {
	// list kosong → semua nol
	assert.Equal(t, Overview{}, TotalsOverview(nil, nil, nil))

	students := []studentModel.StudentModel{{StudentID: studentAlice, StudentName: "Alice"}}
	subjects := []subjectModel.SubjectModel{{SubjectID: subjectMath, SubjectName: "Math"}}
	ratings := sampleRatings()

	assert.Equal(t, Overview{
		StudentCount: 1,
		SubjectCount: 1,
		RatingCount:  4,
	}, TotalsOverview(students, subjects, ratings))
}

func TestBuildLevelDistribution_NumericScheme(t *testing.T) {
	ratings := []ratingModel.RatingModel{
		rating(studentAlice, subjectMath, 2024, ratingModel.TermMid, "5"),
		rating(studentBima, subjectMath, 2024, ratingModel.TermMid, "3"),
	}
	dist := BuildLevelDistribution(ratings, ratingModel.LevelSchemeNumeric,
		Period{Year: YearOf(2024)})

	assert.Equal(t, map[string]int{
		"1": 0, "2": 0, "3": 1, "4": 0, "5": 1,
	}, dist.Counts)
}
