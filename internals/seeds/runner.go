package seeds

import (
	students "penilaianku_backend/internals/seeds/students"
	subjects "penilaianku_backend/internals/seeds/subjects"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	students.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
	subjects.SeedSubjectsFromJSON(db, "internals/seeds/subjects/data_subjects.json")
}
