package students

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"penilaianku_backend/internals/features/assessments/students/model"
)

type StudentSeed struct {
	StudentName string `json:"student_name"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var list []StudentSeed
	if err := json.Unmarshal(file, &list); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range list {
		var existing model.StudentModel
		if err := db.Where("student_name = ?", s.StudentName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Student %s sudah ada, lewati...", s.StudentName)
			continue
		}

		newStudent := model.StudentModel{
			StudentName:      s.StudentName,
			StudentCreatedAt: time.Now(),
			StudentUpdatedAt: time.Now(),
		}

		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Gagal insert student %s: %v", s.StudentName, err)
		} else {
			log.Printf("✅ Berhasil insert student %s", newStudent.StudentName)
		}
	}
}
