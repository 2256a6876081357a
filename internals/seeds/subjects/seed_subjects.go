package subjects

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"penilaianku_backend/internals/features/assessments/subjects/model"
)

type SubjectSeed struct {
	SubjectName string  `json:"subject_name"`
	SubjectDesc *string `json:"subject_desc"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var list []SubjectSeed
	if err := json.Unmarshal(file, &list); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range list {
		var existing model.SubjectModel
		if err := db.Where("subject_name = ?", s.SubjectName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Subject %s sudah ada, lewati...", s.SubjectName)
			continue
		}

		newSubject := model.SubjectModel{
			SubjectName:      s.SubjectName,
			SubjectDesc:      s.SubjectDesc,
			SubjectCreatedAt: time.Now(),
			SubjectUpdatedAt: time.Now(),
		}

		if err := db.Create(&newSubject).Error; err != nil {
			log.Printf("❌ Gagal insert subject %s: %v", s.SubjectName, err)
		} else {
			log.Printf("✅ Berhasil insert subject %s", newSubject.SubjectName)
		}
	}
}
