package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// LevelScheme menentukan skema penilaian deployment ini:
	// "categorical" (EXCELLENT/MODERATE/LOW) atau "numeric" (1-5).
	LevelScheme string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	LevelScheme = strings.ToLower(strings.TrimSpace(GetEnv("LEVEL_SCHEME", "categorical")))
	switch LevelScheme {
	case "categorical", "numeric":
		log.Printf("✅ LEVEL_SCHEME aktif: %s", LevelScheme)
	default:
		log.Printf("⚠️ LEVEL_SCHEME %q tidak dikenal, fallback ke categorical", LevelScheme)
		LevelScheme = "categorical"
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
