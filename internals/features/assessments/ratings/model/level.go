// file: internals/features/assessments/ratings/model/level.go
package model

import (
	"fmt"
	"strconv"
	"strings"
)

/* =========================================================
   LEVEL SCHEME — skema nilai per deployment
   (categorical: EXCELLENT/MODERATE/LOW, numeric: 1-5)
   ========================================================= */

type LevelScheme string

const (
	LevelSchemeCategorical LevelScheme = "categorical"
	LevelSchemeNumeric     LevelScheme = "numeric"
)

const (
	LevelExcellent = "EXCELLENT"
	LevelModerate  = "MODERATE"
	LevelLow       = "LOW"
)

const (
	NumericLevelMin = 1
	NumericLevelMax = 5
)

// Level: varian tertutup — kategorikal (label) atau numerik (1..5).
// Seluruh kode agregasi & export ditulis terhadap Key()/DisplayLabel(),
// bukan terhadap salah satu representasi konkret.
type Level struct {
	scheme LevelScheme
	label  string // categorical
	score  int    // numeric
}

// Parse membaca nilai mentah (dari request atau kolom rating_level)
// sesuai skema aktif.
func (s LevelScheme) Parse(raw string) (Level, error) {
	v := strings.TrimSpace(raw)
	switch s {
	case LevelSchemeCategorical:
		switch strings.ToUpper(v) {
		case LevelExcellent, LevelModerate, LevelLow:
			return Level{scheme: s, label: strings.ToUpper(v)}, nil
		}
		return Level{}, fmt.Errorf("level %q tidak dikenal (harus EXCELLENT, MODERATE, atau LOW)", raw)
	case LevelSchemeNumeric:
		n, err := strconv.Atoi(v)
		if err != nil || n < NumericLevelMin || n > NumericLevelMax {
			return Level{}, fmt.Errorf("level %q di luar rentang %d-%d", raw, NumericLevelMin, NumericLevelMax)
		}
		return Level{scheme: s, score: n}, nil
	default:
		return Level{}, fmt.Errorf("skema level %q tidak dikenal", s)
	}
}

// Known mengembalikan seluruh level skema ini dalam urutan tetap.
// Konsumen (chart, tabel) mengandalkan urutan & kelengkapan ini
// untuk kategori yang konsisten walau count-nya nol.
func (s LevelScheme) Known() []Level {
	switch s {
	case LevelSchemeNumeric:
		out := make([]Level, 0, NumericLevelMax)
		for n := NumericLevelMin; n <= NumericLevelMax; n++ {
			out = append(out, Level{scheme: s, score: n})
		}
		return out
	default:
		return []Level{
			{scheme: LevelSchemeCategorical, label: LevelExcellent},
			{scheme: LevelSchemeCategorical, label: LevelModerate},
			{scheme: LevelSchemeCategorical, label: LevelLow},
		}
	}
}

// KnownKeys: kunci level dalam urutan tetap (untuk zero-fill map count).
func (s LevelScheme) KnownKeys() []string {
	known := s.Known()
	keys := make([]string, len(known))
	for i, l := range known {
		keys[i] = l.Key()
	}
	return keys
}

// Key: representasi kanonik yang disimpan di kolom rating_level
// ("EXCELLENT" dst, atau "1".."5").
func (l Level) Key() string {
	if l.scheme == LevelSchemeNumeric {
		return strconv.Itoa(l.score)
	}
	return l.label
}

// DisplayLabel: label manusiawi untuk tabel & export
// ("Excellent"/"Moderate"/"Low", atau angka apa adanya).
func (l Level) DisplayLabel() string {
	switch l.scheme {
	case LevelSchemeNumeric:
		return strconv.Itoa(l.score)
	default:
		switch l.label {
		case LevelExcellent:
			return "Excellent"
		case LevelModerate:
			return "Moderate"
		case LevelLow:
			return "Low"
		}
		return l.label
	}
}

// DisplayLabelFor: label untuk kunci tersimpan; kalau kunci tidak bisa
// di-parse (data lama / skema berganti), kembalikan apa adanya.
func (s LevelScheme) DisplayLabelFor(key string) string {
	l, err := s.Parse(key)
	if err != nil {
		return key
	}
	return l.DisplayLabel()
}
