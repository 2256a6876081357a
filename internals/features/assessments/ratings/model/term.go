// file: internals/features/assessments/ratings/model/term.go
package model

import (
	"fmt"
	"strings"
)

// Term: periode penilaian dalam satu tahun ajaran.
type Term string

const (
	TermMid Term = "MID"
	TermEnd Term = "END"
)

// Batas tahun yang diterima untuk sebuah rating.
const (
	MinYear = 2000
	MaxYear = 2100
)

func ParseTerm(raw string) (Term, error) {
	switch Term(strings.ToUpper(strings.TrimSpace(raw))) {
	case TermMid:
		return TermMid, nil
	case TermEnd:
		return TermEnd, nil
	default:
		return "", fmt.Errorf("term %q tidak dikenal (harus MID atau END)", raw)
	}
}

func (t Term) Valid() bool { return t == TermMid || t == TermEnd }

// Label untuk tampilan (tabel, export)
func (t Term) Label() string {
	switch t {
	case TermMid:
		return "Mid-Year"
	case TermEnd:
		return "End-Year"
	default:
		return string(t)
	}
}
