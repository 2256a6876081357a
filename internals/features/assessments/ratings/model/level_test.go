package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoricalScheme_Parse(t *testing.T) {
	s := LevelSchemeCategorical

	l, err := s.Parse("EXCELLENT")
	assert.NoError(t, err)
	assert.Equal(t, "EXCELLENT", l.Key())
	assert.Equal(t, "Excellent", l.DisplayLabel())

	// lowercase & spasi ikut diterima
	l, err = s.Parse("  moderate ")
	assert.NoError(t, err)
	assert.Equal(t, "MODERATE", l.Key())
	assert.Equal(t, "Moderate", l.DisplayLabel())

	_, err = s.Parse("AMAZING")
	assert.Error(t, err)

	_, err = s.Parse("")
	assert.Error(t, err)
}

func TestNumericScheme_Parse(t *testing.T) {
	s := LevelSchemeNumeric

	l, err := s.Parse("3")
	assert.NoError(t, err)
	assert.Equal(t, "3", l.Key())
	assert.Equal(t, "3", l.DisplayLabel())

	_, err = s.Parse("0")
	assert.Error(t, err)

	_, err = s.Parse("6")
	assert.Error(t, err)

	_, err = s.Parse("EXCELLENT")
	assert.Error(t, err)
}

func TestKnownKeys_FixedOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"EXCELLENT", "MODERATE", "LOW"},
		LevelSchemeCategorical.KnownKeys(),
	)
	assert.Equal(t,
		[]string{"1", "2", "3", "4", "5"},
		LevelSchemeNumeric.KnownKeys(),
	)
}

func TestDisplayLabelFor_UnparseableKeyReturnedAsIs(t *testing.T) {
	// data lama dari skema lain tidak boleh bikin panic/error
	assert.Equal(t, "4", LevelSchemeCategorical.DisplayLabelFor("4"))
	assert.Equal(t, "EXCELLENT", LevelSchemeNumeric.DisplayLabelFor("EXCELLENT"))
}

func TestParseTerm(t *testing.T) {
	mid, err := ParseTerm("mid")
	assert.NoError(t, err)
	assert.Equal(t, TermMid, mid)
	assert.Equal(t, "Mid-Year", mid.Label())

	end, err := ParseTerm("END")
	assert.NoError(t, err)
	assert.Equal(t, TermEnd, end)
	assert.Equal(t, "End-Year", end.Label())

	_, err = ParseTerm("Q3")
	assert.Error(t, err)
}
