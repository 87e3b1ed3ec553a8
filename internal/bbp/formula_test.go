package bbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormula(t *testing.T) {
	cases := []struct {
		in      string
		want    Formula
		wantErr bool
	}{
		{"", FormulaOriginal, false},
		{"original", FormulaOriginal, false},
		{"bellard", FormulaBellard, false},
		{"bogus", FormulaOriginal, true},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		if c.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestFormulaString(t *testing.T) {
	assert.Equal(t, "original", FormulaOriginal.String())
	assert.Equal(t, "bellard", FormulaBellard.String())
	assert.Equal(t, "unknown", Formula(99).String())
}
