package bbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoToThePower(t *testing.T) {
	got, _ := twoToThePower(4).Float64()
	assert.Equal(t, 16.0, got)

	got, _ = twoToThePower(0).Float64()
	assert.Equal(t, 1.0, got)

	got, _ = twoToThePower(-2).Float64()
	assert.Equal(t, 0.25, got)
}

func TestBellardCoefficientsCount(t *testing.T) {
	assert.Len(t, bellardCoefficients, 7)
}

func TestEvaluateBellardRendersPrecisionDigits(t *testing.T) {
	// Bellard's series is the documented alternate configuration; it is
	// not asserted against the canonical digit table, only checked for
	// basic well-formedness across a few starting positions.
	for _, d := range []uint64{0, 1, 10, 100} {
		hex := RenderHex(evaluateBellard(d), Precision)
		assert.Len(t, hex, Precision)
	}
}
