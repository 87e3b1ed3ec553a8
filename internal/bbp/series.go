package bbp

import "math/big"

// epsilon is the right-tail termination threshold: once a term's
// magnitude drops below this, that sub-series is considered exhausted.
var epsilon = newFloat(1e-17)

// rightTailCap bounds how many extra iterations the right series may
// take past U before giving up, guarding against a term that never
// decays below epsilon (it always does for the supported range, but
// the cap keeps the loop provably finite).
const rightTailCap = 100

// originalJs is the term order for the 4-term formula, used by the left
// batch and the sequential driver (the right tail follows the same
// order): summing the sub-series in this fixed order, each reduced
// modulo 1 after every term, is what makes a batch's contribution a
// canonical, reproducible value.
var originalJs = [4]int{1, 4, 5, 6}

// originalMult returns the signed rational coefficient for term j of
// the original 4-term BBP series: 4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6).
func originalMult(j int) float64 {
	switch j {
	case 1:
		return 4
	case 4:
		return -2
	default: // 5, 6
		return -1
	}
}

// originalTerm evaluates a single term of the original formula at
// (j, k) against upper bound U: mult_j * 16^(U-k) mod (8k+j) / (8k+j).
func originalTerm(j int, k, upperBound uint64) *big.Float {
	r := 8*k + uint64(j)
	p := modPow(16, upperBound-k, r)

	val := newFloat(originalMult(j))
	val.Mul(val, newFloatUint64(p))
	val.Quo(val, newFloatUint64(r))
	return val
}

// lhsOriginal sums originalTerm(j, k, upperBound) for k in
// [s, min(s+batch, upperBound)), reducing modulo 1 after every
// addition so that no single k-iteration loses mantissa bits to the
// ones before it.
func lhsOriginal(j int, s, batch, upperBound uint64) *big.Float {
	sum := newFloat(0)

	loopLimit := s + batch
	if loopLimit > upperBound {
		loopLimit = upperBound
	}

	for k := s; k < loopLimit; k++ {
		sum.Add(sum, originalTerm(j, k, upperBound))
		sum = fmod1(sum)
	}
	return sum
}

// leftBatchOriginal is component 4.C: the batched left-series
// summator for the original 4-term formula. It sums all four
// sub-series over [s, s+batch) and returns their combined value -
// the four sub-sums are NOT re-reduced modulo 1 after being combined,
// matching the reference implementation.
func leftBatchOriginal(s, batch, upperBound uint64) *big.Float {
	result := newFloat(0)
	for _, j := range originalJs {
		result.Add(result, lhsOriginal(j, s, batch, upperBound))
	}
	return result
}

// rhsOriginal is the right-tail summation for a single j-series of the
// original formula: component 4.D, evaluated analytically (no modular
// exponentiation - the exponent U-k is non-positive here) from k=U
// until a term's magnitude falls below epsilon, capped at U+100.
func rhsOriginal(j int, upperBound uint64) *big.Float {
	sum := newFloat(0)
	mult := newFloat(originalMult(j))

	// pow tracks 16^(upperBound-k) incrementally: 1 at k=upperBound,
	// divided by 16 each time k advances by one.
	pow := newFloat(1)
	sixteen := newFloat(16)

	last := upperBound + rightTailCap
	for k := upperBound; k <= last; k++ {
		r := 8*k + uint64(j)

		term := new(big.Float).SetPrec(floatPrec).Quo(pow, newFloatUint64(r))
		if absLessThan(term, epsilon) {
			break
		}

		term.Mul(term, mult)
		sum.Add(sum, term)
		sum = fmod1(sum)

		pow.Quo(pow, sixteen)
	}
	return sum
}

// rightTailOriginal is component 4.D in full: the four j-series right
// tails combined in the same fixed order as the left series, with a
// modulo-1 reduction after each accumulation.
func rightTailOriginal(upperBound uint64) *big.Float {
	result := rhsOriginal(1, upperBound)
	result = fmod1(result)

	for _, j := range []int{4, 5, 6} {
		result.Add(result, rhsOriginal(j, upperBound))
		result = fmod1(result)
	}
	return result
}
