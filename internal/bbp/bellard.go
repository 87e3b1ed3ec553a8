package bbp

import "math/big"

// bellardCoefficient is one of the seven weighted sub-series making up
// Bellard's base-2 formula for pi:
//
//	pi = 2^(-6) * sum_k (-1)^k / 2^(10k) * ( -2^5/(4k+1) - 2^0/(4k+3)
//	     + 2^8/(10k+1) - 2^6/(10k+3) - 2^2/(10k+5) - 2^2/(10k+7) + 2^0/(10k+9) )
//
// grouped here the way the reference source lays it out: one (m, j, l)
// triple and a sign per sub-series, where r = m*k+j, l is the
// sub-series' power-of-two coefficient exponent minus 6 (folding in the
// leading 2^(-6)), and the shared exponent is 4d+l-10k.
type bellardCoefficient struct {
	m, j int64
	l    int64
	sign float64
}

var bellardCoefficients = [7]bellardCoefficient{
	{m: 4, j: 1, l: -1, sign: -1},
	{m: 4, j: 3, l: -6, sign: -1},
	{m: 10, j: 1, l: 2, sign: 1},
	{m: 10, j: 3, l: 0, sign: -1},
	{m: 10, j: 5, l: -4, sign: -1},
	{m: 10, j: 7, l: -4, sign: -1},
	{m: 10, j: 9, l: -6, sign: 1},
}

// bellardSubSeries evaluates one (m, j, l) sub-series at digit position
// d: a modular left part up to its own loop limit floor((4d+l)/10),
// immediately followed - in the same running sum - by the analytic
// tail until a term drops below epsilon (capped at 100 extra terms).
// Unlike the original formula, Bellard's per-sub-series upper bound
// isn't shared across series, so this isn't routed through the
// sharded worker pool; see DESIGN.md for why.
func bellardSubSeries(c bellardCoefficient, d uint64) *big.Float {
	sum := newFloat(0)

	numerator := 4*int64(d) + c.l
	loopLimit := numerator / 10 // truncates toward zero, matching C's int64_t division

	var k int64
	for ; k < loopLimit; k++ {
		sign := 1.0
		if k%2 != 0 {
			sign = -1
		}
		r := uint64(c.m*k + c.j)
		exponent := uint64(numerator - 10*k) // always >= 0 for k < loopLimit

		p := modPow(2, exponent, r)
		term := newFloat(sign)
		term.Mul(term, newFloatUint64(p))
		term.Quo(term, newFloatUint64(r))

		sum.Add(sum, term)
		sum = fmod1(sum)
	}

	last := loopLimit + rightTailCap
	for ; k < last; k++ {
		sign := 1.0
		if k%2 != 0 {
			sign = -1
		}
		r := uint64(c.m*k + c.j)
		exponent := numerator - 10*k // may be negative here

		pow := twoToThePower(exponent)
		term := new(big.Float).SetPrec(floatPrec).Quo(pow, newFloatUint64(r))
		if absLessThan(term, epsilon) {
			break
		}

		term.Mul(term, newFloat(sign))
		sum.Add(sum, term)
		sum = fmod1(sum)
	}

	return sum
}

// twoToThePower returns 2^e as a big.Float for any (possibly negative)
// int64 exponent, used for the analytic tail where the modular
// exponentiation primitive no longer applies.
func twoToThePower(e int64) *big.Float {
	result := newFloat(1)
	two := newFloat(2)
	if e >= 0 {
		for i := int64(0); i < e; i++ {
			result.Mul(result, two)
		}
		return result
	}
	for i := int64(0); i < -e; i++ {
		result.Quo(result, two)
	}
	return result
}

// evaluateBellard is the experimental alternate configuration noted in
// the spec's design notes: it reuses modPow and the fractional
// reduction discipline but evaluates sequentially rather than through
// the sharded worker pool, matching the reference source where the
// Bellard driver never wired up a concurrent accumulation path.
func evaluateBellard(d uint64) *big.Float {
	result := newFloat(0)
	for _, c := range bellardCoefficients {
		term := bellardSubSeries(c, d)
		if c.sign < 0 {
			result.Sub(result, term)
		} else {
			result.Add(result, term)
		}
	}
	return result
}
