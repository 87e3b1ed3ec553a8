// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package bbp implements the digit-extraction BBP formula: fixed-width
// modular exponentiation, batched term summation and a sharded
// accumulation engine that together produce hexadecimal digits of the
// fractional part of pi without computing any digit before them.
package bbp

import "math/bits"

// modPow computes b^e mod r using Barrett reduction. r must satisfy
// 1 <= r < 2^63; the caller is responsible for this invariant since
// every r encountered here is of the form m*k+j with j >= 1 (8k+j for
// the original formula, 4k+j or 10k+j for Bellard's), which never
// reaches zero for the supported range of d. Calling modPow with
// r == 0 is a programming error, not a runtime condition, and panics.
func modPow(b, e, r uint64) uint64 {
	if r == 0 {
		panic("bbp: modPow called with zero modulus")
	}

	// factor is recomputed on every call: r changes every iteration of
	// the term loop, so there is nothing to hoist.
	factor := ^uint64(0) / r

	result := uint64(1)
	for e > 0 {
		if e&1 == 1 {
			result = modMul(result, b, r, factor)
		}
		b = modMul(b, b, r, factor)
		e >>= 1
	}
	return result
}

// modMul computes a*b mod r via a 64x64->128 widening multiply followed
// by Barrett reduction against the precomputed factor.
func modMul(a, b, r, factor uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return barrettReduce(hi, lo, r, factor)
}

// barrettReduce reduces the 128-bit product (hi, lo) modulo r, given
// factor = floor(2^64 / r). It estimates the quotient with a single
// 64-bit-precision multiply-shift and corrects with plain subtraction,
// mirroring the three-step reduction in the original C source: the
// quotient estimate is only the middle 64 bits of the 192-bit product
// (hi:lo)*factor, the true remainder is n - q*r truncated to 64 bits,
// and any remaining excess is walked off one r at a time.
func barrettReduce(hi, lo, r, factor uint64) uint64 {
	h0, _ := bits.Mul64(lo, factor)
	_, l1 := bits.Mul64(hi, factor)
	q, _ := bits.Add64(h0, l1, 0)

	_, qr := bits.Mul64(q, r)
	t, _ := bits.Sub64(lo, qr, 0)

	for t >= r {
		t -= r
	}
	return t
}
