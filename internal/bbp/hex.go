package bbp

import "math/big"

// hexDigits is the uppercase alphabet used to render each nibble,
// matching the reference implementation's ihex lookup table.
const hexDigits = "0123456789ABCDEF"

// Precision is the number of hexadecimal digits rendered per run.
const Precision = 10

// RenderHex renders precision hex digits of the fractional part of x,
// which may be negative and may have |x| >= 1 (the driver never reduces
// the final sum modulo 1 itself - the reference source's closing fmodl
// call discards its result, so normalization happens here instead).
// y is normalized into [0, 1) once, then repeatedly multiplied by 16,
// taking the integer part as the next nibble.
func RenderHex(x *big.Float, precision int) string {
	y := new(big.Float).SetPrec(floatPrec).Sub(x, floorFloat(x))

	sixteen := newFloat(16)
	digits := make([]byte, precision)
	for i := 0; i < precision; i++ {
		y.Mul(y, sixteen)

		var ip big.Int
		y.Int(&ip)
		nibble := ip.Int64()
		digits[i] = hexDigits[nibble]

		y.Sub(y, new(big.Float).SetPrec(floatPrec).SetInt64(nibble))
	}
	return string(digits)
}
