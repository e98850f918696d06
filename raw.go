package fixedpoint

import (
	"math"
	"math/big"
)

// unit returns the raw value of 1 at the given scale, i.e. 2^scale.
// At scale 63 the result wraps to math.MinInt64, as the native shift does.
func unit(scale int) int64 {
	return 1 << scale
}

// fracMask returns the mask selecting the fractional bits of a raw value,
// which is equal to 2^scale - 1.
func fracMask(scale int) uint64 {
	return 1<<scale - 1
}

// pow2 is a cache of powers of 2 as floats, where pow2[x] = 2^x.
var pow2 = func() [MaxScale + 1]float64 {
	var p [MaxScale + 1]float64
	for i := range p {
		p[i] = math.Ldexp(1, i)
	}
	return p
}()

// bpow5 is a cache of powers of 5, where bpow5[x] = 5^x.
// Since 2^-x = 5^x / 10^x, these are used to render raw values as exact decimals.
var bpow5 = func() [MaxScale + 1]*big.Int {
	var p [MaxScale + 1]*big.Int
	five := big.NewInt(5)
	for i := range p {
		p[i] = new(big.Int).Exp(five, big.NewInt(int64(i)), nil)
	}
	return p
}()

// bpow2 is a cache of powers of 2, where bpow2[x] = 2^x.
var bpow2 = func() [MaxScale + 1]*big.Int {
	var p [MaxScale + 1]*big.Int
	for i := range p {
		p[i] = new(big.Int).Lsh(big.NewInt(1), uint(i))
	}
	return p
}()

// truncFloat converts f to int64 rounding towards zero.
// It returns false if f is NaN, infinite or does not fit into int64.
func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	// -2^63 is exact in float64, 2^63 is the first value out of range.
	if f < -pow2[63] || f >= pow2[63] {
		return 0, false
	}
	return int64(f), true
}
