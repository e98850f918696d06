package fixedpoint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// FixedPoint type is a representation of a binary fixed-point number.
// The zero value is the numeric value of 0 with a scale of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fixed-point type is a struct with two parameters:
//
//   - Raw: a 64-bit signed integer holding the value multiplied by 2^Scale.
//   - Scale: a non-negative integer indicating the number of fractional bits.
//
// For example, a fixed-point value with a raw value of 0x38000 and a scale of 16
// represents the value 3.5.
// Values are never normalized, so the same number can have multiple
// representations: 1 with scale 0 and 0x10000 with scale 16 both represent 1,
// but they are not equal.
type FixedPoint struct {
	raw   int64 // the value multiplied by 2^scale
	scale int8  // the number of fractional bits
}

const (
	MaxScale     = 63 // maximum number of fractional bits
	DefaultScale = 16 // number of fractional bits used by [FromInt]
)

var (
	errScaleRange        = errors.New("scale out of range")
	errScaleMismatch     = errors.New("scale mismatch")
	errDivisionByZero    = errors.New("division by zero")
	errRawOverflow       = errors.New("raw value overflow")
	errInvalidFixedPoint = errors.New("invalid fixed-point")
)

func newFixedPoint(raw int64, scale int) (FixedPoint, error) {
	if scale < 0 || scale > MaxScale {
		return FixedPoint{}, errScaleRange
	}
	return FixedPoint{raw: raw, scale: int8(scale)}, nil
}

// New returns a fixed-point number equal to raw / 2^scale.
// New returns an error if scale is less than 0 or greater than [MaxScale].
func New(raw int64, scale int) (FixedPoint, error) {
	return newFixedPoint(raw, scale)
}

// MustNew is like [New] but panics if the fixed-point number cannot be constructed.
// It simplifies safe initialization of global variables holding fixed-point numbers.
func MustNew(raw int64, scale int) FixedPoint {
	d, err := New(raw, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", raw, scale, err))
	}
	return d
}

// Zero returns a fixed-point number with a value 0 and the given scale.
func Zero(scale int) (FixedPoint, error) {
	return newFixedPoint(0, scale)
}

// MustZero is like [Zero] but panics if the scale is out of range.
func MustZero(scale int) FixedPoint {
	d, err := Zero(scale)
	if err != nil {
		panic(fmt.Sprintf("MustZero(%v) failed: %v", scale, err))
	}
	return d
}

// NewFromInt64 returns a fixed-point number equal to whole with the given scale.
// The raw value is computed as whole << scale.
// If the shift does not fit into 64 bits the raw value wraps around,
// the same way a native int64 shift does.
//
// NewFromInt64 returns an error if scale is less than 0 or greater than [MaxScale].
func NewFromInt64(whole int64, scale int) (FixedPoint, error) {
	if scale < 0 || scale > MaxScale {
		return FixedPoint{}, errScaleRange
	}
	return newFixedPoint(whole<<scale, scale)
}

// MustNewFromInt64 is like [NewFromInt64] but panics if the scale is out of range.
func MustNewFromInt64(whole int64, scale int) FixedPoint {
	d, err := NewFromInt64(whole, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromInt64(%v, %v) failed: %v", whole, scale, err))
	}
	return d
}

// FromInt returns a fixed-point number equal to n with a scale of [DefaultScale].
// It is the explicit form of promoting an integer into fixed-point expressions.
func FromInt(n int64) FixedPoint {
	return MustNewFromInt64(n, DefaultScale)
}

// NewFromFloat64 converts a float to a fixed-point number with the given scale.
// The raw value is f * 2^scale truncated towards zero, it is never rounded.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - f * 2^scale does not fit into a 64-bit integer;
//   - the scale is less than 0 or greater than [MaxScale].
func NewFromFloat64(f float64, scale int) (FixedPoint, error) {
	if scale < 0 || scale > MaxScale {
		return FixedPoint{}, errScaleRange
	}
	raw, ok := truncFloat(f * pow2[scale])
	if !ok {
		return FixedPoint{}, fmt.Errorf("converting %v: %w", f, errRawOverflow)
	}
	return newFixedPoint(raw, scale)
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the float cannot be converted.
func MustNewFromFloat64(f float64, scale int) FixedPoint {
	d, err := NewFromFloat64(f, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v, %v) failed: %v", f, scale, err))
	}
	return d
}

// NewFromDecimal converts a decimal to a fixed-point number with the given scale.
// Fractional bits that cannot be represented are truncated towards zero.
//
// NewFromDecimal returns an error if the raw value does not fit into
// a 64-bit integer or the scale is out of range.
func NewFromDecimal(d decimal.Decimal, scale int) (FixedPoint, error) {
	if scale < 0 || scale > MaxScale {
		return FixedPoint{}, errScaleRange
	}
	raw := d.Mul(decimal.NewFromBigInt(bpow2[scale], 0)).BigInt()
	if !raw.IsInt64() {
		return FixedPoint{}, fmt.Errorf("converting %v: %w", d, errRawOverflow)
	}
	return newFixedPoint(raw.Int64(), scale)
}

// NewFromFixed converts a [fixed.Fixed] to a fixed-point number with the given scale.
// Also see [NewFromDecimal].
func NewFromFixed(f fixed.Fixed, scale int) (FixedPoint, error) {
	if f.IsNaN() {
		return FixedPoint{}, fmt.Errorf("converting NaN: %w", errInvalidFixedPoint)
	}
	d, err := decimal.NewFromString(f.String())
	if err != nil {
		return FixedPoint{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return NewFromDecimal(d, scale)
}

// Zero returns fixed-point number with a value 0 but the same scale as d.
func (d FixedPoint) Zero() FixedPoint {
	return FixedPoint{scale: d.scale}
}

// One returns fixed-point number with a value 1 but the same scale as d.
// At [MaxScale] the value 1 is not representable and the raw value wraps.
func (d FixedPoint) One() FixedPoint {
	return FixedPoint{raw: unit(d.Scale()), scale: d.scale}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// fixed-point number with the same scale as d, which is 2^-scale.
func (d FixedPoint) ULP() FixedPoint {
	return FixedPoint{raw: 1, scale: d.scale}
}

// Raw returns the raw value of d, which is d * 2^scale.
func (d FixedPoint) Raw() int64 {
	return d.raw
}

// Scale returns number of fractional bits.
func (d FixedPoint) Scale() int {
	return int(d.scale)
}

// Whole returns the integer part of d truncated towards zero.
// For example, the whole part of -1.5 is -1, not -2.
func (d FixedPoint) Whole() int64 {
	// Arithmetic shift rounds towards negative infinity.
	w := d.raw >> uint(d.scale)
	if d.raw < 0 && d.Fraction() != 0 {
		w++
	}
	return w
}

// Fraction returns the fractional bits of the raw value, i.e. the lowest
// scale bits interpreted as an unsigned number.
// For negative numbers these are the bits of the two's complement raw value,
// so the fraction of -1.25 with a scale of 16 is 0xC000.
func (d FixedPoint) Fraction() uint64 {
	return uint64(d.raw) & fracMask(d.Scale())
}

// IsInt returns true if fractional part of d is zero.
func (d FixedPoint) IsInt() bool {
	return d.Fraction() == 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d FixedPoint) Sign() int {
	switch {
	case d.raw < 0:
		return -1
	case d.raw > 0:
		return 1
	}
	return 0
}

// IsNeg returns true if d < 0.
func (d FixedPoint) IsNeg() bool {
	return d.raw < 0
}

// IsPos returns true if d > 0.
func (d FixedPoint) IsPos() bool {
	return d.raw > 0
}

// IsZero returns true if d == 0.
func (d FixedPoint) IsZero() bool {
	return d.raw == 0
}

// Neg returns a fixed-point number with the opposite sign.
func (d FixedPoint) Neg() FixedPoint {
	return FixedPoint{raw: -d.raw, scale: d.scale}
}

// Abs returns the absolute value of d.
func (d FixedPoint) Abs() FixedPoint {
	if d.raw < 0 {
		return d.Neg()
	}
	return d
}

// Equal returns true if d and e have the same raw value and the same scale.
// Numerically equal fixed-point numbers with different scales are not equal.
func (d FixedPoint) Equal(e FixedPoint) bool {
	return d == e
}

func checkScales(d, e FixedPoint) error {
	if d.scale != e.scale {
		return fmt.Errorf("%v bits and %v bits: %w", d.Scale(), e.Scale(), errScaleMismatch)
	}
	return nil
}

// Add returns the sum of d and e.
// The raw value of the sum wraps around on overflow.
//
// Add returns an error if d and e have different scales.
func (d FixedPoint) Add(e FixedPoint) (FixedPoint, error) {
	if err := checkScales(d, e); err != nil {
		return FixedPoint{}, err
	}
	return FixedPoint{raw: d.raw + e.raw, scale: d.scale}, nil
}

// Sub returns the difference of d and e.
// The raw value of the difference wraps around on overflow.
//
// Sub returns an error if d and e have different scales.
func (d FixedPoint) Sub(e FixedPoint) (FixedPoint, error) {
	if err := checkScales(d, e); err != nil {
		return FixedPoint{}, err
	}
	return FixedPoint{raw: d.raw - e.raw, scale: d.scale}, nil
}

// Mul returns the product of d and e.
// The product of the raw values carries 2 * scale fractional bits
// and is shifted right by scale to restore the scale of d.
// The shift is arithmetic, so inexact products are rounded towards negative infinity.
// The raw value of the product wraps around on overflow.
//
// Mul returns an error if d and e have different scales.
func (d FixedPoint) Mul(e FixedPoint) (FixedPoint, error) {
	if err := checkScales(d, e); err != nil {
		return FixedPoint{}, err
	}
	return FixedPoint{raw: (d.raw * e.raw) >> uint(d.scale), scale: d.scale}, nil
}

// Quo returns the quotient of d and e.
// The dividend is shifted left by scale before the integer division,
// so the quotient keeps the scale of d.
// Inexact quotients are truncated towards zero.
// The raw value wraps around on overflow.
//
// Quo returns an error if:
//   - d and e have different scales;
//   - e is 0.
func (d FixedPoint) Quo(e FixedPoint) (FixedPoint, error) {
	if err := checkScales(d, e); err != nil {
		return FixedPoint{}, err
	}
	if e.IsZero() {
		return FixedPoint{}, errDivisionByZero
	}
	return FixedPoint{raw: (d.raw << uint(d.scale)) / e.raw, scale: d.scale}, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp returns an error if d and e have different scales.
func (d FixedPoint) Cmp(e FixedPoint) (int, error) {
	if err := checkScales(d, e); err != nil {
		return 0, err
	}
	switch {
	case d.raw < e.raw:
		return -1, nil
	case d.raw > e.raw:
		return 1, nil
	}
	return 0, nil
}

// Float64 returns the nearest binary floating-point number to d,
// computed as raw / 2^scale.
// This conversion is the only one that does not truncate,
// but it loses precision for raw values wider than 53 bits.
func (d FixedPoint) Float64() float64 {
	return float64(d.raw) / pow2[d.Scale()]
}

// Int64 returns the integer part of d truncated towards zero.
// Also see method [FixedPoint.Whole].
func (d FixedPoint) Int64() int64 {
	return d.Whole()
}

// Decimal returns the exact decimal value of d.
// Any binary fraction has a finite decimal expansion, so no rounding occurs.
func (d FixedPoint) Decimal() decimal.Decimal {
	coef := new(big.Int).Mul(big.NewInt(d.raw), bpow5[d.Scale()])
	return decimal.NewFromBigInt(coef, -int32(d.scale))
}

// Fixed returns d converted to a [fixed.Fixed], which keeps 7 decimal places.
// Excess decimal places are truncated towards zero.
//
// Fixed returns an error if the integer part of d does not fit into [fixed.Fixed].
func (d FixedPoint) Fixed() (fixed.Fixed, error) {
	const places = 7
	v := d.Decimal().Shift(places).BigInt()
	if v.CmpAbs(fixedLimit) >= 0 {
		return fixed.ZERO, fmt.Errorf("converting %v: %w", d, errRawOverflow)
	}
	return fixed.NewI(v.Int64(), places), nil
}

// fixedLimit is the exclusive bound of the scaled value of a [fixed.Fixed].
var fixedLimit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// String method implements the [fmt.Stringer] interface and returns
// the floating-point approximation of d in the shortest form
// that represents [FixedPoint.Float64] exactly.
// Use [FixedPoint.Decimal] for the exact value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d FixedPoint) String() string {
	return strconv.FormatFloat(d.Float64(), 'g', -1, 64)
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The text is the exact decimal value of d.
// Also see method [FixedPoint.Decimal].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d FixedPoint) MarshalText() ([]byte, error) {
	return []byte(d.Decimal().String()), nil
}

// binaryLen is the length of the binary encoding: one byte of scale
// followed by the big-endian raw value.
const binaryLen = 9

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d FixedPoint) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binaryLen)
	buf[0] = byte(d.scale)
	binary.BigEndian.PutUint64(buf[1:], uint64(d.raw))
	return buf, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *FixedPoint) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return fmt.Errorf("unmarshaling %v bytes: %w", len(data), errInvalidFixedPoint)
	}
	f, err := newFixedPoint(int64(binary.BigEndian.Uint64(data[1:])), int(data[0]))
	if err != nil {
		return fmt.Errorf("unmarshaling: %w", err)
	}
	*d = f
	return nil
}
