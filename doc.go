/*
Package fixedpoint implements immutable binary fixed-point numbers.
It is designed for code paths that need deterministic arithmetic,
producing bit-identical results on every platform, while still
interoperating with native integers and floats at the boundary.

# Representation

[FixedPoint] is a struct with two fields:

  - Raw: a signed 64-bit integer holding the value multiplied by 2^Scale.
  - Scale: a non-negative integer indicating the number of fractional bits.
    For example, a fixed-point number with a raw value of 0x38000 and
    a scale of 16 represents the value 3.5.
    The range of allowed values for the scale is from 0 to 63.

The numerical value of a fixed-point number is calculated as:

  - Raw / 2^Scale

Values are never normalized.
The same numeric value can have multiple representations, and they
are not equal: 1 with scale 0 and 0x10000 with scale 16 are different values
of the [FixedPoint] type.

# Constraints

The range of a fixed-point number is determined by its scale.
Here are the ranges for frequently used scales:

	| Scale | Minimum                    | Maximum                                | Resolution   |
	| ----- | -------------------------- | -------------------------------------- | ------------ |
	| 0     | -9,223,372,036,854,775,808 | 9,223,372,036,854,775,807              | 1            |
	| 8     |    -36,028,797,018,963,968 |    36,028,797,018,963,967.99609375     | 0.00390625   |
	| 16    |        -140,737,488,355,328 |        140,737,488,355,327.9999847412 | 0.0000152588 |
	| 32    |             -2,147,483,648 |             2,147,483,647.9999999998   | 2.3283e-10   |

# Conversions

The package provides methods for converting fixed-point numbers:

  - from/to int64:
    [NewFromInt64], [FromInt], [FixedPoint.Whole], [FixedPoint.Int64].
  - from/to float64:
    [NewFromFloat64], [FixedPoint.Float64], [FixedPoint.String].
  - from/to decimal.Decimal:
    [NewFromDecimal], [FixedPoint.Decimal], [FixedPoint.MarshalText].
  - from/to fixed.Fixed:
    [NewFromFixed], [FixedPoint.Fixed].

None of the conversions is implicit.
Conversions to integers truncate towards zero, so the whole part of -1.5 is -1.
Conversions from floats also truncate towards zero, they never round.

# Operations

Arithmetic operations are carried out on the raw values using int64 arithmetic:

  - [FixedPoint.Add]: d + e.
  - [FixedPoint.Sub]: d - e.
  - [FixedPoint.Mul]: (d * e) >> scale.
  - [FixedPoint.Quo]: (d << scale) / e.

The result always has the scale of the receiver.
Operands must have the same scale, otherwise an error is returned.

Unlike [decimal.Decimal], there is no overflow detection.
Raw values wrap around on overflow exactly as native int64 values do.
This keeps the results reproducible bit for bit.

# Errors

Errors are returned in the following cases:

  - Scale Mismatch.
    Binary operations and [FixedPoint.Cmp] return an error if the operands
    have different scales.

  - Division by Zero.
    [FixedPoint.Quo] returns an error if the divisor is 0.
    [FixedPoint.MustQuo] panics, like integer division does.

  - Out of range.
    Constructors return an error if the scale is out of range,
    or if a float, decimal or fixed value does not fit into the raw value.

[decimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
*/
package fixedpoint
