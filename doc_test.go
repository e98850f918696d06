package fixedpoint_test

import (
	"fmt"

	"github.com/govalues/fixedpoint"
)

func compound(principal, rate fixedpoint.FixedPoint, periods int) (fixedpoint.FixedPoint, error) {
	balance := principal
	for i := 0; i < periods; i++ {
		interest, err := balance.Mul(rate)
		if err != nil {
			return fixedpoint.FixedPoint{}, fmt.Errorf("period %v: %w", i, err)
		}
		balance, err = balance.Add(interest)
		if err != nil {
			return fixedpoint.FixedPoint{}, fmt.Errorf("period %v: %w", i, err)
		}
	}
	return balance, nil
}

// This example compounds 5% interest on 1000 for three periods.
// The rate 0.05 is not representable in binary and is truncated to
// 3276 / 65536 on construction, the rest of the calculation is carried
// out on integers only, so the result is the same on every platform.
func Example_compoundInterest() {
	principal := fixedpoint.FromInt(1000)
	rate := fixedpoint.MustNewFromFloat64(0.05, fixedpoint.DefaultScale)
	balance, err := compound(principal, rate, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(rate.Raw())
	fmt.Println(balance.Raw())
	fmt.Println(balance.Decimal())
	// Output:
	// 3276
	// 75863466
	// 1157.584625244140625
}

func ExampleNew() {
	fmt.Println(fixedpoint.New(0x38000, 16))
	fmt.Println(fixedpoint.New(-1, 1))
	fmt.Println(fixedpoint.New(1, 64))
	// Output:
	// 3.5 <nil>
	// -0.5 <nil>
	// 0 scale out of range
}

func ExampleZero() {
	fmt.Println(fixedpoint.Zero(16))
	// Output:
	// 0 <nil>
}

func ExampleNewFromInt64() {
	fmt.Println(fixedpoint.NewFromInt64(3, 16))
	fmt.Println(fixedpoint.NewFromInt64(-3, 2))
	// Output:
	// 3 <nil>
	// -3 <nil>
}

func ExampleNewFromFloat64() {
	fmt.Println(fixedpoint.NewFromFloat64(1.5, 16))
	fmt.Println(fixedpoint.NewFromFloat64(0.1, 4))
	fmt.Println(fixedpoint.NewFromFloat64(-0.1, 4))
	// Output:
	// 1.5 <nil>
	// 0.0625 <nil>
	// -0.0625 <nil>
}

func ExampleFromInt() {
	d := fixedpoint.FromInt(5)
	fmt.Println(d, d.Raw(), d.Scale())
	// Output:
	// 5 327680 16
}

func ExampleFixedPoint_Whole() {
	d := fixedpoint.MustNewFromFloat64(-1.5, 16)
	e := fixedpoint.MustNewFromFloat64(1.75, 16)
	fmt.Println(d.Whole())
	fmt.Println(e.Whole())
	// Output:
	// -1
	// 1
}

func ExampleFixedPoint_Fraction() {
	d := fixedpoint.MustNewFromFloat64(1.75, 16)
	e := fixedpoint.MustNewFromFloat64(1.75, 2)
	fmt.Printf("%#x\n", d.Fraction())
	fmt.Printf("%#x\n", e.Fraction())
	// Output:
	// 0xc000
	// 0x3
}

func ExampleFixedPoint_Add() {
	d := fixedpoint.FromInt(2)
	e := fixedpoint.FromInt(3)
	fmt.Println(d.Add(e))
	// Output:
	// 5 <nil>
}

func ExampleFixedPoint_Sub() {
	d := fixedpoint.FromInt(2)
	e := fixedpoint.FromInt(3)
	fmt.Println(d.Sub(e))
	// Output:
	// -1 <nil>
}

func ExampleFixedPoint_Mul() {
	d := fixedpoint.MustNewFromFloat64(1.5, 16)
	e := fixedpoint.FromInt(3)
	fmt.Println(d.Mul(e))
	fmt.Println(d.Mul(fixedpoint.MustNewFromInt64(3, 8)))
	// Output:
	// 4.5 <nil>
	// 0 16 bits and 8 bits: scale mismatch
}

func ExampleFixedPoint_Quo() {
	d := fixedpoint.FromInt(7)
	e := fixedpoint.FromInt(2)
	fmt.Println(d.Quo(e))
	fmt.Println(d.Quo(d.Zero()))
	// Output:
	// 3.5 <nil>
	// 0 division by zero
}

func ExampleFixedPoint_Float64() {
	d := fixedpoint.MustNew(0x38000, 16)
	fmt.Println(d.Float64())
	// Output:
	// 3.5
}

func ExampleFixedPoint_Int64() {
	d := fixedpoint.MustNew(-0x38000, 16)
	fmt.Println(d.Int64())
	// Output:
	// -3
}

func ExampleFixedPoint_Decimal() {
	d := fixedpoint.FromInt(1).MustQuo(fixedpoint.FromInt(3))
	fmt.Println(d)
	fmt.Println(d.Decimal())
	// Output:
	// 0.3333282470703125
	// 0.3333282470703125
}

func ExampleFixedPoint_Equal() {
	d := fixedpoint.FromInt(1)
	fmt.Println(d.Equal(fixedpoint.MustNew(0x10000, 16)))
	fmt.Println(d.Equal(fixedpoint.MustNewFromInt64(1, 8)))
	// Output:
	// true
	// false
}

func ExampleFixedPoint_String() {
	d := fixedpoint.MustNew(0x38000, 16)
	fmt.Println(d.String())
	// Output:
	// 3.5
}

func ExampleFixedPoint_MarshalBinary() {
	d := fixedpoint.MustNew(0x38000, 16)
	b, err := d.MarshalBinary()
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", b)
	// Output:
	// 10 00 00 00 00 00 03 80 00
}

func ExampleFixedPoint_UnmarshalBinary() {
	var d fixedpoint.FixedPoint
	err := d.UnmarshalBinary([]byte{0x10, 0, 0, 0, 0, 0, 0x03, 0x80, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 3.5
}
