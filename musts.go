package fixedpoint

import "fmt"

// MustAdd is like [FixedPoint.Add] but panics if the scales differ.
func (d FixedPoint) MustAdd(e FixedPoint) FixedPoint {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [FixedPoint.Sub] but panics if the scales differ.
func (d FixedPoint) MustSub(e FixedPoint) FixedPoint {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [FixedPoint.Mul] but panics if the scales differ.
func (d FixedPoint) MustMul(e FixedPoint) FixedPoint {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [FixedPoint.Quo] but panics if the scales differ
// or e is 0.
func (d FixedPoint) MustQuo(e FixedPoint) FixedPoint {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}
