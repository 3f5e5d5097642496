package types

import "math/big"

// compareInt64 compares two exact int64 values.
func compareInt64(x, y int64) Int {
	switch {
	case x < y:
		return IntNegOne
	case x > y:
		return IntOne
	default:
		return IntZero
	}
}

// compareIntUint compares an int64 against a uint64 using arbitrary
// precision, contract that exact-integer cross comparisons
// never lose precision near 2^53.
func compareIntUint(x int64, y uint64) Int {
	bx := big.NewInt(x)
	by := new(big.Int).SetUint64(y)
	return Int(bx.Cmp(by))
}

// compareIntDouble compares an int64 against a float64 by converting the
// integer to double, accepting standard IEEE-754 boundary semantics.
func compareIntDouble(x int64, y float64) Int {
	return compareFloat(float64(x), y)
}

func compareUintDouble(x uint64, y float64) Int {
	return compareFloat(float64(x), y)
}

// compareFloat returns -1/0/1. Callers that must implement NaN
// rule ("relational ops yield false, never error") check for NaN with
// math.IsNaN before calling, since there is no ordering to report here.
func compareFloat(x, y float64) Int {
	switch {
	case x < y:
		return IntNegOne
	case x > y:
		return IntOne
	default:
		return IntZero
	}
}
