package util

import (
	"strconv"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// Round rounds x to the given number of decimal places. The decision is made
// on the exact binary value of x, so exact halves go to the even digit.
func Round[A constraints.Float](x A, places int) A {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return A(rounded)
}

func Ptr[A any](v A) *A {
	return &v
}
