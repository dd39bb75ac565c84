// Package util provides small generic helpers for maps and exact integer
// arithmetic shared by the term model and the Diophantine solver.
package util

import (
	"golang.org/x/exp/maps"
)

// Optimized and does not have problems with integer overflow.
func AbsInt(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Floor division, rounding toward negative infinity rather than zero.
func DivFloor(n int, m int) int {
	q := n / m
	r := n % m
	if (r > 0 && m < 0) || (r < 0 && m > 0) {
		return q - 1
	}
	return q
}

// Modulo with the sign of the divisor, the counterpart of DivFloor.
func Modulo(n int, m int) int {
	r := n % m
	if (r > 0 && m < 0) || (r < 0 && m > 0) {
		return r + m
	}
	return r
}

func MapFilterValue[T comparable, V any](m map[T]V, filter func(v V) bool) map[T]V {
	res := make(map[T]V)
	for k, v := range m {
		if filter(v) {
			res[k] = v
		}
	}
	return res
}

func MergeMaps[T comparable, V any](m1 map[T]V, m2 map[T]V, combine func(v1 V, v2 V) V) map[T]V {
	res := maps.Clone(m1)
	if res == nil {
		res = make(map[T]V, len(m2))
	}
	for k, v := range m2 {
		if existing, ok := res[k]; ok {
			res[k] = combine(existing, v)
		} else {
			res[k] = v
		}
	}
	return res
}
