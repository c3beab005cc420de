// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collection

import "slices"

// Map applies f to every element.
func Map[A, B any](f func(A) B, xs []A) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter keeps the elements for which f holds.
func Filter[A any](f func(A) bool, xs []A) []A {
	out := make([]A, 0, len(xs))
	for _, x := range xs {
		if f(x) {
			out = append(out, x)
		}
	}
	return out
}

// FoldL reduces xs from the left: f(f(f(init, x0), x1), x2).
func FoldL[A, B any](f func(B, A) B, init B, xs []A) B {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldR reduces xs from the right: f(x0, f(x1, f(x2, init))).
// It runs iteratively.
func FoldR[A, B any](f func(A, B) B, init B, xs []A) B {
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// ScanL is FoldL keeping every intermediate result, starting with init.
// The result has len(xs)+1 elements.
func ScanL[A, B any](f func(B, A) B, init B, xs []A) []B {
	out := make([]B, 0, len(xs)+1)
	acc := init
	out = append(out, acc)
	for _, x := range xs {
		acc = f(acc, x)
		out = append(out, acc)
	}
	return out
}

// ScanR is FoldR keeping every intermediate result, ending with init.
// The result has len(xs)+1 elements and its first element equals
// FoldR(f, init, xs).
func ScanR[A, B any](f func(A, B) B, init B, xs []A) []B {
	out := make([]B, len(xs)+1)
	acc := init
	out[len(xs)] = acc
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
		out[i] = acc
	}
	return out
}

// Reverse returns the elements in reverse order.
func Reverse[A any](xs []A) []A {
	out := slices.Clone(xs)
	slices.Reverse(out)
	return out
}

// Partition splits xs into the elements for which f holds and the rest,
// both in their original order.
func Partition[A any](f func(A) bool, xs []A) (trues, falses []A) {
	trues, falses = []A{}, []A{}
	for _, x := range xs {
		if f(x) {
			trues = append(trues, x)
		} else {
			falses = append(falses, x)
		}
	}
	return trues, falses
}

// Replicate returns n copies of a. A negative n gives an empty slice.
func Replicate[A any](n int, a A) []A {
	out := make([]A, max(n, 0))
	for i := range out {
		out[i] = a
	}
	return out
}

// Intersperse places sep between consecutive elements.
func Intersperse[A any](sep A, xs []A) []A {
	if len(xs) < 2 {
		return slices.Clone(xs)
	}
	out := make([]A, 0, 2*len(xs)-1)
	out = append(out, xs[0])
	for _, x := range xs[1:] {
		out = append(out, sep, x)
	}
	return out
}

// Concat returns xs followed by ys.
func Concat[A any](xs, ys []A) []A {
	return slices.Concat(xs, ys)
}

// SortBy returns a stably sorted copy of xs ordered by cmp, which returns
// a negative number when a sorts before b, zero when equal and a positive
// number otherwise.
func SortBy[A any](cmp func(a, b A) int, xs []A) []A {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, cmp)
	return out
}

// ZipWith combines the elements of xs and ys pairwise. The result is as
// long as the shorter input.
func ZipWith[A, B, C any](f func(A, B) C, xs []A, ys []B) []C {
	n := min(len(xs), len(ys))
	out := make([]C, n)
	for i := range n {
		out[i] = f(xs[i], ys[i])
	}
	return out
}
