// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Lifting combinators.
//
// Each combinator is written once against the [Functor], [Applicative] and
// [Monad] contracts. Where a combinator must create a container from
// nothing, it takes the family's unit as its first argument
// ([MaybeOf], [EitherOf], [ValidationOf], [TrampolineOf]).

// LiftA lifts a unary function into the family: a.Map(f).
func LiftA[F Functor[F]](f Erased, a F) F {
	return a.Map(Unary(f))
}

// LiftA2 lifts a curried binary function: a1.Map(f).Ap(a2).
// f must return a callable after its first argument, such as a
// [Curried] of arity 2 or a func(Erased) Erased returning one.
func LiftA2[F Applicative[F]](f Erased, a1, a2 F) F {
	return a1.Map(Unary(f)).Ap(a2)
}

// LiftA3 lifts a curried ternary function.
func LiftA3[F Applicative[F]](f Erased, a1, a2, a3 F) F {
	return a1.Map(Unary(f)).Ap(a2).Ap(a3)
}

// Ap is the free form of the Applicative method: mf.Ap(a).
func Ap[F Applicative[F]](mf, a F) F {
	return mf.Ap(a)
}

// Sequence turns a list of containers into a container of the list of
// payloads ([]Erased), folding left with Bind from of([]Erased{}).
//
// Sequence is fail-fast for every family: the first absent or failed
// element is the result. In particular Validation failures are not
// accumulated here; use [SequenceA] for that.
func Sequence[F Monad[F]](of func(Erased) F, xs []F) F {
	acc := of([]Erased{})
	for _, x := range xs {
		acc = acc.Bind(func(v1 Erased) F {
			return x.Bind(func(v2 Erased) F {
				return of(appendCopy(v1.([]Erased), v2))
			})
		})
	}
	return acc
}

// MapM maps f over xs and sequences the results.
func MapM[F Monad[F], A any](of func(Erased) F, f func(A) F, xs []A) F {
	ms := make([]F, len(xs))
	for i, x := range xs {
		ms[i] = f(x)
	}
	return Sequence(of, ms)
}

// SequenceA is the applicative counterpart of [Sequence]. It combines the
// elements with Ap, so Validation failures of every element accumulate
// in order.
func SequenceA[F Applicative[F]](of func(Erased) F, xs []F) F {
	acc := of([]Erased{})
	for _, x := range xs {
		acc = LiftA2(snoc, acc, x)
	}
	return acc
}

// Traverse maps f over xs and combines the results with [SequenceA].
func Traverse[F Applicative[F], A any](of func(Erased) F, f func(A) F, xs []A) F {
	ms := make([]F, len(xs))
	for i, x := range xs {
		ms[i] = f(x)
	}
	return SequenceA(of, ms)
}

// FilterM keeps the elements x of xs for which f(x) holds true.
// The payload of the result is a []A. f is not called again after the
// first absent or failed result, which becomes the result.
// A present payload that is not a bool panics.
func FilterM[F Monad[F], A any](of func(Erased) F, f func(A) F, xs []A) F {
	acc := of([]A{})
	for _, x := range xs {
		acc = acc.Bind(func(vals Erased) F {
			return f(x).Bind(func(keep Erased) F {
				kept := vals.([]A)
				if keep.(bool) {
					kept = append(kept[:len(kept):len(kept)], x)
				}
				return of(kept)
			})
		})
	}
	return acc
}

// ComposeM is left-to-right Kleisli composition: a -> f(a).Bind(g).
func ComposeM[F Monad[F], A any](f func(A) F, g func(Erased) F) func(A) F {
	return func(a A) F {
		return f(a).Bind(g)
	}
}

// Join collapses one level of nesting. The payload of m must be an F.
func Join[F Monad[F]](m F) F {
	return m.Bind(func(x Erased) F {
		return x.(F)
	})
}

func snoc(xs Erased) Erased {
	return func(x Erased) Erased {
		return appendCopy(xs.([]Erased), x)
	}
}

func appendCopy(xs []Erased, x Erased) []Erased {
	out := make([]Erased, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}
