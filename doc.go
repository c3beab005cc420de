// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pfun provides currying with placeholders, algebraic containers
// and lifting combinators for Go.
//
// # Design Philosophy
//
// pfun provides:
//   - A curry engine that never invokes a function before its arity is met
//   - Containers whose failure modes are values, not errors or panics
//   - Combinators written once against F-bounded contracts and reused by
//     every container family
//
// # Curry Engine
//
// [Curry] wraps a [Func] with an explicit arity. [CurryFunc] infers the
// arity of any Go function by reflection; [CurryFuncN] forces it, which is
// how variadic functions become curryable.
//
//	add := pfun.Curry(func(args ...pfun.Erased) pfun.Erased {
//		return args[0].(int) + args[1].(int)
//	}, 2)
//	add.Call(40, 2)                                    // 42
//	add.Call(40).(pfun.Curried).Call(2)                // 42
//	add.Call(pfun.Placeholder, 2).(pfun.Curried).Call(40) // 42
//
// A [Placeholder] reserves a slot that is filled, left to right, by the
// trailing arguments of a later call. Supplying more bound arguments than
// the arity panics with an [*ArityError]; [Curried.TryCall] returns it.
//
// # F-Bounded Contracts
//
// Go has no higher-kinded types. Each contract is parameterized by the
// concrete container type itself:
//
//   - [Functor]: Map(func(Erased) Erased) F
//   - [Applicative]: Functor plus Ap(F) F
//   - [Monad]: Applicative plus Bind(func(Erased) F) F
//   - [Eq]: Equals(F) bool
//
// # Containers
//
//   - [Maybe]: [Just] or [Nothing]; fail-fast on absence
//   - [Either]: [Right] or [Left]; fail-fast, the Left payload is kept
//   - [Validation]: [Success] or [Failure]; Ap accumulates every error
//   - [Trampoline]: [Done] or [Suspend]; stack-safe evaluation by [Trampoline.Run]
//
// All containers are immutable values. [Seql] and [Seqr] are derived from
// [LiftA2] with [Constant] and [Identity], so every family gets them.
//
// # Lifting Combinators
//
// [LiftA], [LiftA2], [LiftA3], [Ap], [Sequence], [MapM], [SequenceA],
// [Traverse], [FilterM], [ComposeM] and [Join] take the family's unit
// ([MaybeOf], [EitherOf], [ValidationOf], [TrampolineOf]) where they need
// to build a container from a plain value:
//
//	pfun.Sequence(pfun.MaybeOf, []pfun.Maybe{pfun.Just(1), pfun.Nothing()}) // Nothing
//
// [Sequence] and [MapM] are built on Bind and stop at the first failure,
// Validation included. [SequenceA] and [Traverse] are built on Ap and
// accumulate Validation errors.
//
// # Fixed Points
//
// [Fix] is the Y combinator. [FixOf] is its typed form. [FixT] suspends each
// self call in a [Trampoline] so recursion depth does not grow the Go stack.
//
// # Subpackages
//
//   - collection: generic slice operations; Head, Last, Find and FindIndex return [Maybe]
//   - ops: curried arithmetic, boolean, bitwise and relational operators with a typed registry
package pfun
