// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/pfun"
)

var add = pfun.Curry(func(args ...pfun.Erased) pfun.Erased {
	return args[0].(int) + args[1].(int)
}, 2)

var add3 = pfun.Curry(func(args ...pfun.Erased) pfun.Erased {
	return args[0].(int) + args[1].(int) + args[2].(int)
}, 3)

func TestLiftA(t *testing.T) {
	if got := pfun.LiftA(double, pfun.Just(21)); !got.Equals(pfun.Just(42)) {
		t.Fatalf("got %v, want Just(42)", got)
	}
	half := func(n int) int { return n / 2 }
	if got := pfun.LiftA(half, pfun.Right(84)); !got.Equals(pfun.Right(42)) {
		t.Fatalf("reflected callable: got %v, want Right(42)", got)
	}
}

func TestLiftA2(t *testing.T) {
	if got := pfun.LiftA2(add, pfun.Just(40), pfun.Just(2)); !got.Equals(pfun.Just(42)) {
		t.Fatalf("got %v, want Just(42)", got)
	}
	if got := pfun.LiftA2(add, pfun.Just(40), pfun.Nothing()); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if got := pfun.LiftA2(add, pfun.Failure("a"), pfun.Failure("b")); !got.Equals(pfun.Failure("a", "b")) {
		t.Fatalf("got %v, want Failure(a, b)", got)
	}
}

func TestLiftA3(t *testing.T) {
	if got := pfun.LiftA3(add3, pfun.Right(40), pfun.Right(1), pfun.Right(1)); !got.Equals(pfun.Right(42)) {
		t.Fatalf("got %v, want Right(42)", got)
	}
	got := pfun.LiftA3(add3, pfun.Failure("a"), pfun.Success(1), pfun.Failure("c"))
	if !got.Equals(pfun.Failure("a", "c")) {
		t.Fatalf("got %v, want Failure(a, c)", got)
	}
}

func TestApFree(t *testing.T) {
	if got := pfun.Ap(pfun.Just(double), pfun.Just(21)); !got.Equals(pfun.Just(42)) {
		t.Fatalf("got %v, want Just(42)", got)
	}
}

func TestSequenceMaybe(t *testing.T) {
	all := pfun.Sequence(pfun.MaybeOf, []pfun.Maybe{pfun.Just(1), pfun.Just(2), pfun.Just(3)})
	if want := pfun.Just([]pfun.Erased{1, 2, 3}); !all.Equals(want) {
		t.Fatalf("got %v, want %v", all, want)
	}
	withNothing := pfun.Sequence(pfun.MaybeOf, []pfun.Maybe{pfun.Just(1), pfun.Just(1), pfun.Nothing(), pfun.Just(1)})
	if !withNothing.IsNothing() {
		t.Fatalf("got %v, want Nothing", withNothing)
	}
	empty := pfun.Sequence(pfun.MaybeOf, nil)
	if want := pfun.Just([]pfun.Erased{}); !empty.Equals(want) {
		t.Fatalf("got %v, want %v", empty, want)
	}
}

func TestSequenceEitherKeepsFirstLeft(t *testing.T) {
	got := pfun.Sequence(pfun.EitherOf, []pfun.Either{pfun.Right(1), pfun.Left("first"), pfun.Left("second")})
	if !got.Equals(pfun.Left("first")) {
		t.Fatalf("got %v, want Left(first)", got)
	}
}

func TestSequenceValidationDoesNotAccumulate(t *testing.T) {
	xs := []pfun.Validation{pfun.Success(1), pfun.Failure("a"), pfun.Failure("b")}
	if got := pfun.Sequence(pfun.ValidationOf, xs); !got.Equals(pfun.Failure("a")) {
		t.Fatalf("Sequence = %v, want Failure(a)", got)
	}
	if got := pfun.SequenceA(pfun.ValidationOf, xs); !got.Equals(pfun.Failure("a", "b")) {
		t.Fatalf("SequenceA = %v, want Failure(a, b)", got)
	}
	ok := []pfun.Validation{pfun.Success(1), pfun.Success(2)}
	if got := pfun.SequenceA(pfun.ValidationOf, ok); !got.Equals(pfun.Success([]pfun.Erased{1, 2})) {
		t.Fatalf("SequenceA = %v, want Success([1 2])", got)
	}
}

func TestSequenceDoesNotAlias(t *testing.T) {
	base := pfun.Sequence(pfun.MaybeOf, []pfun.Maybe{pfun.Just(1)})
	a := base.Bind(func(xs pfun.Erased) pfun.Maybe {
		return pfun.Sequence(pfun.MaybeOf, []pfun.Maybe{pfun.Just(xs.([]pfun.Erased)[0]), pfun.Just(2)})
	})
	if !base.Equals(pfun.Just([]pfun.Erased{1})) || !a.Equals(pfun.Just([]pfun.Erased{1, 2})) {
		t.Fatalf("base = %v, a = %v", base, a)
	}
}

func TestMapM(t *testing.T) {
	parse := func(s string) pfun.Either {
		if s == "" {
			return pfun.Left("empty")
		}
		return pfun.Right(len(s))
	}
	if got := pfun.MapM(pfun.EitherOf, parse, []string{"a", "bb"}); !got.Equals(pfun.Right([]pfun.Erased{1, 2})) {
		t.Fatalf("got %v, want Right([1 2])", got)
	}
	if got := pfun.MapM(pfun.EitherOf, parse, []string{"a", "", "c"}); !got.Equals(pfun.Left("empty")) {
		t.Fatalf("got %v, want Left(empty)", got)
	}
}

func TestTraverse(t *testing.T) {
	positive := func(n int) pfun.Validation {
		if n <= 0 {
			return pfun.Failure(n)
		}
		return pfun.Success(n)
	}
	got := pfun.Traverse(pfun.ValidationOf, positive, []int{1, -1, 2, 0})
	if !got.Equals(pfun.Failure(-1, 0)) {
		t.Fatalf("got %v, want Failure(-1, 0)", got)
	}
}

func TestFilterM(t *testing.T) {
	isBool := func(x pfun.Erased) pfun.Maybe {
		if _, ok := x.(bool); ok {
			return pfun.Just(x)
		}
		return pfun.Nothing()
	}
	withString := pfun.FilterM(pfun.MaybeOf, isBool, []pfun.Erased{true, true, "x", false})
	if !withString.IsNothing() {
		t.Fatalf("got %v, want Nothing", withString)
	}
	bools := pfun.FilterM(pfun.MaybeOf, isBool, []pfun.Erased{true, true, false})
	if want := pfun.Just([]pfun.Erased{true, true}); !bools.Equals(want) {
		t.Fatalf("got %v, want %v", bools, want)
	}
}

func TestFilterMStopsAfterFailure(t *testing.T) {
	var seen []int
	even := func(n int) pfun.Either {
		seen = append(seen, n)
		if n < 0 {
			return pfun.Left(n)
		}
		return pfun.Right(n%2 == 0)
	}
	got := pfun.FilterM(pfun.EitherOf, even, []int{1, 2, -3, 4})
	if !got.Equals(pfun.Left(-3)) {
		t.Fatalf("got %v, want Left(-3)", got)
	}
	if !slices.Equal(seen, []int{1, 2, -3}) {
		t.Fatalf("predicate saw %v, want [1 2 -3]", seen)
	}
	ok := pfun.FilterM(pfun.EitherOf, even, []int{1, 2, 3, 4})
	if !ok.Equals(pfun.Right([]int{2, 4})) {
		t.Fatalf("got %v, want Right([2 4])", ok)
	}
}

func TestComposeM(t *testing.T) {
	parse := func(s string) pfun.Maybe {
		if s == "" {
			return pfun.Nothing()
		}
		return pfun.Just(len(s))
	}
	half := func(x pfun.Erased) pfun.Maybe {
		if x.(int)%2 != 0 {
			return pfun.Nothing()
		}
		return pfun.Just(x.(int) / 2)
	}
	f := pfun.ComposeM(parse, half)
	if got := f("abcd"); !got.Equals(pfun.Just(2)) {
		t.Fatalf("got %v, want Just(2)", got)
	}
	if got := f("abc"); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if got := f(""); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestJoin(t *testing.T) {
	if got := pfun.Join(pfun.Just(pfun.Just(42))); !got.Equals(pfun.Just(42)) {
		t.Fatalf("got %v, want Just(42)", got)
	}
	if got := pfun.Join(pfun.Just(pfun.Nothing())); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if got := pfun.Join(pfun.Right(pfun.Left("e"))); !got.Equals(pfun.Left("e")) {
		t.Fatalf("got %v, want Left(e)", got)
	}
	if got := pfun.Join(pfun.Done(pfun.Done(42))).Run(); got != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}
