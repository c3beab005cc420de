// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun_test

import (
	"testing"

	"code.hybscloud.com/pfun"
)

func TestEitherRight(t *testing.T) {
	e := pfun.Right(42)
	if !e.IsRight() || e.IsLeft() {
		t.Fatal("expected Right")
	}
	v, ok := e.GetRight()
	if !ok || v != 42 {
		t.Fatalf("GetRight() = (%v, %v), want (42, true)", v, ok)
	}
	if _, ok := e.GetLeft(); ok {
		t.Fatal("GetLeft() should return false for Right")
	}
	if !pfun.EitherOf(42).Equals(e) {
		t.Fatal("EitherOf(42) != Right(42)")
	}
}

func TestEitherLeft(t *testing.T) {
	e := pfun.Left("error")
	if !e.IsLeft() || e.IsRight() {
		t.Fatal("expected Left")
	}
	v, ok := e.GetLeft()
	if !ok || v != "error" {
		t.Fatalf("GetLeft() = (%v, %v), want (error, true)", v, ok)
	}
	if _, ok := e.GetRight(); ok {
		t.Fatal("GetRight() should return false for Left")
	}
}

func TestEitherMap(t *testing.T) {
	if got := pfun.Right(21).Map(double); !got.Equals(pfun.Right(42)) {
		t.Fatalf("Right.Map = %v, want Right(42)", got)
	}
	if got := pfun.Left("e").Map(double); !got.Equals(pfun.Left("e")) {
		t.Fatalf("Left.Map = %v, want Left(e)", got)
	}
	upper := func(x pfun.Erased) pfun.Erased { return x.(string) + "!" }
	if got := pfun.Left("e").MapLeft(upper); !got.Equals(pfun.Left("e!")) {
		t.Fatalf("Left.MapLeft = %v, want Left(e!)", got)
	}
	if got := pfun.Right(1).MapLeft(upper); !got.Equals(pfun.Right(1)) {
		t.Fatalf("Right.MapLeft = %v, want Right(1)", got)
	}
}

func TestEitherApDoesNotMerge(t *testing.T) {
	if got := pfun.Left("e").Ap(pfun.Right(1)); !got.Equals(pfun.Left("e")) {
		t.Fatalf("Left(e).Ap(Right(1)) = %v, want Left(e)", got)
	}
	if got := pfun.Right(double).Ap(pfun.Left("e")); !got.Equals(pfun.Left("e")) {
		t.Fatalf("Right(f).Ap(Left(e)) = %v, want Left(e)", got)
	}
	if got := pfun.Left("a").Ap(pfun.Left("b")); !got.Equals(pfun.Left("a")) {
		t.Fatalf("Left(a).Ap(Left(b)) = %v, want Left(a)", got)
	}
	if got := pfun.Right(double).Ap(pfun.Right(21)); !got.Equals(pfun.Right(42)) {
		t.Fatalf("Right(f).Ap(Right(21)) = %v, want Right(42)", got)
	}
}

func TestEitherBind(t *testing.T) {
	positive := func(x pfun.Erased) pfun.Either {
		if x.(int) <= 0 {
			return pfun.Left("not positive")
		}
		return pfun.Right(x)
	}
	if got := pfun.Right(1).Bind(positive); !got.Equals(pfun.Right(1)) {
		t.Fatalf("got %v, want Right(1)", got)
	}
	if got := pfun.Right(0).Bind(positive); !got.Equals(pfun.Left("not positive")) {
		t.Fatalf("got %v, want Left(not positive)", got)
	}
	if got := pfun.Left("first").Bind(positive); !got.Equals(pfun.Left("first")) {
		t.Fatalf("got %v, want Left(first)", got)
	}
}

func TestEitherGetOrElse(t *testing.T) {
	length := func(e pfun.Erased) pfun.Erased { return len(e.(string)) }
	if got := pfun.Right(42).GetOrElse(length); got != 42 {
		t.Fatalf("got %v, want 42", got)
	}
	if got := pfun.Left("four").GetOrElse(length); got != 4 {
		t.Fatalf("handler should receive the Left payload: got %v, want 4", got)
	}
}

func TestEitherFromNullable(t *testing.T) {
	var np *int
	if !pfun.EitherFromNullable(nil).IsLeft() || !pfun.EitherFromNullable(np).IsLeft() {
		t.Fatal("nil should give Left")
	}
	if got := pfun.EitherFromNullable(0); !got.Equals(pfun.Right(0)) {
		t.Fatalf("got %v, want Right(0)", got)
	}
}

func TestEitherConversions(t *testing.T) {
	if got := pfun.Right(1).ToMaybe(); !got.Equals(pfun.Just(1)) {
		t.Fatalf("ToMaybe = %v, want Just(1)", got)
	}
	if got := pfun.Left("e").ToMaybe(); !got.IsNothing() {
		t.Fatalf("ToMaybe = %v, want Nothing", got)
	}
	if got := pfun.Left("e").ToValidation(); !got.Equals(pfun.Failure("e")) {
		t.Fatalf("ToValidation = %v, want Failure(e)", got)
	}
	if got := pfun.Right(1).ToValidation(); !got.Equals(pfun.Success(1)) {
		t.Fatalf("ToValidation = %v, want Success(1)", got)
	}
}

func TestMatchEither(t *testing.T) {
	describe := func(e pfun.Either) string {
		return pfun.MatchEither(e,
			func(l pfun.Erased) string { return "left:" + l.(string) },
			func(r pfun.Erased) string { return "right" },
		)
	}
	if got := describe(pfun.Left("x")); got != "left:x" {
		t.Fatalf("got %q, want %q", got, "left:x")
	}
	if got := describe(pfun.Right(1)); got != "right" {
		t.Fatalf("got %q, want %q", got, "right")
	}
	if s := pfun.Left("x").String(); s != "Left(x)" {
		t.Fatalf("String() = %q, want %q", s, "Left(x)")
	}
}

func TestEitherEquals(t *testing.T) {
	if pfun.Left(1).Equals(pfun.Right(1)) {
		t.Fatal("Left(1) should not equal Right(1)")
	}
	if !pfun.Left(1).Equals(pfun.Left(1)) {
		t.Fatal("Left(1) should equal Left(1)")
	}
	if pfun.Right(1).Equals(pfun.Right(2)) {
		t.Fatal("Right(1) should not equal Right(2)")
	}
}
