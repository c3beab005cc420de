// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"code.hybscloud.com/pfun"
	"code.hybscloud.com/pfun/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   pfun.Curried
		args []pfun.Erased
		want pfun.Erased
	}{
		{"add", ops.Add[int](), []pfun.Erased{2, 3}, 5},
		{"subtract", ops.Subtract[int](), []pfun.Erased{2, 3}, -1},
		{"multiply", ops.Multiply[float64](), []pfun.Erased{1.5, 2.0}, 3.0},
		{"divide", ops.Divide[float64](), []pfun.Erased{3.0, 2.0}, 1.5},
		{"divide int", ops.Divide[int](), []pfun.Erased{7, 2}, 3},
		{"exp", ops.Exp[int](), []pfun.Erased{2, 10}, 1024},
		{"negate", ops.Negate[int](), []pfun.Erased{4}, -4},
		{"succ", ops.Succ[int](), []pfun.Erased{4}, 5},
		{"pred", ops.Pred[int](), []pfun.Erased{4}, 3},
		{"modulo", ops.Modulo[int](), []pfun.Erased{7, 3}, 1},
		{"even", ops.Even[int](), []pfun.Erased{4}, true},
		{"odd", ops.Odd[int](), []pfun.Erased{4}, false},
		{"odd negative", ops.Odd[int](), []pfun.Erased{-3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Call(tt.args...))
		})
	}
}

func TestNumericArgumentsConvert(t *testing.T) {
	assert.Equal(t, 3.5, ops.Add[float64]().Call(1, 2.5))
	assert.Equal(t, int64(3), ops.Add[int64]().Call(1, 2))
}

func TestLogic(t *testing.T) {
	assert.Equal(t, false, ops.Not().Call(true))
	assert.Equal(t, false, ops.And().Call(true, false))
	assert.Equal(t, true, ops.Or().Call(true, false))
	assert.Equal(t, ^5, ops.BitNot[int]().Call(5))
	assert.Equal(t, 0b0100, ops.BitAnd[int]().Call(0b1100, 0b0110))
	assert.Equal(t, 0b1110, ops.BitOr[int]().Call(0b1100, 0b0110))
	assert.Equal(t, 0b1010, ops.BitXor[int]().Call(0b1100, 0b0110))
	assert.Equal(t, 8, ops.LeftShift[int]().Call(1, 3))
	assert.Equal(t, 2, ops.RightShift[int]().Call(16, 3))
}

func TestRelational(t *testing.T) {
	assert.Equal(t, true, ops.Equal[string]().Call("a", "a"))
	assert.Equal(t, true, ops.NotEqual[int]().Call(1, 2))
	assert.Equal(t, true, ops.GreaterThan[int]().Call(2, 1))
	assert.Equal(t, true, ops.GreaterOrEqualTo[int]().Call(2, 2))
	assert.Equal(t, false, ops.LessThan[int]().Call(2, 2))
	assert.Equal(t, true, ops.LessOrEqualTo[int]().Call(2, 2))
}

func TestPartialApplication(t *testing.T) {
	// greaterThan(_, 10) asks "is x greater than 10".
	gt10 := ops.GreaterThan[int]().Call(pfun.Placeholder, 10).(pfun.Curried)
	assert.Equal(t, true, gt10.Call(11))
	assert.Equal(t, false, gt10.Call(10))

	inc := ops.Add[int]().Call(1).(pfun.Curried)
	got := pfun.Just(41).Map(inc.Unary())
	assert.True(t, got.Equals(pfun.Just(42)))
}

func TestParseName(t *testing.T) {
	n, err := ops.ParseName("greaterThan")
	require.NoError(t, err)
	assert.Equal(t, ops.OpGreaterThan, n)

	n, err = ops.ParseName("BITXOR")
	require.NoError(t, err)
	assert.Equal(t, ops.OpBitXor, n)

	_, err = ops.ParseName("frobnicate")
	require.ErrorIs(t, err, ops.ErrUnknownOperation)
	assert.EqualError(t, err, `ops: unknown operation "frobnicate"`)
}

func TestNameString(t *testing.T) {
	assert.Equal(t, "lessOrEqualTo", ops.OpLessOrEqualTo.String())
	assert.Equal(t, "Name(0)", ops.Name(0).String())
	assert.Equal(t, "Name(999)", ops.Name(999).String())
}

func TestTableLookup(t *testing.T) {
	ints := ops.Integral[int]()
	add, ok := ints.Lookup(ops.OpAdd).Get()
	require.True(t, ok)
	assert.Equal(t, 5, add.(pfun.Curried).Call(2, 3))

	assert.True(t, ints.Lookup(ops.OpNot).IsNothing())
	assert.True(t, ops.Arithmetic[float64]().Lookup(ops.OpModulo).IsNothing())

	assert.PanicsWithError(t, `ops: unknown operation "not"`, func() {
		ints.MustLookup(ops.OpNot)
	})
}

func TestMerge(t *testing.T) {
	all := ops.Merge(ops.Integral[int](), ops.Bitwise[int](), ops.Relational[int]())
	for _, n := range []ops.Name{ops.OpModulo, ops.OpBitXor, ops.OpLessThan} {
		assert.True(t, all.Lookup(n).IsJust(), n.String())
	}
	assert.Len(t, ops.Boolean(), 3)

	override := ops.Table{ops.OpAdd: ops.Subtract[int]()}
	merged := ops.Merge(ops.Arithmetic[int](), override)
	assert.Equal(t, -1, merged.MustLookup(ops.OpAdd).Call(2, 3))
}
