// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops

import (
	"maps"
	"strconv"
	"strings"

	"code.hybscloud.com/pfun"
	"golang.org/x/exp/constraints"
)

// Name identifies an operator.
type Name int

const (
	OpAdd Name = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpExp
	OpNegate
	OpSucc
	OpPred
	OpModulo
	OpEven
	OpOdd
	OpNot
	OpAnd
	OpOr
	OpBitNot
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLeftShift
	OpRightShift
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterOrEqualTo
	OpLessThan
	OpLessOrEqualTo
)

var names = [...]string{
	OpAdd:              "add",
	OpSubtract:         "subtract",
	OpMultiply:         "multiply",
	OpDivide:           "divide",
	OpExp:              "exp",
	OpNegate:           "negate",
	OpSucc:             "succ",
	OpPred:             "pred",
	OpModulo:           "modulo",
	OpEven:             "even",
	OpOdd:              "odd",
	OpNot:              "not",
	OpAnd:              "and",
	OpOr:               "or",
	OpBitNot:           "bitNot",
	OpBitAnd:           "bitAnd",
	OpBitOr:            "bitOr",
	OpBitXor:           "bitXor",
	OpLeftShift:        "leftShift",
	OpRightShift:       "rightShift",
	OpEqual:            "equal",
	OpNotEqual:         "notEqual",
	OpGreaterThan:      "greaterThan",
	OpGreaterOrEqualTo: "greaterOrEqualTo",
	OpLessThan:         "lessThan",
	OpLessOrEqualTo:    "lessOrEqualTo",
}

func (n Name) String() string {
	if n <= 0 || int(n) >= len(names) {
		return "Name(" + strconv.Itoa(int(n)) + ")"
	}
	return names[n]
}

// ParseName returns the operator with the given name, ignoring case.
func ParseName(s string) (Name, error) {
	for n := OpAdd; int(n) < len(names); n++ {
		if strings.EqualFold(names[n], s) {
			return n, nil
		}
	}
	return 0, &UnknownOperationError{Name: s}
}

// Table maps operator names to curried operators for one operand type.
type Table map[Name]pfun.Curried

// Lookup returns Just the operator, or Nothing when t has no entry for n.
func (t Table) Lookup(n Name) pfun.Maybe {
	c, ok := t[n]
	if !ok {
		return pfun.Nothing()
	}
	return pfun.Just(c)
}

// MustLookup returns the operator for n. It panics with an
// [*UnknownOperationError] when t has no entry for n.
func (t Table) MustLookup(n Name) pfun.Curried {
	c, ok := t[n]
	if !ok {
		panic(&UnknownOperationError{Name: n.String()})
	}
	return c
}

// Merge returns a table holding the entries of every table.
// Later tables win on duplicate names.
func Merge(tables ...Table) Table {
	out := make(Table)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}

// Arithmetic returns the operators defined for every number type.
func Arithmetic[T Number]() Table {
	return Table{
		OpAdd:      Add[T](),
		OpSubtract: Subtract[T](),
		OpMultiply: Multiply[T](),
		OpDivide:   Divide[T](),
		OpExp:      Exp[T](),
		OpNegate:   Negate[T](),
		OpSucc:     Succ[T](),
		OpPred:     Pred[T](),
	}
}

// Integral returns [Arithmetic] plus the integer-only operators.
func Integral[T constraints.Integer]() Table {
	t := Arithmetic[T]()
	t[OpModulo] = Modulo[T]()
	t[OpEven] = Even[T]()
	t[OpOdd] = Odd[T]()
	return t
}

// Bitwise returns the bitwise operators.
func Bitwise[T constraints.Integer]() Table {
	return Table{
		OpBitNot:     BitNot[T](),
		OpBitAnd:     BitAnd[T](),
		OpBitOr:      BitOr[T](),
		OpBitXor:     BitXor[T](),
		OpLeftShift:  LeftShift[T](),
		OpRightShift: RightShift[T](),
	}
}

// Relational returns the comparison operators.
func Relational[T constraints.Ordered]() Table {
	return Table{
		OpEqual:            Equal[T](),
		OpNotEqual:         NotEqual[T](),
		OpGreaterThan:      GreaterThan[T](),
		OpGreaterOrEqualTo: GreaterOrEqualTo[T](),
		OpLessThan:         LessThan[T](),
		OpLessOrEqualTo:    LessOrEqualTo[T](),
	}
}

// Boolean returns the boolean operators.
func Boolean() Table {
	return Table{
		OpNot: Not(),
		OpAnd: And(),
		OpOr:  Or(),
	}
}
