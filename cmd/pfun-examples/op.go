// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"code.hybscloud.com/pfun"
	"code.hybscloud.com/pfun/ops"
	"github.com/rs/zerolog"
)

// operand describes one operand type accepted by the op command.
type operand struct {
	table ops.Table
	parse func(string) (pfun.Erased, error)
}

var operands = map[string]operand{
	"int": {
		table: ops.Merge(ops.Integral[int](), ops.Bitwise[int](), ops.Relational[int]()),
		parse: func(s string) (pfun.Erased, error) { return strconv.Atoi(s) },
	},
	"float": {
		table: ops.Merge(ops.Arithmetic[float64](), ops.Relational[float64]()),
		parse: func(s string) (pfun.Erased, error) { return strconv.ParseFloat(s, 64) },
	},
	"bool": {
		table: ops.Boolean(),
		parse: func(s string) (pfun.Erased, error) { return strconv.ParseBool(s) },
	},
}

func runOp(w io.Writer, log zerolog.Logger, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: op NAME TYPE A [B]")
	}
	name, err := ops.ParseName(args[0])
	if err != nil {
		return err
	}
	kind, ok := operands[args[1]]
	if !ok {
		return fmt.Errorf("unknown operand type %q", args[1])
	}
	found, ok := kind.table.Lookup(name).Get()
	if !ok {
		return fmt.Errorf("operation %s is not defined for %s", name, args[1])
	}
	op := found.(pfun.Curried)
	if op.Arity() != len(args)-2 {
		return fmt.Errorf("operation %s takes %d operand(s), got %d", name, op.Arity(), len(args)-2)
	}

	vals := make([]pfun.Erased, 0, len(args)-2)
	for _, s := range args[2:] {
		v, err := kind.parse(s)
		if err != nil {
			return fmt.Errorf("invalid %s operand %q: %w", args[1], s, err)
		}
		vals = append(vals, v)
	}
	result, err := apply(name, op, vals)
	if err != nil {
		return err
	}
	log.Debug().Stringer("op", name).Interface("operands", vals).Interface("result", result).Msg("op")
	fmt.Fprintln(w, result)
	return nil
}

// apply calls op, turning a runtime panic raised by the operator itself
// (division by zero, negative shift count) into an error.
func apply(name ops.Name, op pfun.Curried, vals []pfun.Erased) (result pfun.Erased, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation %s failed: %v", name, r)
		}
	}()
	return op.TryCall(vals...)
}
