// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ops

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is wrapped by every [UnknownOperationError].
var ErrUnknownOperation = errors.New("ops: unknown operation")

// UnknownOperationError reports a name that does not denote an operator,
// or an operator missing from a [Table].
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("ops: unknown operation %q", e.Name)
}

// Unwrap returns [ErrUnknownOperation].
func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }
