/*
 * Calc48 - An exact-arithmetic calculator value engine
 *
 * Copyright Calc48 Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path
// or an iteration safeguard tripping. A correct engine never produces one.
//
// InternalError s must always be propagated up the call stack
// and not be swallowed.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the input to an operation,
// e.g. a malformed literal or an operand combination with no rule.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is an internal error in the engine
// which should have never occurred due to a programming error.
//
// NOTE: this error is not used for input errors,
// e.g. malformed literals. For those, see package values.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// RootCause unwraps the given error down to the innermost error,
// following both the standard Unwrap convention and xerrors.Wrapper.
func RootCause(err error) error {
	for {
		switch typedErr := err.(type) {
		case xerrors.Wrapper:
			wrapped := typedErr.Unwrap()
			if wrapped == nil {
				return err
			}
			err = wrapped
		case interface{ Unwrap() error }:
			wrapped := typedErr.Unwrap()
			if wrapped == nil {
				return err
			}
			err = wrapped
		default:
			return err
		}
	}
}
