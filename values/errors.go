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

package values

import (
	"fmt"

	"github.com/calc48/calc48/errors"
)

// ParseError

// ParseError indicates a malformed literal.
// The dispatcher reports it; variant-level parsers report "no value" instead.
type ParseError struct {
	Type ValueType
	Text string
}

var _ errors.UserError = &ParseError{}

func (e *ParseError) IsUserError() {}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"cannot parse %s value: %q",
		e.Type,
		e.Text,
	)
}

// InvalidOperandsError

// InvalidOperandsError indicates an operand type combination
// with no arithmetic or comparison rule.
type InvalidOperandsError struct {
	Operation Operation
	LeftType  ValueType
	RightType ValueType
}

var _ errors.UserError = &InvalidOperandsError{}

func (e *InvalidOperandsError) IsUserError() {}

func (e *InvalidOperandsError) Error() string {
	return fmt.Sprintf(
		"%s is not supported for operands %s and %s",
		e.Operation.Name(),
		e.LeftType,
		e.RightType,
	)
}

// InvalidOperandError

// InvalidOperandError indicates a unary operation
// applied to a variant that does not support it.
type InvalidOperandError struct {
	Operation Operation
	Type      ValueType
}

var _ errors.UserError = &InvalidOperandError{}

func (e *InvalidOperandError) IsUserError() {}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf(
		"%s is not supported for operand %s",
		e.Operation.Name(),
		e.Type,
	)
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ errors.UserError = &DivisionByZeroError{}

func (e *DivisionByZeroError) IsUserError() {}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// OverflowError

type OverflowError struct {
	Operation Operation
}

var _ errors.UserError = &OverflowError{}

func (e *OverflowError) IsUserError() {}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow in %s", e.Operation.Name())
}

// ShiftRangeError

// ShiftRangeError indicates a shift or rotation amount
// outside [0, word size).
type ShiftRangeError struct {
	Amount   int
	WordSize int
}

var _ errors.UserError = &ShiftRangeError{}

func (e *ShiftRangeError) IsUserError() {}

func (e *ShiftRangeError) Error() string {
	return fmt.Sprintf(
		"shift amount %d is outside [0, %d)",
		e.Amount,
		e.WordSize,
	)
}

// IterationLimitError

// IterationLimitError indicates that an iterative algorithm exceeded
// its safeguard bound. It is an internal error: no valid input produces it.
type IterationLimitError struct {
	Operation Operation
	Limit     int
}

var _ errors.InternalError = &IterationLimitError{}

func (e *IterationLimitError) IsInternalError() {}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf(
		"%s did not terminate within %d iterations",
		e.Operation.Name(),
		e.Limit,
	)
}
