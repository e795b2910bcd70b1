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
	"github.com/calc48/calc48/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationNegate
	OperationAbs
	OperationSign
	OperationPow
	OperationInvert
	OperationGcd
	OperationCompare
	OperationBitwiseOr
	OperationBitwiseXor
	OperationBitwiseAnd
	OperationBitwiseNot
	OperationShiftLeft
	OperationShiftRight
	OperationRotateLeft
	OperationRotateRight
)

func (op Operation) Symbol() string {
	switch op {
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationNegate:
		return "neg"
	case OperationAbs:
		return "abs"
	case OperationSign:
		return "sign"
	case OperationPow:
		return "^"
	case OperationInvert:
		return "1/x"
	case OperationGcd:
		return "gcd"
	case OperationCompare:
		return "<=>"
	case OperationBitwiseOr:
		return "|"
	case OperationBitwiseXor:
		return "xor"
	case OperationBitwiseAnd:
		return "&"
	case OperationBitwiseNot:
		return "not"
	case OperationShiftLeft:
		return "<<"
	case OperationShiftRight:
		return ">>"
	case OperationRotateLeft:
		return "rol"
	case OperationRotateRight:
		return "ror"
	}

	panic(errors.NewUnreachableError())
}

func (op Operation) Name() string {
	switch op {
	case OperationPlus:
		return "addition"
	case OperationMinus:
		return "subtraction"
	case OperationMul:
		return "multiplication"
	case OperationDiv:
		return "division"
	case OperationMod:
		return "modulus"
	case OperationNegate:
		return "negation"
	case OperationAbs:
		return "absolute value"
	case OperationSign:
		return "sign"
	case OperationPow:
		return "exponentiation"
	case OperationInvert:
		return "inversion"
	case OperationGcd:
		return "greatest common divisor"
	case OperationCompare:
		return "comparison"
	case OperationBitwiseOr:
		return "bitwise or"
	case OperationBitwiseXor:
		return "bitwise xor"
	case OperationBitwiseAnd:
		return "bitwise and"
	case OperationBitwiseNot:
		return "bitwise not"
	case OperationShiftLeft:
		return "left shift"
	case OperationShiftRight:
		return "right shift"
	case OperationRotateLeft:
		return "left rotation"
	case OperationRotateRight:
		return "right rotation"
	}

	panic(errors.NewUnreachableError())
}
