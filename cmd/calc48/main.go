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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/calc48/calc48/settings"
	"github.com/calc48/calc48/values"
)

type repl struct {
	stack    []values.Value
	settings *settings.Settings
}

func newREPL() *repl {
	return &repl{
		settings: settings.Default(),
	}
}

func (r *repl) push(v values.Value) {
	r.stack = append(r.stack, v)
}

func (r *repl) pop() (values.Value, bool) {
	if len(r.stack) == 0 {
		return nil, false
	}
	v := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return v, true
}

func (r *repl) pop2() (values.Value, values.Value, bool) {
	if len(r.stack) < 2 {
		return nil, nil, false
	}
	y, _ := r.pop()
	x, _ := r.pop()
	return x, y, true
}

type binaryFunc func(x, y values.Value, st *settings.Settings) (values.Value, error)
type unaryFunc func(x values.Value, st *settings.Settings) (values.Value, error)

var binaryOps = map[string]binaryFunc{
	"+":   values.Add,
	"-":   values.Subtract,
	"*":   values.Multiply,
	"/":   values.Divide,
	"%":   values.Modulus,
	"^":   values.Power,
	"gcd": values.Gcd,
	"and": values.And,
	"or":  values.Or,
	"xor": values.Xor,
	"shl": values.ShiftLeft,
	"shr": values.ShiftRight,
	"rol": values.RotateLeft,
	"ror": values.RotateRight,
}

var unaryOps = map[string]unaryFunc{
	"neg": values.Negate,
	"abs": values.Abs,
	"inv": values.Invert,
	"not": values.Not,
}

// parseOrder determines which literal syntax wins when a token is valid
// under more than one tag. Integer precedes Binary so that a bare digit
// string enters as an integer; binary entry requires a `#` or `0x` prefix.
var parseOrder = []values.ValueType{
	values.ValueTypeComplex,
	values.ValueTypeFraction,
	values.ValueTypeInteger,
	values.ValueTypeBinary,
	values.ValueTypeDouble,
	values.ValueTypeTimeSpan,
	values.ValueTypeDateTime,
}

func (r *repl) parseToken(token string) (values.Value, error) {
	for _, t := range parseOrder {
		v, err := values.TryParse(t, token, r.settings)
		if err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unrecognized token: %q", token)
}

func (r *repl) execute(token string) error {
	if f, ok := binaryOps[token]; ok {
		x, y, ok := r.pop2()
		if !ok {
			return fmt.Errorf("%s needs two stack entries", token)
		}
		result, err := f(x, y, r.settings)
		if err != nil {
			r.push(x)
			r.push(y)
			return err
		}
		r.push(result)
		return nil
	}

	if f, ok := unaryOps[token]; ok {
		x, ok := r.pop()
		if !ok {
			return fmt.Errorf("%s needs a stack entry", token)
		}
		result, err := f(x, r.settings)
		if err != nil {
			r.push(x)
			return err
		}
		r.push(result)
		return nil
	}

	switch token {
	case "sign":
		x, ok := r.pop()
		if !ok {
			return fmt.Errorf("sign needs a stack entry")
		}
		sign, err := values.Sign(x, r.settings)
		if err != nil {
			r.push(x)
			return err
		}
		r.push(values.NewIntValueFromInt64(int64(sign)))
		return nil

	case "cmp":
		x, y, ok := r.pop2()
		if !ok {
			return fmt.Errorf("cmp needs two stack entries")
		}
		result, err := values.Compare(x, y, r.settings)
		if err != nil {
			r.push(x)
			r.push(y)
			return err
		}
		r.push(values.NewIntValueFromInt64(int64(result)))
		return nil

	case "drop":
		if _, ok := r.pop(); !ok {
			return fmt.Errorf("drop needs a stack entry")
		}
		return nil

	case "dup":
		if len(r.stack) == 0 {
			return fmt.Errorf("dup needs a stack entry")
		}
		r.push(r.stack[len(r.stack)-1])
		return nil

	case "swap":
		x, y, ok := r.pop2()
		if !ok {
			return fmt.Errorf("swap needs two stack entries")
		}
		r.push(y)
		r.push(x)
		return nil

	case "clear":
		r.stack = nil
		return nil

	case "formats":
		if len(r.stack) == 0 {
			return fmt.Errorf("formats needs a stack entry")
		}
		top := r.stack[len(r.stack)-1]
		for format := range top.DisplayFormats(r.settings) {
			fmt.Println(colorizeResult(format))
		}
		return nil
	}

	value, err := r.parseToken(token)
	if err != nil {
		return err
	}
	r.push(value)
	return nil
}

func (r *repl) printTop() {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	fmt.Println(colorizeResult(top.Display(r.settings)))
}

const replHelpMessage = `
Enter values and operators in postfix order to evaluate them.

Values:    #FFh 42 -3/4 2_1/2 1.5 (3,4) 90m 2024-06-01
Operators: + - * / % ^ neg abs sign inv gcd cmp
           and or xor not shl shr rol ror
Stack:     drop dup swap clear formats

Commands are prefixed with a dot. Valid commands are:

.exit       Exit the calculator
.help       Print this help message
.stack      Print the whole stack
.word N     Set the binary word size (1-64)
.base X     Set the binary display base (b, o, d, h)

Press ^C to abort current entry, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func (r *repl) handleCommand(command string) {
	fields := strings.Fields(command)

	switch fields[0] {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	case ".stack":
		for i := len(r.stack) - 1; i >= 0; i-- {
			fmt.Println(colorizeResult(r.stack[i].Display(r.settings)))
		}
	case ".word":
		if len(fields) != 2 {
			fmt.Println(colorizeError("Usage: .word N"))
			return
		}
		wordSize, err := strconv.Atoi(fields[1])
		if err != nil || wordSize < settings.MinWordSize || wordSize > settings.MaxWordSize {
			fmt.Println(colorizeError(fmt.Sprintf(
				"Invalid word size. Expected %d-%d",
				settings.MinWordSize,
				settings.MaxWordSize,
			)))
			return
		}
		r.settings.WordSize = wordSize
	case ".base":
		if len(fields) != 2 || len(fields[1]) != 1 {
			fmt.Println(colorizeError("Usage: .base X, where X is one of b, o, d, h"))
			return
		}
		format, ok := settings.BinaryFormatForSuffix(fields[1][0])
		if !ok {
			fmt.Println(colorizeError("Usage: .base X, where X is one of b, o, d, h"))
			return
		}
		r.settings.BinaryFormat = format
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func (r *repl) executeLine(line string) {
	if strings.HasPrefix(strings.TrimSpace(line), ".") {
		r.handleCommand(strings.TrimSpace(line))
		return
	}

	changed := false

	for _, token := range strings.Fields(line) {
		err := r.execute(token)
		if err != nil {
			fmt.Println(colorizeError(err.Error()))
			return
		}
		changed = true
	}

	if changed {
		r.printTop()
	}
}

var suggestions = func() []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "sign", Description: "Replace the top entry with its sign"},
		{Text: "cmp", Description: "Replace the top two entries with their ordering"},
		{Text: "drop", Description: "Discard the top entry"},
		{Text: "dup", Description: "Duplicate the top entry"},
		{Text: "swap", Description: "Exchange the top two entries"},
		{Text: "clear", Description: "Discard all entries"},
		{Text: "formats", Description: "Print all renderings of the top entry"},
	}

	for name := range binaryOps {
		suggests = append(suggests, prompt.Suggest{Text: name})
	}
	for name := range unaryOps {
		suggests = append(suggests, prompt.Suggest{Text: name})
	}

	return suggests
}()

func suggest(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if len(word) == 0 {
		return nil
	}
	return prompt.FilterHasPrefix(suggestions, word, false)
}

func printReplWelcome() {
	fmt.Printf("Welcome to Calc48!\n%s\n\n", replAssistanceMessage)
}

func main() {
	printReplWelcome()

	r := newREPL()

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", len(r.stack)), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(r.executeLine, suggest, options...).Run()
}
