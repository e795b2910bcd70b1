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
	"iter"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/calc48/calc48/settings"
)

// DateTimeValue

// DateTimeValue is a calendar timestamp. It is not numeric:
// it never promotes, and participates in arithmetic only through
// the cross-family rules with time-spans.
type DateTimeValue time.Time

var _ Value = DateTimeValue{}

func NewDateTimeValue(t time.Time) DateTimeValue {
	return DateTimeValue(t)
}

func (DateTimeValue) isValue() {}

func (DateTimeValue) Type() ValueType {
	return ValueTypeDateTime
}

func (v DateTimeValue) Time() time.Time {
	return time.Time(v)
}

// String returns the RFC 3339 form with nanoseconds, which round-trips.
func (v DateTimeValue) String() string {
	return time.Time(v).Format(time.RFC3339Nano)
}

func (v DateTimeValue) Display(st *settings.Settings) string {
	st = orDefault(st)
	layout := st.DateLayout
	if layout == "" {
		layout = settings.DefaultDateLayout
	}
	return time.Time(v).Format(layout)
}

func (v DateTimeValue) Entry() string {
	return time.Time(v).Format(time.RFC3339Nano)
}

func (v DateTimeValue) DisplayFormats(st *settings.Settings) iter.Seq[string] {
	st = orDefault(st)
	return func(yield func(string) bool) {
		if !yield(v.String()) {
			return
		}
		display := v.Display(st)
		if display != v.String() {
			yield(display)
		}
	}
}

func (v DateTimeValue) Equal(other Value) bool {
	otherDateTime, ok := other.(DateTimeValue)
	if !ok {
		return false
	}
	return time.Time(v).Equal(time.Time(otherDateTime))
}

// AddSpan shifts the timestamp by a time-span.
func (v DateTimeValue) AddSpan(span TimeSpanValue) DateTimeValue {
	return NewDateTimeValue(time.Time(v).Add(time.Duration(span)))
}

// SubSpan shifts the timestamp back by a time-span.
func (v DateTimeValue) SubSpan(span TimeSpanValue) DateTimeValue {
	return NewDateTimeValue(time.Time(v).Add(-time.Duration(span)))
}

// Sub returns the span between two timestamps.
func (v DateTimeValue) Sub(other DateTimeValue) TimeSpanValue {
	return NewTimeSpanValue(time.Time(v).Sub(time.Time(other)))
}

// Compare orders two timestamps.
func (v DateTimeValue) Compare(other DateTimeValue) int {
	return time.Time(v).Compare(time.Time(other))
}

// ParseDateTime parses a timestamp: RFC 3339 first,
// then the display layout, then any recognizable date format.
func ParseDateTime(text string, st *settings.Settings) (DateTimeValue, bool) {
	st = orDefault(st)
	text = strings.TrimSpace(text)
	if text == "" {
		return DateTimeValue{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return NewDateTimeValue(t), true
	}

	if st.DateLayout != "" {
		if t, err := time.Parse(st.DateLayout, text); err == nil {
			return NewDateTimeValue(t), true
		}
	}

	t, err := dateparse.ParseAny(text)
	if err != nil {
		return DateTimeValue{}, false
	}
	return NewDateTimeValue(t), true
}
