// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

import (
	"fmt"
	"strconv"
)

// Cardinal is a CLDR cardinal plural form. It is intentionally a distinct
// type from Ordinal, even though both share the same six labels: collapsing
// them into one enum would silently allow comparing an ordinal form against
// a cardinal one, which the expression evaluator must reject as a
// TypeMismatch instead.
type Cardinal int8

const (
	Zero Cardinal = iota + 1
	One
	Two
	Few
	Many
	Other
)

func (c Cardinal) String() string {
	switch c {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Two:
		return "two"
	case Few:
		return "few"
	case Many:
		return "many"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("cardinal(%d)", int8(c))
	}
}

// Ordinal is a CLDR ordinal plural form. See the [Cardinal] doc comment for
// why it is not unified with Cardinal.
type Ordinal int8

const (
	OrdZero Ordinal = iota + 1
	OrdOne
	OrdTwo
	OrdFew
	OrdMany
	OrdOther
)

func (o Ordinal) String() string {
	switch o {
	case OrdZero:
		return "zero"
	case OrdOne:
		return "one"
	case OrdTwo:
		return "two"
	case OrdFew:
		return "few"
	case OrdMany:
		return "many"
	case OrdOther:
		return "other"
	default:
		return fmt.Sprintf("ordinal(%d)", int8(o))
	}
}

// Gender is a grammatical gender, supplied by the caller rather than derived
// from a number.
type Gender int8

const (
	Masculine Gender = iota + 1
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return fmt.Sprintf("gender(%d)", int8(g))
	}
}

// FormFamily identifies which of the three enumerations a FormValue carries.
type FormFamily int8

const (
	CardinalFamily FormFamily = iota + 1
	OrdinalFamily
	GenderFamily
)

func (f FormFamily) String() string {
	switch f {
	case CardinalFamily:
		return "cardinal"
	case OrdinalFamily:
		return "ordinal"
	case GenderFamily:
		return "gender"
	default:
		return fmt.Sprintf("family(%d)", int8(f))
	}
}

// FormValue unifies Cardinal, Ordinal and Gender only at the comparison
// boundary of the expression evaluator: the three enumerations never merge
// into a single type, but an expression like "CARDINALITY_ONE == count"
// needs a common value the evaluator can compare by family.
type FormValue struct {
	Family   FormFamily
	Cardinal Cardinal
	Ordinal  Ordinal
	Gender   Gender
}

func NewCardinalForm(c Cardinal) FormValue { return FormValue{Family: CardinalFamily, Cardinal: c} }
func NewOrdinalForm(o Ordinal) FormValue   { return FormValue{Family: OrdinalFamily, Ordinal: o} }
func NewGenderForm(g Gender) FormValue     { return FormValue{Family: GenderFamily, Gender: g} }

// Equal reports whether two form values denote the same member of the same
// family. Values from different families are never equal.
func (f FormValue) Equal(other FormValue) bool {
	if f.Family != other.Family {
		return false
	}

	switch f.Family {
	case CardinalFamily:
		return f.Cardinal == other.Cardinal
	case OrdinalFamily:
		return f.Ordinal == other.Ordinal
	case GenderFamily:
		return f.Gender == other.Gender
	default:
		return false
	}
}

func (f FormValue) String() string {
	switch f.Family {
	case CardinalFamily:
		return "CARDINALITY_" + f.Cardinal.String()
	case OrdinalFamily:
		return "ORDINALITY_" + f.Ordinal.String()
	case GenderFamily:
		return f.Gender.String()
	default:
		return "form(undefined)"
	}
}

// ValueKind distinguishes the payload kind of a Value.
type ValueKind int8

const (
	NumberKind ValueKind = iota + 1
	GenderKind
	StringKind
)

// Value is a runtime context value: whatever a caller plugs into a named
// variable. Expressions and placeholders coerce it on demand (a number may
// be classified into a Cardinal or Ordinal form; a Gender compares directly
// against a LangForm literal of the gender family).
//
// A plain float64 cannot distinguish 1 from 1.0, and the distinction changes
// classification (English cardinal of 1 is one, of "1.0" is other). Callers
// that care use NumberValueWithVisibleDecimals to carry the visible-decimal
// count alongside the numeric value.
type Value struct {
	kind    ValueKind
	number  float64
	visible int
	gender  Gender
	str     string
}

func NumberValue(v float64) Value { return Value{kind: NumberKind, number: v} }
func GenderValue(g Gender) Value  { return Value{kind: GenderKind, gender: g} }
func StringValue(s string) Value  { return Value{kind: StringKind, str: s} }

// NumberValueWithVisibleDecimals builds a numeric value that classifies and
// renders as if written with the given number of decimal places, so
// NumberValueWithVisibleDecimals(1, 1) behaves like the literal "1.0".
func NumberValueWithVisibleDecimals(v float64, visible int) Value {
	if visible < 0 {
		visible = 0
	}
	return Value{kind: NumberKind, number: v, visible: visible}
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) AsNumber() (float64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.number, true
}

// VisibleDecimals reports the visible-decimal override carried by a numeric
// value; zero for values built with NumberValue.
func (v Value) VisibleDecimals() int {
	return v.visible
}

// AsOperands decomposes a numeric value into CLDR operands, honoring the
// visible-decimal override when one was supplied.
func (v Value) AsOperands() (Operands, bool) {
	if v.kind != NumberKind {
		return Operands{}, false
	}
	if v.visible > 0 {
		return FromFloatWithVisibleDecimals(v.number, v.visible), true
	}
	return FromFloat(v.number), true
}

func (v Value) AsGender() (Gender, bool) {
	if v.kind != GenderKind {
		return 0, false
	}
	return v.gender, true
}

// String renders the value using its default, non-locale-aware string
// representation; interpolated numbers intentionally get no locale-specific
// digit grouping or decimal separators.
func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		if v.visible > 0 {
			return strconv.FormatFloat(v.number, 'f', v.visible, 64)
		}
		return formatNumber(v.number)
	case GenderKind:
		return v.gender.String()
	case StringKind:
		return v.str
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}

	return fmt.Sprintf("%g", n)
}
