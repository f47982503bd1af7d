// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package lokalize renders natural-sounding messages by applying per-locale
// grammatical rules declared in translation files, instead of embedding them
// in application code: a CLDR rule evaluator, an expression language for
// selecting among translation alternatives, a recursive translation
// selector/interpolator, and a locale-matching fallback resolver.
package lokalize

import (
	"github.com/lokalized/lokalize/cldr"
	"github.com/lokalized/lokalize/expr"
)

// LocalizedString is an immutable tree, built once by the loader and never
// mutated afterwards, so it may be shared freely across concurrent queries.
type LocalizedString struct {
	Key            string
	Translation    string
	HasTranslation bool
	Commentary     string
	Placeholders   map[string]PlaceholderSpec
	Alternatives   []Alternative
}

// PlaceholderKind discriminates the two PlaceholderSpec variants.
type PlaceholderKind int8

const (
	PlaceholderValue PlaceholderKind = iota + 1
	PlaceholderRange
)

// PlaceholderSpec is a tagged variant: a Value spec classifies a single
// variable, a Range spec classifies a pair of variables and derives their
// range form.
type PlaceholderSpec struct {
	Kind PlaceholderKind

	// PlaceholderValue
	Source string

	// PlaceholderRange
	Start, End string

	Translations FormMap
}

// FormMapKind identifies which enumeration a FormMap's keys belong to. A
// FormMap may never mix enumerations; that is rejected at load time with
// ErrMixedFormMap.
type FormMapKind int8

const (
	FormMapCardinal FormMapKind = iota + 1
	FormMapOrdinal
	FormMapGender
)

// FormMap maps a Plural Form or Gender to a template string.
type FormMap struct {
	Kind     FormMapKind
	Cardinal map[cldr.Cardinal]string
	Ordinal  map[cldr.Ordinal]string
	Gender   map[cldr.Gender]string
}

// Alternative is a conditional override: when Expr evaluates true against
// the call's context and locale, Body replaces the enclosing LocalizedString
// for the remainder of selection. Body is itself a full LocalizedString,
// which is what lets an alternative's body carry its own nested
// alternatives: the deepest matching one wins.
type Alternative struct {
	Expr    *expr.Node
	ExprSrc string
	Body    *LocalizedString
}
