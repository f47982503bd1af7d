// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"errors"
	"testing"

	"github.com/lokalized/lokalize/cldr"
	"github.com/lokalized/lokalize/expr"
)

func mustParseExpr(t *testing.T, src string) *expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestSelectPlainTranslation(t *testing.T) {
	l := &LocalizedString{Translation: "hello", HasTranslation: true}
	got, err := Select(l, newVarContext(nil), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestSelectNoTranslationAvailable(t *testing.T) {
	l := &LocalizedString{}
	_, err := Select(l, newVarContext(nil), "en")
	if !errors.Is(err, ErrNoTranslationAvailable) {
		t.Fatalf("expected ErrNoTranslationAvailable, got %v", err)
	}
}

// TestSelectFirstMatchWins: given two alternatives that would both
// evaluate true, the first by declaration order is chosen.
func TestSelectFirstMatchWins(t *testing.T) {
	l := &LocalizedString{
		Translation:    "fallback",
		HasTranslation: true,
		Alternatives: []Alternative{
			{Expr: mustParseExpr(t, "1 == 1"), Body: &LocalizedString{Translation: "first", HasTranslation: true}},
			{Expr: mustParseExpr(t, "1 == 1"), Body: &LocalizedString{Translation: "second", HasTranslation: true}},
		},
	}

	got, err := Select(l, newVarContext(nil), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "first" {
		t.Errorf("got %q, want first match", got)
	}
}

// TestSelectDeepestRecursionWins: nested matching alternatives recurse, so
// the innermost match produces the output.
func TestSelectDeepestRecursionWins(t *testing.T) {
	inner := &LocalizedString{
		Translation:    "outer",
		HasTranslation: true,
		Alternatives: []Alternative{
			{Expr: mustParseExpr(t, "1 == 1"), Body: &LocalizedString{Translation: "inner", HasTranslation: true}},
		},
	}

	l := &LocalizedString{
		Translation:    "top",
		HasTranslation: true,
		Alternatives: []Alternative{
			{Expr: mustParseExpr(t, "1 == 1"), Body: inner},
		},
	}

	got, err := Select(l, newVarContext(nil), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "inner" {
		t.Errorf("got %q, want deepest recursion to win", got)
	}
}

// TestSelectFailedAlternativeExpressionIsSkipped covers the propagation
// policy: a failed alternative expression (here, an unknown variable) is not
// fatal and selection continues with the next alternative.
func TestSelectFailedAlternativeExpressionIsSkipped(t *testing.T) {
	l := &LocalizedString{
		Translation:    "fallback",
		HasTranslation: true,
		Alternatives: []Alternative{
			{Expr: mustParseExpr(t, "undeclaredVar == 1"), Body: &LocalizedString{Translation: "should be skipped", HasTranslation: true}},
			{Expr: mustParseExpr(t, "1 == 1"), Body: &LocalizedString{Translation: "taken", HasTranslation: true}},
		},
	}

	got, err := Select(l, newVarContext(nil), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "taken" {
		t.Errorf("got %q", got)
	}
}

// TestSelectEndToEndBookCount exercises the canonical English book-count
// scenario: a cardinal placeholder chooses between singular and plural.
func TestSelectEndToEndBookCount(t *testing.T) {
	l := &LocalizedString{
		Translation:    "You have {{count}}.",
		HasTranslation: true,
		Placeholders: map[string]PlaceholderSpec{
			"count": {
				Kind:   PlaceholderValue,
				Source: "count",
				Translations: FormMap{
					Kind: FormMapCardinal,
					Cardinal: map[cldr.Cardinal]string{
						cldr.One:   "one book",
						cldr.Other: "{{count}} books",
					},
				},
			},
		},
		Alternatives: []Alternative{
			{
				Expr: mustParseExpr(t, "count == CARDINALITY_ONE"),
				Body: &LocalizedString{Translation: "You have {{count}}.", HasTranslation: true, Placeholders: map[string]PlaceholderSpec{
					"count": {
						Kind:   PlaceholderValue,
						Source: "count",
						Translations: FormMap{
							Kind:     FormMapCardinal,
							Cardinal: map[cldr.Cardinal]string{cldr.One: "one book"},
						},
					},
				}},
			},
		},
	}

	got, err := Select(l, newVarContext([]Var{Num("count", 1)}), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "You have one book." {
		t.Errorf("got %q", got)
	}

	got, err = Select(l, newVarContext([]Var{Num("count", 5)}), "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "You have 5 books." {
		t.Errorf("got %q", got)
	}
}

// TestSelectEndToEndGenderGreeting exercises the Spanish gender scenario.
func TestSelectEndToEndGenderGreeting(t *testing.T) {
	l := &LocalizedString{
		Translation:    "Bienvenido {{name}}",
		HasTranslation: true,
		Alternatives: []Alternative{
			{
				Expr: mustParseExpr(t, "gender == FEMININE"),
				Body: &LocalizedString{Translation: "Bienvenida {{name}}", HasTranslation: true},
			},
		},
	}

	got, err := Select(l, newVarContext([]Var{Str("name", "Ana"), Gen("gender", cldr.Feminine)}), "es")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Bienvenida Ana" {
		t.Errorf("got %q", got)
	}

	got, err = Select(l, newVarContext([]Var{Str("name", "Juan"), Gen("gender", cldr.Masculine)}), "es")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Bienvenido Juan" {
		t.Errorf("got %q", got)
	}
}
