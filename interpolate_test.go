// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"testing"

	"github.com/lokalized/lokalize/cldr"
)

func TestInterpolateTemplatePlainText(t *testing.T) {
	got, err := interpolateTemplate("hello world", newVarContext(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello world" {
		t.Errorf("got %q", got)
	}
}

func TestInterpolateTemplateFromContext(t *testing.T) {
	c := newVarContext([]Var{Str("name", "Ada")})
	got, err := interpolateTemplate("Hello {{name}}!", c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello Ada!" {
		t.Errorf("got %q", got)
	}
}

func TestInterpolateTemplatePrefersPlaceholderOverContext(t *testing.T) {
	c := newVarContext([]Var{Str("count", "raw")})
	p := map[string]string{"count": "resolved"}
	got, err := interpolateTemplate("n={{count}}", c, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "n=resolved" {
		t.Errorf("got %q", got)
	}
}

func TestInterpolateTemplateLeavesUnresolvedLiteral(t *testing.T) {
	got, err := interpolateTemplate("missing {{ghost}} here", newVarContext(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "missing {{ghost}} here" {
		t.Errorf("got %q", got)
	}
}

func TestInterpolateTemplateNumberDefaultFormat(t *testing.T) {
	c := newVarContext([]Var{Num("count", 3)})
	got, err := interpolateTemplate("you have {{count}} items", c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "you have 3 items" {
		t.Errorf("got %q", got)
	}
}

func TestResolvePlaceholdersCardinalValue(t *testing.T) {
	l := &LocalizedString{
		Placeholders: map[string]PlaceholderSpec{
			"count": {
				Kind:   PlaceholderValue,
				Source: "count",
				Translations: FormMap{
					Kind: FormMapCardinal,
					Cardinal: map[cldr.Cardinal]string{
						cldr.One:   "one book",
						cldr.Other: "many books",
					},
				},
			},
		},
	}

	c := newVarContext([]Var{Num("count", 1)})
	p, err := resolvePlaceholders(l, c, "en")
	if err != nil {
		t.Fatal(err)
	}
	if p["count"] != "one book" {
		t.Errorf("got %q", p["count"])
	}

	c = newVarContext([]Var{Num("count", 5)})
	p, err = resolvePlaceholders(l, c, "en")
	if err != nil {
		t.Fatal(err)
	}
	if p["count"] != "many books" {
		t.Errorf("got %q", p["count"])
	}
}

func TestResolvePlaceholdersVisibleDecimals(t *testing.T) {
	l := &LocalizedString{
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
	}

	c := newVarContext([]Var{NumDecimals("count", 1, 1)})
	p, err := resolvePlaceholders(l, c, "en")
	if err != nil {
		t.Fatal(err)
	}
	if p["count"] != "1.0 books" {
		t.Errorf("got %q, want the visible-decimal form to classify as other", p["count"])
	}
}

func TestResolvePlaceholdersGenderHasNoFallback(t *testing.T) {
	l := &LocalizedString{
		Placeholders: map[string]PlaceholderSpec{
			"g": {
				Kind:   PlaceholderValue,
				Source: "g",
				Translations: FormMap{
					Kind: FormMapGender,
					Gender: map[cldr.Gender]string{
						cldr.Feminine: "she",
					},
				},
			},
		},
	}

	c := newVarContext([]Var{Gen("g", cldr.Masculine)})
	_, err := resolvePlaceholders(l, c, "es")
	if err == nil {
		t.Fatal("expected an error for an unmatched gender with no OTHER fallback")
	}
}

func TestResolvePlaceholdersRangeCardinal(t *testing.T) {
	l := &LocalizedString{
		Placeholders: map[string]PlaceholderSpec{
			"hours": {
				Kind:  PlaceholderRange,
				Start: "from",
				End:   "to",
				Translations: FormMap{
					Kind: FormMapCardinal,
					Cardinal: map[cldr.Cardinal]string{
						cldr.One:   "{{from}}-{{to}} hour",
						cldr.Other: "{{from}}-{{to}} hours",
					},
				},
			},
		},
	}

	c := newVarContext([]Var{Num("from", 1), Num("to", 1)})
	p, err := resolvePlaceholders(l, c, "fr")
	if err != nil {
		t.Fatal(err)
	}
	if p["hours"] != "1-1 hour" {
		t.Errorf("got %q", p["hours"])
	}
}
