// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

import "testing"

func TestCardinalFormEnglish(t *testing.T) {
	cases := []struct {
		n    Operands
		want Cardinal
	}{
		{FromInt(1), One},
		{FromInt(0), Other},
		{FromFloat(1.5), Other},
		{mustOperands(t, "1.0"), Other}, // explicit visible decimal: not one.
		{FromFloat(1.0), One},           // bare float: can't see the decimal, stays one.
	}

	for _, c := range cases {
		if got := CardinalForm(c.n, "en"); got != c.want {
			t.Errorf("CardinalForm(%+v, en) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestCardinalFormRussian(t *testing.T) {
	cases := []struct {
		n    int64
		want Cardinal
	}{
		{1, One}, {21, One}, {31, One},
		{2, Few}, {3, Few}, {4, Few}, {22, Few}, {24, Few},
		{0, Many}, {5, Many}, {11, Many}, {12, Many}, {14, Many}, {20, Many},
	}

	for _, c := range cases {
		if got := CardinalForm(FromInt(c.n), "ru"); got != c.want {
			t.Errorf("CardinalForm(%d, ru) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestCardinalFormJapaneseAlwaysOther(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 11, 100} {
		if got := CardinalForm(FromInt(n), "ja"); got != Other {
			t.Errorf("CardinalForm(%d, ja) = %v, want other", n, got)
		}
	}
}

func TestCardinalFormUnsupportedLanguageIsOther(t *testing.T) {
	if got := CardinalForm(FromInt(1), "xx-unknown"); got != Other {
		t.Errorf("CardinalForm(1, xx-unknown) = %v, want other", got)
	}
}

// TestCardinalFormExampleValuesClassifyAsAdvertised checks that every
// sample ExampleIntegerValues claims for a form actually classifies to
// that form, for every advertised language.
func TestCardinalFormExampleValuesClassifyAsAdvertised(t *testing.T) {
	for _, lang := range SupportedCardinalLanguages() {
		samples := ExampleIntegerValues(lang)
		if len(samples) == 0 {
			t.Errorf("lang %q advertised but has no cardinal samples", lang)
			continue
		}

		for form, values := range samples {
			for _, v := range values {
				if got := CardinalForm(FromInt(v), lang); got != form {
					t.Errorf("lang %q: CardinalForm(%d) = %v, want %v (from ExampleIntegerValues)",
						lang, v, got, form)
				}
			}
		}
	}
}

func TestCardinalFormExampleDecimalValuesClassifyAsAdvertised(t *testing.T) {
	for _, lang := range SupportedCardinalLanguages() {
		samples := ExampleDecimalValues(lang)
		for form, values := range samples {
			for _, lit := range values {
				o := mustOperands(t, lit)
				if got := CardinalForm(o, lang); got != form {
					t.Errorf("lang %q: CardinalForm(%q) = %v, want %v (from ExampleDecimalValues)",
						lang, lit, got, form)
				}
			}
		}
	}
}

func mustOperands(t *testing.T, lit string) Operands {
	t.Helper()
	o, err := FromString(lit)
	if err != nil {
		t.Fatalf("FromString(%q): %v", lit, err)
	}
	return o
}
