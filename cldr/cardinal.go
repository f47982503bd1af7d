// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// cardinalLanguages lists the language codes SupportedCardinalLanguages
// advertises and ExampleIntegerValues/ExampleDecimalValues have curated
// samples for. Classification itself is delegated to plural.Cardinal below,
// which covers every CLDR language, not just this list; the slice exists
// only to drive the sample-value introspection.
var cardinalLanguages = []string{
	"en", "fr", "pt", "es", "it", "nl", "sv", "da", "no", "fi", "el", "tr",
	"hu", "he", "ru", "uk", "sr", "hr", "bs", "pl", "cs", "sk", "ar", "ro",
	"lt", "lv", "ja", "zh", "ko", "vi", "th", "id", "ms",
}

// CardinalForm classifies decomposed operands into a Cardinal form for the
// given BCP-47 base language subtag, delegating to
// golang.org/x/text/feature/plural's plural.Cardinal rather than a
// hand-rolled predicate table, so the rule data tracks upstream CLDR.
func CardinalForm(o Operands, lang string) Cardinal {
	form := plural.Cardinal.MatchPlural(language.Make(lang), int(o.I), o.V, o.W, int(o.F), int(o.T))
	return cardinalFromPluralForm(form)
}

func cardinalFromPluralForm(f plural.Form) Cardinal {
	switch f {
	case plural.Zero:
		return Zero
	case plural.One:
		return One
	case plural.Two:
		return Two
	case plural.Few:
		return Few
	case plural.Many:
		return Many
	default:
		return Other
	}
}

// SupportedCardinalLanguages lists the language codes ExampleIntegerValues
// has curated samples for (ExampleDecimalValues covers a subset of them).
func SupportedCardinalLanguages() []string {
	return append([]string(nil), cardinalLanguages...)
}
