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

// ordinalLanguages mirrors cardinalLanguages for the ordinal enumeration:
// the language codes ExampleOrdinalIntegerValues has curated samples for.
var ordinalLanguages = []string{"en", "it", "fr", "sv", "es"}

// OrdinalForm classifies decomposed operands into an Ordinal form for the
// given BCP-47 base language subtag, delegating to plural.Ordinal exactly
// as CardinalForm delegates to plural.Cardinal.
func OrdinalForm(o Operands, lang string) Ordinal {
	form := plural.Ordinal.MatchPlural(language.Make(lang), int(o.I), o.V, o.W, int(o.F), int(o.T))
	return ordinalFromPluralForm(form)
}

func ordinalFromPluralForm(f plural.Form) Ordinal {
	switch f {
	case plural.Zero:
		return OrdZero
	case plural.One:
		return OrdOne
	case plural.Two:
		return OrdTwo
	case plural.Few:
		return OrdFew
	case plural.Many:
		return OrdMany
	default:
		return OrdOther
	}
}

// SupportedOrdinalLanguages lists the language codes with curated ordinal
// samples in ExampleOrdinalIntegerValues.
func SupportedOrdinalLanguages() []string {
	return append([]string(nil), ordinalLanguages...)
}
