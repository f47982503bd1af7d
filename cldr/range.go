// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

// rangeKey is a (start, end) cardinal form pair.
type rangeKey struct {
	start Cardinal
	end   Cardinal
}

// rangeRules holds, per language, the explicit (start, end) -> Cardinal
// mapping for a plural range such as "2-4 hours". Absent pairs default to
// Other, which also covers every language (e.g. English) that declares no
// range distinctions at all.
var rangeRules = map[string]map[rangeKey]Cardinal{
	"fr": {
		{One, One}: One,
	},
	"lv": {
		{Zero, One}:  One,
		{One, One}:   One,
		{Other, One}: One,
	},
}

// RangeCardinal maps a (startForm, endForm) pair to the Cardinal form of the
// range itself, for the given BCP-47 base language subtag. Absent mappings,
// and unsupported languages, yield Other.
func RangeCardinal(start, end Cardinal, lang string) Cardinal {
	table, ok := rangeRules[lang]
	if !ok {
		return Other
	}

	if form, ok := table[rangeKey{start, end}]; ok {
		return form
	}

	return Other
}
