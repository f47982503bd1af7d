// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

import "sort"

// SupportedLanguageCodes returns every language with curated cardinal
// and/or ordinal sample values, sorted for determinism.
func SupportedLanguageCodes() []string {
	seen := map[string]bool{}
	for _, lang := range cardinalLanguages {
		seen[lang] = true
	}
	for _, lang := range ordinalLanguages {
		seen[lang] = true
	}

	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}

	sort.Strings(out)
	return out
}

// ExampleIntegerValues returns, for each Cardinal form a language
// distinguishes, a representative set of integer values that MUST classify
// to that form. The values are hand-transcribed from the worked examples the
// CLDR plural rules publish per rule, and cross-checked against CardinalForm
// in cldr/cardinal_test.go.
func ExampleIntegerValues(lang string) map[Cardinal][]int64 {
	switch lang {
	case "en":
		return map[Cardinal][]int64{One: {1}, Other: {0, 2, 3, 11, 100}}
	case "fr", "pt":
		return map[Cardinal][]int64{One: {0, 1}, Other: {2, 3, 11, 100}}
	case "es", "it", "nl", "sv", "da", "no", "fi", "el", "tr", "hu":
		return map[Cardinal][]int64{One: {1}, Other: {0, 2, 3, 11, 100}}
	case "he":
		return map[Cardinal][]int64{
			One:   {1},
			Two:   {2},
			Many:  {20, 30, 100},
			Other: {0, 3, 11, 15},
		}
	case "ru", "uk":
		return map[Cardinal][]int64{
			One:  {1, 21, 31},
			Few:  {2, 3, 4, 22, 23, 24},
			Many: {0, 5, 11, 12, 13, 14, 20, 25},
		}
	case "sr", "hr", "bs":
		// Like Russian but without a many form: the residue goes to other.
		return map[Cardinal][]int64{
			One:   {1, 21, 31},
			Few:   {2, 3, 4, 22, 23, 24},
			Other: {0, 5, 11, 12, 13, 14, 20, 25},
		}
	case "pl":
		return map[Cardinal][]int64{
			One:  {1},
			Few:  {2, 3, 4, 22, 23, 24},
			Many: {0, 5, 11, 12, 13, 14, 20, 25},
		}
	case "cs", "sk":
		return map[Cardinal][]int64{One: {1}, Few: {2, 3, 4}, Other: {0, 5, 11, 100}}
	case "ar":
		return map[Cardinal][]int64{
			Zero:  {0},
			One:   {1},
			Two:   {2},
			Few:   {3, 7, 10},
			Many:  {11, 50, 99},
			Other: {100, 101, 200},
		}
	case "ro":
		return map[Cardinal][]int64{One: {1}, Few: {0, 2, 19, 102}, Other: {20, 100}}
	case "lt":
		return map[Cardinal][]int64{
			One:   {1, 21, 31},
			Few:   {2, 3, 9, 22},
			Other: {0, 10, 11, 19, 100},
		}
	case "lv":
		return map[Cardinal][]int64{
			Zero:  {0, 10, 11, 19, 20},
			One:   {1, 21, 31},
			Other: {2, 9, 22},
		}
	case "ja", "zh", "ko", "vi", "th", "id", "ms":
		return map[Cardinal][]int64{Other: {0, 1, 2, 11, 100}}
	default:
		return nil
	}
}

// ExampleDecimalValues mirrors ExampleIntegerValues for decimal literals
// (given as their exact textual form, to preserve visible trailing zeros).
// Only languages whose rules actually inspect the fraction operands carry
// entries here; for the rest, decimals add nothing over the integer samples.
func ExampleDecimalValues(lang string) map[Cardinal][]string {
	switch lang {
	case "en":
		return map[Cardinal][]string{Other: {"1.0", "1.5", "0.0"}}
	case "fr", "pt":
		return map[Cardinal][]string{One: {"0.5", "1.5"}, Other: {"2.5"}}
	case "es":
		return map[Cardinal][]string{One: {"1.0"}, Other: {"1.5", "2.0"}}
	case "ru":
		return map[Cardinal][]string{Other: {"1.0", "2.5", "21.0"}}
	case "lv":
		return map[Cardinal][]string{
			Zero: {"0.0"},
			One:  {"2.1", "1.0"},
		}
	default:
		return nil
	}
}

// ExampleOrdinalIntegerValues returns, for each Ordinal form a language
// distinguishes, a representative set of integer values that MUST classify
// to that form, transcribed from the CLDR ordinal rules' worked examples
// the same way ExampleIntegerValues is for cardinals. Ordinal rules only
// ever apply to integers, so there is no decimal counterpart.
func ExampleOrdinalIntegerValues(lang string) map[Ordinal][]int64 {
	switch lang {
	case "en":
		return map[Ordinal][]int64{
			OrdOne:   {1, 21, 31},
			OrdTwo:   {2, 22, 32},
			OrdFew:   {3, 23, 33},
			OrdOther: {0, 4, 11, 12, 13, 27, 100},
		}
	case "it":
		return map[Ordinal][]int64{
			OrdMany:  {8, 11, 80, 800},
			OrdOther: {1, 2, 7, 18, 88, 801},
		}
	case "fr":
		return map[Ordinal][]int64{OrdOne: {1}, OrdOther: {2, 3, 11, 21, 100}}
	case "sv":
		return map[Ordinal][]int64{
			OrdOne:   {1, 2, 21, 22},
			OrdOther: {3, 11, 12, 100},
		}
	case "es":
		return map[Ordinal][]int64{OrdOther: {1, 2, 3, 11, 100}}
	default:
		return nil
	}
}
