// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import "golang.org/x/text/language"

// TranslationSet is an immutable key -> LocalizedString mapping for a single
// locale, built once by the loader and never mutated afterwards.
type TranslationSet struct {
	Locale  language.Tag
	entries map[string]*LocalizedString
}

func newTranslationSet(locale language.Tag, entries map[string]*LocalizedString) *TranslationSet {
	return &TranslationSet{Locale: locale, entries: entries}
}

// Lookup returns the LocalizedString for key, if present in this set.
func (t *TranslationSet) Lookup(key string) (*LocalizedString, bool) {
	ls, ok := t.entries[key]
	return ls, ok
}

// Len reports how many keys this set declares.
func (t *TranslationSet) Len() int {
	return len(t.entries)
}
