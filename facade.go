// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/worldiety/option"
	"golang.org/x/text/language"
)

// LocaleSupplier is given a Catalog handle and picks the locale to serve a
// Get call with; callers that don't need custom resolution (header
// forwarding, per-request overrides) can omit it and rely on MatchTag.
type LocaleSupplier func(c *Catalog) language.Tag

// Facade is the thin, optional convenience wrapper around a Catalog: it adds
// a default locale resolution policy so call sites don't have to thread a
// locale through every Get call themselves.
type Facade struct {
	catalog  *Catalog
	supplier LocaleSupplier
}

// NewFacade wraps an already-built Catalog. supplier may be nil, in which
// case Get always resolves against the Catalog's fallback locale.
func NewFacade(c *Catalog, supplier LocaleSupplier) *Facade {
	return &Facade{catalog: c, supplier: supplier}
}

// Get resolves the locale via the configured LocaleSupplier (or the
// Catalog's fallback if none was configured), selects key's LocalizedString,
// and renders it against vars. A missing key is not an error: the key itself
// is returned unchanged, matching the facade's missing-key contract.
func (f *Facade) Get(key string, vars ...Var) string {
	lang := f.catalog.fallback
	if f.supplier != nil {
		lang = f.supplier(f.catalog)
	}

	return f.GetLocale(lang, key, vars...)
}

// GetLocale is Get with an explicit locale, bypassing the LocaleSupplier. A
// key absent from the matched locale's set falls back to the fallback
// locale's set; a key absent from both is returned unchanged, matching
// the facade's missing-key contract.
func (f *Facade) GetLocale(tag language.Tag, key string, vars ...Var) string {
	ts := f.catalog.MatchTag(tag)

	ls, servingTag, ok := lookupWithFallback(f.catalog, ts, tag, key)
	if !ok {
		return key
	}

	base, _ := servingTag.Base()
	rendered, err := Select(ls, newVarContext(vars), base.String())
	if err != nil {
		return key
	}

	return rendered
}

// lookupWithFallback looks key up in ts, falling back to the Catalog's
// fallback locale's set when ts is nil or doesn't declare key. It returns
// the tag of whichever set actually supplied the string, since that
// (not the originally requested tag) is what governs CLDR classification
// of its placeholders and alternatives.
func lookupWithFallback(c *Catalog, ts *TranslationSet, tag language.Tag, key string) (*LocalizedString, language.Tag, bool) {
	if ts != nil {
		if ls, ok := ts.Lookup(key); ok {
			return ls, ts.Locale, true
		}
	}

	fallbackTS, ok := c.sets.Get(c.fallback)
	if !ok {
		return nil, language.Tag{}, false
	}

	ls, ok := fallbackTS.Lookup(key)
	return ls, c.fallback, ok
}

// Catalog exposes the wrapped Catalog for callers that need direct locale
// matching (MatchAcceptLanguage, Tags) alongside the facade's Get.
func (f *Facade) Catalog() *Catalog {
	return f.catalog
}

// LoadDir walks dir for files named "<tag>.json" (e.g. "en.json",
// "en-GB.json", "zh-TW.json"), parses each as a TranslationSet, and builds
// a Catalog with the given fallback and tiebreakers. Non-json entries and
// subdirectories are skipped.
func LoadDir(dir string, fallback language.Tag, tiebreakers map[string][]language.Tag) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("lokalize: read dir %q: %w", dir, err)
	}

	b := NewBuilder().Fallback(fallback)
	for lang, order := range tiebreakers {
		b.Tiebreaker(lang, order...)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		tagStr := guessLocaleFromFilename(entry.Name())
		tag, err := language.Parse(tagStr)
		if err != nil {
			return nil, fmt.Errorf("lokalize: %s: invalid locale tag %q: %w", entry.Name(), tagStr, err)
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("lokalize: read %s: %w", entry.Name(), err)
		}

		ts, err := LoadTranslationSet(tag, data)
		if err != nil {
			return nil, fmt.Errorf("lokalize: %s: %w", entry.Name(), err)
		}

		b.Add(ts)
	}

	return b.Build()
}

// guessLocaleFromFilename strips directory components and the trailing
// ".json" extension, leaving a bare BCP-47 tag candidate.
func guessLocaleFromFilename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MustLoadDir is LoadDir for call sites (typically package-level var
// initializers) that treat a broken strings directory as a startup fault
// rather than a recoverable error.
func MustLoadDir(dir string, fallback language.Tag, tiebreakers map[string][]language.Tag) *Catalog {
	return option.Must(LoadDir(dir, fallback, tiebreakers))
}
