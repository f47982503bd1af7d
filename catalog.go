// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Catalog maps a normalized BCP-47 tag to its TranslationSet, plus an
// explicit fallback locale and an optional tiebreaker map keyed by language
// code. It is immutable after Build: every TranslationSet is Put once and
// the underlying bufferedMap is Flush()ed exactly once, after which every
// Match call takes the lock-free read path.
type Catalog struct {
	sets        bufferedMap[language.Tag, *TranslationSet]
	tags        []language.Tag
	fallback    language.Tag
	tiebreakers map[string][]language.Tag
}

// Builder assembles a Catalog. Use NewBuilder, chain Fallback/Add/Tiebreaker,
// then call Build.
type Builder struct {
	sets        map[language.Tag]*TranslationSet
	fallback    language.Tag
	hasFallback bool
	tiebreakers map[string][]language.Tag
}

func NewBuilder() *Builder {
	return &Builder{
		sets:        map[language.Tag]*TranslationSet{},
		tiebreakers: map[string][]language.Tag{},
	}
}

// Fallback declares the required fallback locale.
func (b *Builder) Fallback(tag language.Tag) *Builder {
	b.fallback = tag
	b.hasFallback = true
	return b
}

// Add registers a TranslationSet under its own locale.
func (b *Builder) Add(ts *TranslationSet) *Builder {
	b.sets[ts.Locale] = ts
	return b
}

// Tiebreaker declares the disambiguation order for every tag sharing the
// given base language code, required whenever two or more tags do.
func (b *Builder) Tiebreaker(lang string, order ...language.Tag) *Builder {
	b.tiebreakers[lang] = append([]language.Tag(nil), order...)
	return b
}

// Build validates the ambiguity constraint and produces an immutable
// Catalog. When a language code has two or more associated tags and no
// tiebreaker entry, Build refuses with ErrAmbiguousLocale rather than
// picking an arbitrary one: silent arbitrary choice would make matching
// behavior machine-dependent.
func (b *Builder) Build() (*Catalog, error) {
	if !b.hasFallback {
		return nil, fmt.Errorf("lokalize: catalog requires a fallback locale")
	}
	if _, ok := b.sets[b.fallback]; !ok {
		return nil, fmt.Errorf("lokalize: fallback locale %q has no translation set", b.fallback)
	}

	byLang := map[string][]language.Tag{}
	for tag := range b.sets {
		base, _ := tag.Base()
		byLang[base.String()] = append(byLang[base.String()], tag)
	}

	for lang, tags := range byLang {
		if len(tags) < 2 {
			continue
		}
		if _, ok := b.tiebreakers[lang]; !ok {
			sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
			return nil, fmt.Errorf("%w: language %q has conflicting tags %s with no tiebreaker",
				ErrAmbiguousLocale, lang, joinTags(tags))
		}
	}

	cat := &Catalog{
		fallback:    b.fallback,
		tiebreakers: b.tiebreakers,
	}

	tags := make([]language.Tag, 0, len(b.sets))
	for tag, ts := range b.sets {
		cat.sets.Put(tag, ts)
		tags = append(tags, tag)
	}
	cat.sets.Flush()

	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	cat.tags = tags

	return cat, nil
}

func joinTags(tags []language.Tag) string {
	strs := make([]string, len(tags))
	for i, t := range tags {
		strs[i] = t.String()
	}
	return strings.Join(strs, ", ")
}

// matchOne implements steps 2.a-2.c of the locale-matching algorithm for a
// single ranked request, without falling back: exact match, then (if the
// request carries region/script) an exact match on its bare language
// subtag, then tiebreaker disambiguation among every tag sharing that
// language code.
func (c *Catalog) matchOne(requested language.Tag) (*TranslationSet, bool) {
	if ts, ok := c.sets.Get(requested); ok {
		return ts, true
	}

	base, conf := requested.Base()
	if conf == language.No {
		return nil, false
	}

	langOnly, err := language.Parse(base.String())
	if err == nil && langOnly != requested {
		if ts, ok := c.sets.Get(langOnly); ok {
			return ts, true
		}
	}

	if order, ok := c.tiebreakers[base.String()]; ok {
		for _, tag := range order {
			if ts, ok := c.sets.Get(tag); ok {
				return ts, true
			}
		}
	}

	return nil, false
}

// MatchTag returns the best TranslationSet for a single requested tag,
// falling back to the fallback locale's set if nothing else matches.
func (c *Catalog) MatchTag(requested language.Tag) *TranslationSet {
	if ts, ok := c.matchOne(requested); ok {
		return ts
	}

	ts, _ := c.sets.Get(c.fallback)
	return ts
}

// MatchRanges tries each tag in ranked order (already sorted by descending
// weight, ties preserving input order) and returns the first match. If
// every request is exhausted with no match, it returns the fallback
// locale's TranslationSet.
func (c *Catalog) MatchRanges(ranked []language.Tag) *TranslationSet {
	for _, r := range ranked {
		if ts, ok := c.matchOne(r); ok {
			return ts
		}
	}

	ts, _ := c.sets.Get(c.fallback)
	return ts
}

// MatchAcceptLanguage parses an HTTP Accept-Language-shaped string into a
// weighted range list and matches it.
func (c *Catalog) MatchAcceptLanguage(header string) (*TranslationSet, error) {
	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil, fmt.Errorf("lokalize: parse accept-language %q: %w", header, err)
	}

	type weighted struct {
		tag language.Tag
		q   float32
	}

	ranked := make([]weighted, len(tags))
	for i, tag := range tags {
		ranked[i] = weighted{tag: tag, q: weights[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].q > ranked[j].q })

	ordered := make([]language.Tag, len(ranked))
	for i, w := range ranked {
		ordered[i] = w.tag
	}

	return c.MatchRanges(ordered), nil
}

// Fallback returns the Catalog's fallback locale.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Tags returns every locale the Catalog serves, sorted for determinism.
func (c *Catalog) Tags() []language.Tag {
	return slices.Clone(c.tags)
}
