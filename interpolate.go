// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lokalized/lokalize/cldr"
	"github.com/lokalized/lokalize/placeholder"
)

// resolvePlaceholders builds the fresh P mapping described by the selector's
// placeholder-resolution step: every declared placeholder is classified
// against the context and locale, its matching template is picked, and that
// template is itself interpolated against C ∪ P before being stored, which
// is why placeholders are resolved in a fixed (sorted) order rather than
// map iteration order, so a placeholder referencing another placeholder's
// name always sees a deterministic result.
func resolvePlaceholders(l *LocalizedString, c varContext, lang string) (map[string]string, error) {
	if len(l.Placeholders) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(l.Placeholders))
	for name := range l.Placeholders {
		names = append(names, name)
	}
	sort.Strings(names)

	p := make(map[string]string, len(names))
	for _, name := range names {
		tmpl, err := resolvePlaceholderTemplate(name, l.Placeholders[name], c, lang)
		if err != nil {
			return nil, err
		}

		rendered, err := interpolateTemplate(tmpl, c, p)
		if err != nil {
			return nil, err
		}

		p[name] = rendered
	}

	return p, nil
}

func resolvePlaceholderTemplate(name string, spec PlaceholderSpec, c varContext, lang string) (string, error) {
	switch spec.Kind {
	case PlaceholderValue:
		v, ok := c.Resolve(spec.Source)
		if !ok {
			return "", fmt.Errorf("%w: placeholder %q references %q", ErrPlaceholderUnresolved, name, spec.Source)
		}

		return selectFormTemplate(name, spec.Translations, lang, v)

	case PlaceholderRange:
		startV, startOK := c.Resolve(spec.Start)
		endV, endOK := c.Resolve(spec.End)
		if !startOK || !endOK {
			return "", fmt.Errorf("%w: range placeholder %q references undefined variables", ErrPlaceholderUnresolved, name)
		}

		startOps, ok1 := startV.AsOperands()
		endOps, ok2 := endV.AsOperands()
		if !ok1 || !ok2 {
			return "", fmt.Errorf("%w: range placeholder %q operands are not numbers", ErrPlaceholderUnresolved, name)
		}

		startForm := cldr.CardinalForm(startOps, lang)
		endForm := cldr.CardinalForm(endOps, lang)
		rangeForm := cldr.RangeCardinal(startForm, endForm, lang)

		if tmpl, ok := spec.Translations.Cardinal[rangeForm]; ok {
			return tmpl, nil
		}
		if tmpl, ok := spec.Translations.Cardinal[cldr.Other]; ok {
			return tmpl, nil
		}

		return "", fmt.Errorf("%w: range placeholder %q has no template for %v", ErrPlaceholderUnresolved, name, rangeForm)

	default:
		return "", fmt.Errorf("%w: placeholder %q has an unknown kind", ErrPlaceholderUnresolved, name)
	}
}

func selectFormTemplate(name string, fm FormMap, lang string, v cldr.Value) (string, error) {
	switch fm.Kind {
	case FormMapCardinal:
		ops, ok := v.AsOperands()
		if !ok {
			return "", fmt.Errorf("%w: placeholder %q expects a number", ErrPlaceholderUnresolved, name)
		}

		form := cldr.CardinalForm(ops, lang)
		if tmpl, ok := fm.Cardinal[form]; ok {
			return tmpl, nil
		}
		if tmpl, ok := fm.Cardinal[cldr.Other]; ok {
			return tmpl, nil
		}

		return "", fmt.Errorf("%w: placeholder %q has no template for %v", ErrPlaceholderUnresolved, name, form)

	case FormMapOrdinal:
		ops, ok := v.AsOperands()
		if !ok {
			return "", fmt.Errorf("%w: placeholder %q expects a number", ErrPlaceholderUnresolved, name)
		}

		form := cldr.OrdinalForm(ops, lang)
		if tmpl, ok := fm.Ordinal[form]; ok {
			return tmpl, nil
		}
		if tmpl, ok := fm.Ordinal[cldr.OrdOther]; ok {
			return tmpl, nil
		}

		return "", fmt.Errorf("%w: placeholder %q has no template for %v", ErrPlaceholderUnresolved, name, form)

	case FormMapGender:
		g, ok := v.AsGender()
		if !ok {
			return "", fmt.Errorf("%w: placeholder %q expects a gender", ErrPlaceholderUnresolved, name)
		}

		if tmpl, ok := fm.Gender[g]; ok {
			return tmpl, nil
		}

		return "", fmt.Errorf("%w: placeholder %q has no template for %v", ErrPlaceholderUnresolved, name, g)

	default:
		return "", fmt.Errorf("%w: placeholder %q has an unknown form map kind", ErrPlaceholderUnresolved, name)
	}
}

// interpolateTemplate scans tmpl for "{{name}}" occurrences, replacing each
// with p[name] if present, else c[name] stringified, else leaving the
// placeholder literal. Numeric values render with their default,
// non-locale-aware string representation.
func interpolateTemplate(tmpl string, c varContext, p map[string]string) (string, error) {
	// parseEntry/parseFormMap already ran every template string through
	// placeholder.Scan at load time, so this should never fail for a
	// LocalizedString obtained through LoadTranslationSet/Catalog.Build; kept
	// as defense in depth for TranslationSets assembled by hand.
	tokens, err := placeholder.Scan(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	if len(tokens) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == placeholder.TextToken {
			b.WriteString(tok.Value)
			continue
		}

		if v, ok := p[tok.Value]; ok {
			b.WriteString(v)
			continue
		}

		if v, ok := c[tok.Value]; ok {
			b.WriteString(v.String())
			continue
		}

		b.WriteString("{{")
		b.WriteString(tok.Value)
		b.WriteString("}}")
	}

	return b.String(), nil
}
