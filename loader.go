// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/lokalized/lokalize/cldr"
	"github.com/lokalized/lokalize/expr"
	"github.com/lokalized/lokalize/placeholder"
)

// rawPlaceholder mirrors the object form of a single placeholder spec.
type rawPlaceholder struct {
	Value        *string           `json:"value"`
	Range        *rawRange         `json:"range"`
	Translations map[string]string `json:"translations"`
}

type rawRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoadTranslationSet parses a single strings file's JSON payload (the entire
// file content, keyed by message key) for the given locale tag.
func LoadTranslationSet(locale language.Tag, data []byte) (*TranslationSet, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	entries := make(map[string]*LocalizedString, len(top))
	for key, raw := range top {
		ls, err := parseEntry(key, raw)
		if err != nil {
			return nil, err
		}
		entries[key] = ls
	}

	return newTranslationSet(locale, entries), nil
}

// parseEntry parses either a bare string (shorthand for {"translation": ...})
// or a full object, and is reused verbatim for alternative bodies, since an
// alternative's value may itself be either shape.
func parseEntry(key string, raw json.RawMessage) (*LocalizedString, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedFile, key, err)
		}

		if _, err := placeholder.Scan(s); err != nil {
			return nil, fmt.Errorf("%w: key %q: translation: %v", ErrMalformedFile, key, err)
		}

		return &LocalizedString{Key: key, Translation: s, HasTranslation: true}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedFile, key, err)
	}

	ls := &LocalizedString{Key: key}

	if rawTranslation, ok := obj["translation"]; ok {
		var s string
		if err := json.Unmarshal(rawTranslation, &s); err != nil {
			return nil, fmt.Errorf("%w: key %q: translation: %v", ErrMalformedFile, key, err)
		}
		if _, err := placeholder.Scan(s); err != nil {
			return nil, fmt.Errorf("%w: key %q: translation: %v", ErrMalformedFile, key, err)
		}
		ls.Translation = s
		ls.HasTranslation = true
	}

	if rawCommentary, ok := obj["commentary"]; ok {
		var s string
		if err := json.Unmarshal(rawCommentary, &s); err != nil {
			return nil, fmt.Errorf("%w: key %q: commentary: %v", ErrMalformedFile, key, err)
		}
		ls.Commentary = s
	}

	if rawPlaceholders, ok := obj["placeholders"]; ok {
		var specs map[string]rawPlaceholder
		if err := json.Unmarshal(rawPlaceholders, &specs); err != nil {
			return nil, fmt.Errorf("%w: key %q: placeholders: %v", ErrMalformedFile, key, err)
		}

		ls.Placeholders = make(map[string]PlaceholderSpec, len(specs))
		for name, spec := range specs {
			parsed, err := parsePlaceholderSpec(key, name, spec)
			if err != nil {
				return nil, err
			}
			ls.Placeholders[name] = parsed
		}
	}

	if rawAlternatives, ok := obj["alternatives"]; ok {
		var list []map[string]json.RawMessage
		if err := json.Unmarshal(rawAlternatives, &list); err != nil {
			return nil, fmt.Errorf("%w: key %q: alternatives: %v", ErrMalformedFile, key, err)
		}

		ls.Alternatives = make([]Alternative, 0, len(list))
		for i, entry := range list {
			if len(entry) != 1 {
				return nil, fmt.Errorf("%w: key %q: alternative %d must have exactly one expression key", ErrMalformedFile, key, i)
			}

			for exprSrc, body := range entry {
				node, err := expr.Parse(exprSrc)
				if err != nil {
					return nil, fmt.Errorf("%w: key %q: alternative %d: %v", ErrExpressionParseError, key, i, err)
				}

				if err := checkUnknownSymbols(node); err != nil {
					return nil, fmt.Errorf("%w: key %q: alternative %d: %v", ErrUnknownExpressionSymbol, key, i, err)
				}

				bodyLS, err := parseEntry(key, body)
				if err != nil {
					return nil, err
				}

				ls.Alternatives = append(ls.Alternatives, Alternative{Expr: node, ExprSrc: exprSrc, Body: bodyLS})
			}
		}
	}

	if !ls.HasTranslation && len(ls.Alternatives) == 0 {
		return nil, fmt.Errorf("%w: key %q: neither translation nor alternatives present", ErrMalformedFile, key)
	}

	return ls, nil
}

func parsePlaceholderSpec(key, name string, raw rawPlaceholder) (PlaceholderSpec, error) {
	if raw.Value != nil && raw.Range != nil {
		return PlaceholderSpec{}, fmt.Errorf("%w: key %q: placeholder %q", ErrPlaceholderSpecConflict, key, name)
	}

	fm, err := parseFormMap(key, name, raw.Translations)
	if err != nil {
		return PlaceholderSpec{}, err
	}

	switch {
	case raw.Value != nil:
		return PlaceholderSpec{Kind: PlaceholderValue, Source: *raw.Value, Translations: fm}, nil
	case raw.Range != nil:
		return PlaceholderSpec{Kind: PlaceholderRange, Start: raw.Range.Start, End: raw.Range.End, Translations: fm}, nil
	default:
		return PlaceholderSpec{}, fmt.Errorf("%w: key %q: placeholder %q has neither value nor range", ErrMalformedFile, key, name)
	}
}

// parseFormMap classifies the translations object's keys into exactly one of
// the three enumerations, refusing any object that mixes them.
func parseFormMap(key, name string, translations map[string]string) (FormMap, error) {
	var fm FormMap

	for label, tmpl := range translations {
		if _, err := placeholder.Scan(tmpl); err != nil {
			return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q: label %q: %v", ErrMalformedFile, key, name, label, err)
		}

		switch {
		case strings.HasPrefix(label, "CARDINALITY_"):
			c, ok := parseCardinalLabel(label)
			if !ok {
				return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q: unknown cardinal label %q", ErrMalformedFile, key, name, label)
			}
			if fm.Kind != 0 && fm.Kind != FormMapCardinal {
				return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q", ErrMixedFormMap, key, name)
			}
			fm.Kind = FormMapCardinal
			if fm.Cardinal == nil {
				fm.Cardinal = map[cldr.Cardinal]string{}
			}
			fm.Cardinal[c] = tmpl

		case strings.HasPrefix(label, "ORDINALITY_"):
			o, ok := parseOrdinalLabel(label)
			if !ok {
				return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q: unknown ordinal label %q", ErrMalformedFile, key, name, label)
			}
			if fm.Kind != 0 && fm.Kind != FormMapOrdinal {
				return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q", ErrMixedFormMap, key, name)
			}
			fm.Kind = FormMapOrdinal
			if fm.Ordinal == nil {
				fm.Ordinal = map[cldr.Ordinal]string{}
			}
			fm.Ordinal[o] = tmpl

		case label == "MASCULINE" || label == "FEMININE" || label == "NEUTER":
			g := parseGenderLabel(label)
			if fm.Kind != 0 && fm.Kind != FormMapGender {
				return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q", ErrMixedFormMap, key, name)
			}
			fm.Kind = FormMapGender
			if fm.Gender == nil {
				fm.Gender = map[cldr.Gender]string{}
			}
			fm.Gender[g] = tmpl

		default:
			return FormMap{}, fmt.Errorf("%w: key %q: placeholder %q: unknown translations label %q", ErrMalformedFile, key, name, label)
		}
	}

	return fm, nil
}

func parseCardinalLabel(label string) (cldr.Cardinal, bool) {
	switch strings.TrimPrefix(label, "CARDINALITY_") {
	case "ZERO":
		return cldr.Zero, true
	case "ONE":
		return cldr.One, true
	case "TWO":
		return cldr.Two, true
	case "FEW":
		return cldr.Few, true
	case "MANY":
		return cldr.Many, true
	case "OTHER":
		return cldr.Other, true
	default:
		return 0, false
	}
}

func parseOrdinalLabel(label string) (cldr.Ordinal, bool) {
	switch strings.TrimPrefix(label, "ORDINALITY_") {
	case "ZERO":
		return cldr.OrdZero, true
	case "ONE":
		return cldr.OrdOne, true
	case "TWO":
		return cldr.OrdTwo, true
	case "FEW":
		return cldr.OrdFew, true
	case "MANY":
		return cldr.OrdMany, true
	case "OTHER":
		return cldr.OrdOther, true
	default:
		return 0, false
	}
}

func parseGenderLabel(label string) cldr.Gender {
	switch label {
	case "MASCULINE":
		return cldr.Masculine
	case "FEMININE":
		return cldr.Feminine
	default:
		return cldr.Neuter
	}
}

// checkUnknownSymbols walks a parsed alternative expression and currently
// reports no error for any node: LangForm nodes are not inspected, since
// Tokenize only ever emits a TokLangForm for an exact reservedWords hit.
// It is the load-time hook the UnknownExpressionSymbol error kind is
// named for.
func checkUnknownSymbols(n *expr.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case expr.NodeBinary:
		if err := checkUnknownSymbols(n.Left); err != nil {
			return err
		}
		return checkUnknownSymbols(n.Right)
	default:
		return nil
	}
}
