// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import "github.com/lokalized/lokalize/expr"

// Select implements the translation selector: alternatives are tried in
// declaration order, the first whose expression evaluates true wins and the
// algorithm recurses into its body, so a match several levels deep fully
// replaces every enclosing level. A failed
// alternative expression (UnknownVariable, TypeMismatch) is not fatal: it is
// treated as a non-match and selection continues with the next alternative,
// which is what lets an alternative reference an optional variable that
// isn't always present in the context.
func Select(l *LocalizedString, c varContext, lang string) (string, error) {
	for _, alt := range l.Alternatives {
		matched, err := expr.Eval(alt.Expr, c, lang)
		if err != nil {
			continue
		}
		if matched {
			return Select(alt.Body, c, lang)
		}
	}

	if !l.HasTranslation {
		return "", ErrNoTranslationAvailable
	}

	p, err := resolvePlaceholders(l, c, lang)
	if err != nil {
		return "", err
	}

	return interpolateTemplate(l.Translation, c, p)
}
