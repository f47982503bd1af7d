// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import "errors"

// Load-time and build-time errors. These are fatal: the engine refuses to
// serve queries from an incomplete Catalog, so callers are expected to
// check them at startup rather than at query time.
var (
	ErrMalformedFile           = errors.New("lokalize: malformed strings file")
	ErrMixedFormMap            = errors.New("lokalize: translations object mixes enumerations")
	ErrPlaceholderSpecConflict = errors.New("lokalize: placeholder has both value and range")
	ErrUnknownExpressionSymbol = errors.New("lokalize: unknown expression symbol")
	ErrExpressionParseError    = errors.New("lokalize: expression parse error")
	ErrAmbiguousLocale         = errors.New("lokalize: ambiguous locale")
)

// Query-time errors. A failed alternative expression is never surfaced this
// way; per the propagation policy, it simply evaluates to false and
// selection continues with the next alternative. These are only returned
// from the top-level selection of a LocalizedString that has neither a
// translation nor a matching alternative, or whose own placeholders fail
// to resolve.
var (
	ErrPlaceholderUnresolved  = errors.New("lokalize: placeholder unresolved")
	ErrNoTranslationAvailable = errors.New("lokalize: no translation available")
)
