// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package expr

import "errors"

// ErrParse is the sentinel wrapped by every parse failure; test with
// errors.Is(err, expr.ErrParse).
var ErrParse = errors.New("expression parse error")

// ErrTypeMismatch is returned by Eval when a comparison's operand types are
// incompatible, e.g. comparing an ordinal LangForm against a cardinal one,
// or a Gender against a non-Gender context value.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrUnknownVariable is returned by Eval when an operand references a name
// absent from the Context.
var ErrUnknownVariable = errors.New("unknown variable")
