// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package lokalize

import "github.com/lokalized/lokalize/cldr"

// Var is a single named context value, built with Num, Gen or Str and
// passed variadically to Get.
type Var struct {
	name  string
	value cldr.Value
}

// Num declares a numeric context variable, classified into a Cardinal,
// Ordinal or range form as needed by the expression or placeholder that
// references it. A float64 cannot carry visible trailing zeros, so
// Num("n", 1) always classifies like the literal "1", never like "1.0";
// use NumDecimals when that distinction matters.
func Num(name string, value float64) Var {
	return Var{name: name, value: cldr.NumberValue(value)}
}

// NumDecimals declares a numeric context variable that classifies and
// renders as if written with the given number of visible decimal places:
// NumDecimals("n", 1, 1) behaves like the literal "1.0", which in English
// is cardinal other rather than one.
func NumDecimals(name string, value float64, visible int) Var {
	return Var{name: name, value: cldr.NumberValueWithVisibleDecimals(value, visible)}
}

// Gen declares a grammatical-gender context variable.
func Gen(name string, value cldr.Gender) Var {
	return Var{name: name, value: cldr.GenderValue(value)}
}

// Str declares a plain string context variable.
func Str(name string, value string) Var {
	return Var{name: name, value: cldr.StringValue(value)}
}

// varContext adapts a flat slice of Var into the lookup map both the
// expression evaluator (expr.Context) and the interpolator need; it is
// built once per Get call and discarded on return, matching the stack-bound,
// per-call scratch-state contract.
type varContext map[string]cldr.Value

func newVarContext(vars []Var) varContext {
	c := make(varContext, len(vars))
	for _, v := range vars {
		c[v.name] = v.value
	}
	return c
}

// Resolve implements expr.Context.
func (c varContext) Resolve(name string) (cldr.Value, bool) {
	v, ok := c[name]
	return v, ok
}
