// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package cldr classifies numbers into Unicode CLDR plural forms. Cardinal
// and ordinal classification delegate to golang.org/x/text/feature/plural,
// which carries the full CLDR rule data; this package adds the decimal
// operand decomposition that preserves visible trailing zeros, the
// plural-range tables (which x/text has no equivalent for), grammatical
// gender, and the curated per-language sample values that seed the
// classification property tests.
package cldr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operands are the CLDR plural operands derived from a decimal number:
//
//	n - absolute value of the number
//	i - integer digits of n
//	v - number of visible fraction digits, with trailing zeros
//	w - number of visible fraction digits, without trailing zeros
//	f - visible fraction digits, with trailing zeros, as an integer
//	t - visible fraction digits, without trailing zeros, as an integer
//
// Visible-decimal information matters: "1" and "1.0" decompose differently
// (v=0 vs v=1) even though they are numerically equal.
type Operands struct {
	N float64
	I uint64
	V int
	W int
	F uint64
	T uint64
}

// FromInt decomposes an integer value. Integers always have v=0.
func FromInt(n int64) Operands {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	return Operands{N: float64(abs), I: uint64(abs)}
}

// FromIntWithVisibleDecimals decomposes an integer as if it had been
// written with the given number of visible (zero) decimal places, e.g.
// FromIntWithVisibleDecimals(1, 1) behaves like the literal "1.0".
func FromIntWithVisibleDecimals(n int64, visible int) Operands {
	if visible <= 0 {
		return FromInt(n)
	}

	o := FromInt(n)
	o.V = visible
	// trailing zeros only: w, f, t all stay zero.
	return o
}

// FromString decomposes a literal decimal string, preserving visible
// trailing zeros exactly as written (e.g. "1.10" has v=2, w=1).
func FromString(s string) (Operands, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Operands{}, fmt.Errorf("cldr: empty numeric literal")
	}

	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}

	if intPart == "" {
		intPart = "0"
	}

	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Operands{}, fmt.Errorf("cldr: invalid numeric literal %q", s)
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return Operands{}, fmt.Errorf("cldr: invalid numeric literal %q", s)
		}
	}

	i, err := parseUintDigits(intPart)
	if err != nil {
		return Operands{}, fmt.Errorf("cldr: invalid numeric literal %q: %w", s, err)
	}

	trimmed := strings.TrimRight(fracPart, "0")

	f, err := parseUintDigits(fracPart)
	if err != nil {
		return Operands{}, fmt.Errorf("cldr: invalid numeric literal %q: %w", s, err)
	}

	t, err := parseUintDigits(trimmed)
	if err != nil {
		return Operands{}, fmt.Errorf("cldr: invalid numeric literal %q: %w", s, err)
	}

	n, _ := strconv.ParseFloat(intPart+"."+fracPartOrZero(fracPart), 64)

	return Operands{
		N: n,
		I: i,
		V: len(fracPart),
		W: len(trimmed),
		F: f,
		T: t,
	}, nil
}

func fracPartOrZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func parseUintDigits(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, nil
	}

	return strconv.ParseUint(s, 10, 64)
}

// FromFloat decomposes a bare float64. Because float64 cannot distinguish
// "1" from "1.0", a value with no fractional part is always treated as an
// integer (v=0); use FromFloatWithVisibleDecimals or FromString when the
// visible-decimal distinction matters.
func FromFloat(f float64) Operands {
	af := math.Abs(f)
	if af == math.Trunc(af) && !math.IsInf(af, 0) {
		return Operands{N: af, I: uint64(af)}
	}

	s := strconv.FormatFloat(af, 'f', -1, 64)
	o, err := FromString(s)
	if err != nil {
		// unreachable for finite floats, but degrade gracefully
		return Operands{N: af, I: uint64(af)}
	}

	return o
}

// FromFloatWithVisibleDecimals decomposes f as if formatted with a fixed
// number of decimal places, e.g. FromFloatWithVisibleDecimals(1, 1)
// behaves like the literal "1.0".
func FromFloatWithVisibleDecimals(f float64, visible int) Operands {
	if visible <= 0 {
		return FromFloat(f)
	}

	af := math.Abs(f)
	s := strconv.FormatFloat(af, 'f', visible, 64)
	o, err := FromString(s)
	if err != nil {
		return FromFloat(f)
	}

	return o
}
