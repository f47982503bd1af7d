// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package cldr

import "testing"

func TestFromInt(t *testing.T) {
	o := FromInt(3)
	if o.N != 3 || o.I != 3 || o.V != 0 {
		t.Fatalf("FromInt(3) = %+v", o)
	}

	o = FromInt(-3)
	if o.N != 3 || o.I != 3 {
		t.Fatalf("FromInt(-3) should take absolute value, got %+v", o)
	}
}

func TestFromStringPreservesVisibleDecimals(t *testing.T) {
	cases := []struct {
		lit         string
		wantI, wantV, wantW int
		wantF, wantT        uint64
	}{
		{"1", 1, 0, 0, 0, 0},
		{"1.0", 1, 1, 0, 0, 0},
		{"1.10", 1, 2, 1, 10, 1},
		{"1.50", 1, 2, 1, 50, 5},
		{"0.0", 0, 1, 0, 0, 0},
	}

	for _, c := range cases {
		o, err := FromString(c.lit)
		if err != nil {
			t.Fatalf("FromString(%q): %v", c.lit, err)
		}
		if int(o.I) != c.wantI || o.V != c.wantV || o.W != c.wantW || o.F != c.wantF || o.T != c.wantT {
			t.Errorf("FromString(%q) = %+v, want i=%d v=%d w=%d f=%d t=%d",
				c.lit, o, c.wantI, c.wantV, c.wantW, c.wantF, c.wantT)
		}
	}
}

func TestFromStringRejectsGarbage(t *testing.T) {
	for _, lit := range []string{"", "abc", "1.2.3", "1,5"} {
		if _, err := FromString(lit); err == nil {
			t.Errorf("FromString(%q): expected error", lit)
		}
	}
}

func TestFromFloatIntegerValuedHasZeroVisibleFraction(t *testing.T) {
	o := FromFloat(1.0)
	if o.I != 1 || o.V != 0 {
		t.Fatalf("FromFloat(1.0) = %+v, want v=0 (bare floats can't distinguish 1 from 1.0)", o)
	}
}

func TestFromFloatFractional(t *testing.T) {
	o := FromFloat(1.5)
	if o.I != 1 || o.V != 1 || o.F != 5 {
		t.Fatalf("FromFloat(1.5) = %+v", o)
	}
}

func TestFromFloatWithVisibleDecimalsMatchesExplicitLiteral(t *testing.T) {
	withOverride := FromFloatWithVisibleDecimals(1.0, 1)
	literal, err := FromString("1.0")
	if err != nil {
		t.Fatal(err)
	}

	if withOverride != literal {
		t.Fatalf("FromFloatWithVisibleDecimals(1.0, 1) = %+v, want %+v", withOverride, literal)
	}
}
