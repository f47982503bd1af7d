// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package expr

import "github.com/lokalized/lokalize/cldr"

// NodeKind discriminates the variants of an expression AST Node, mirroring
// the kind-tagged struct pattern used throughout this module instead of an
// interface hierarchy: a single Node type owns every variant's fields, and
// only the ones implied by Kind are meaningful.
type NodeKind int8

const (
	NodeNumber NodeKind = iota + 1
	NodeVariable
	NodeLangForm
	NodeBinary
)

// BinaryOp is the operator of a NodeBinary node: either a short-circuiting
// boolean connective or a typed comparison.
type BinaryOp int8

const (
	OpOr BinaryOp = iota + 1
	OpAnd
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op BinaryOp) String() string {
	switch op {
	case OpOr:
		return "||"
	case OpAnd:
		return "&&"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// Node is compiled once at load time (by Parse) and evaluated many times by
// Eval against different contexts and locales.
type Node struct {
	Kind NodeKind

	// NodeNumber
	Number float64

	// NodeVariable
	Variable string

	// NodeLangForm
	Form cldr.FormValue

	// NodeBinary
	Op          BinaryOp
	Left, Right *Node
}
