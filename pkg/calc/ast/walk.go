/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

func Walk(v Visitor, node ASTNode) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *LiteralNode:
		// Skip, leaf node

	case *UnaryOpNode:
		Walk(v, n.Operand)

	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	default:
		panic("Unexpected ASTNode passed to Walk")
	}

	v.Visit(nil)
}
