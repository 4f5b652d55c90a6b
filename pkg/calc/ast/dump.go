/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

// Dumper renders a tree one node per line, indented by depth.
type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node ASTNode) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	t := reflect.TypeOf(node)
	d.Output += level + t.Elem().Name() + "[" + node.Value() + "]" + "\n"
	d.indent += 1

	return d
}

// Dump returns the Dumper rendering of the tree rooted at node.
func Dump(node ASTNode) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}
