// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ir is the fusion intermediate representation (IR) tree.
//
// The tree is a two-level hierarchy. Statement is the root of all nodes.
// Every statement is either a Val, a node producing a value, or an Expr,
// a node consuming values and defining new ones. Each category has a closed
// set of concrete kinds. All the statements of one compilation unit are
// registered in a Fusion.
//
// The structure and semantic is modeled after the go/ast package.
package ir

type (
	// Statement is the root of the IR tree. Every node is exactly one of
	// Val or Expr, and exactly one concrete kind within its category.
	Statement interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()

		// Fusion returns the fusion owning the statement.
		Fusion() *Fusion

		// String returns a compact representation of the statement.
		String() string
	}

	// Val is a statement producing a value.
	Val interface {
		Statement

		// Kind of the value.
		Kind() ValKind

		// Name of the value, unique within its fusion.
		Name() int

		// val marks a statement as a value.
		val()
	}

	// Expr is a statement consuming values and defining new ones.
	Expr interface {
		Statement

		// Kind of the expression.
		Kind() ExprKind

		// Inputs returns the values consumed by the expression.
		Inputs() []Val

		// Outputs returns the values defined by the expression.
		Outputs() []Val

		// expr marks a statement as an expression.
		expr()
	}
)

var (
	_ Val = (*IterDomain)(nil)
	_ Val = (*TensorDomain)(nil)
	_ Val = (*TensorView)(nil)
	_ Val = (*Float)(nil)
	_ Val = (*Int)(nil)

	_ Expr = (*Split)(nil)
	_ Expr = (*Merge)(nil)
	_ Expr = (*Reorder)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*BinaryOp)(nil)
)
