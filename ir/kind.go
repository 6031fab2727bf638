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

package ir

// ValKind is the concrete kind of a value.
type ValKind uint

// Kinds of values.
const (
	InvalidValKind ValKind = iota
	IterDomainKind
	TensorDomainKind
	TensorViewKind
	FloatKind
	IntKind
)

// String returns a string representation of a value kind.
func (k ValKind) String() string {
	switch k {
	case IterDomainKind:
		return "iterdomain"
	case TensorDomainKind:
		return "tensordomain"
	case TensorViewKind:
		return "tensorview"
	case FloatKind:
		return "float"
	case IntKind:
		return "int"
	}
	return "invalid"
}

// ExprKind is the concrete kind of an expression.
type ExprKind uint

// Kinds of expressions.
const (
	InvalidExprKind ExprKind = iota
	SplitKind
	MergeKind
	ReorderKind
	UnaryOpKind
	BinaryOpKind
)

// String returns a string representation of an expression kind.
func (k ExprKind) String() string {
	switch k {
	case SplitKind:
		return "split"
	case MergeKind:
		return "merge"
	case ReorderKind:
		return "reorder"
	case UnaryOpKind:
		return "unaryop"
	case BinaryOpKind:
		return "binaryop"
	}
	return "invalid"
}
