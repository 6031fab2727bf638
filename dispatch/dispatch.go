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

// Package dispatch routes fusion IR statements to per-kind operations.
//
// The package removes the need for manual kind testing and casting in every
// pass processing IR nodes. A pass embeds one of four bases, overrides the
// operations for the node kinds it processes, and enters the dispatch with
// Statement or, to rewrite a whole fusion, with Mutate:
//
//   - OptOut: read-only dispatch. Leaf operations default to a no-op, so a
//     pass overrides only the kinds it cares about and every other node is
//     silently skipped.
//   - OptIn: read-only dispatch. Leaf operations default to an
//     UnhandledError, so a pass must override every kind it may encounter.
//   - OptOutMutator: transforming dispatch. Leaf operations default to
//     keeping the statement unchanged.
//   - OptInMutator: transforming dispatch. Leaf operations default to an
//     UnhandledError.
//
// A dispatch resolves the category of the statement first, then its concrete
// kind, then calls the matching operation. The bases hold no state: a pass
// may keep its own accumulators on the deriving type, which are only safe to
// use from one dispatch at a time.
package dispatch

import (
	"github.com/gx-org/fuser/fuserr"
	"github.com/gx-org/fuser/ir"
)

type (
	// Handler processes statements one concrete kind at a time.
	// OptOut and OptIn provide defaults for all the operations.
	Handler interface {
		// Vals.
		HandleIterDomain(*ir.IterDomain) error
		HandleTensorDomain(*ir.TensorDomain) error
		HandleTensorView(*ir.TensorView) error
		HandleFloat(*ir.Float) error
		HandleInt(*ir.Int) error

		// Exprs.
		HandleSplit(*ir.Split) error
		HandleMerge(*ir.Merge) error
		HandleReorder(*ir.Reorder) error
		HandleUnaryOp(*ir.UnaryOp) error
		HandleBinaryOp(*ir.BinaryOp) error
	}

	// ValHandler intercepts the dispatch of all values before their concrete
	// kind is resolved. The implementation may call Val to resume the
	// default routing.
	ValHandler interface {
		Handler
		HandleVal(ir.Val) error
	}

	// ExprHandler intercepts the dispatch of all expressions before their
	// concrete kind is resolved. The implementation may call Expr to resume
	// the default routing.
	ExprHandler interface {
		Handler
		HandleExpr(ir.Expr) error
	}
)

// Statement resolves the category of a statement and dispatches it as a
// value or as an expression. A statement of an unknown category is an
// internal error.
func Statement(h Handler, s ir.Statement) error {
	switch n := s.(type) {
	case ir.Val:
		if vh, ok := h.(ValHandler); ok {
			return vh.HandleVal(n)
		}
		return Val(h, n)
	case ir.Expr:
		if eh, ok := h.(ExprHandler); ok {
			return eh.HandleExpr(n)
		}
		return Expr(h, n)
	default:
		return fuserr.Internalf("cannot dispatch %T: not a value or an expression", s)
	}
}

// Val resolves the concrete kind of a value and calls the matching
// operation. A value of an unknown kind is an internal error.
func Val(h Handler, v ir.Val) error {
	switch n := v.(type) {
	case *ir.IterDomain:
		return h.HandleIterDomain(n)
	case *ir.TensorDomain:
		return h.HandleTensorDomain(n)
	case *ir.TensorView:
		return h.HandleTensorView(n)
	case *ir.Float:
		return h.HandleFloat(n)
	case *ir.Int:
		return h.HandleInt(n)
	default:
		return fuserr.Internalf("cannot dispatch value %T: unknown kind", v)
	}
}

// Expr resolves the concrete kind of an expression and calls the matching
// operation. An expression of an unknown kind is an internal error.
func Expr(h Handler, e ir.Expr) error {
	switch n := e.(type) {
	case *ir.Split:
		return h.HandleSplit(n)
	case *ir.Merge:
		return h.HandleMerge(n)
	case *ir.Reorder:
		return h.HandleReorder(n)
	case *ir.UnaryOp:
		return h.HandleUnaryOp(n)
	case *ir.BinaryOp:
		return h.HandleBinaryOp(n)
	default:
		return fuserr.Internalf("cannot dispatch expression %T: unknown kind", e)
	}
}
