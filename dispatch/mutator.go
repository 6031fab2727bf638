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

package dispatch

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/gx-org/fuser/fuserr"
	"github.com/gx-org/fuser/ir"
)

// Rewrite is the result of a mutate operation. It signals either that the
// statement is kept as is or that it must be replaced, without relying on
// pointer identity.
type Rewrite struct {
	repl ir.Statement
}

// Unchanged signals that the statement is kept as is.
func Unchanged() Rewrite { return Rewrite{} }

// ReplaceWith signals that the statement must be replaced by s.
func ReplaceWith(s ir.Statement) Rewrite { return Rewrite{repl: s} }

// Replaced returns true if the statement must be replaced.
func (r Rewrite) Replaced() bool { return r.repl != nil }

// Replacement returns the statement to substitute for the dispatched one.
// Returns nil if the statement is kept as is.
func (r Rewrite) Replacement() ir.Statement { return r.repl }

type (
	// Mutator processes statements one concrete kind at a time, returning a
	// possible replacement for the statement. OptOutMutator and OptInMutator
	// provide defaults for all the operations.
	Mutator interface {
		// Vals.
		MutateIterDomain(*ir.IterDomain) (Rewrite, error)
		MutateTensorDomain(*ir.TensorDomain) (Rewrite, error)
		MutateTensorView(*ir.TensorView) (Rewrite, error)
		MutateFloat(*ir.Float) (Rewrite, error)
		MutateInt(*ir.Int) (Rewrite, error)

		// Exprs.
		MutateSplit(*ir.Split) (Rewrite, error)
		MutateMerge(*ir.Merge) (Rewrite, error)
		MutateReorder(*ir.Reorder) (Rewrite, error)
		MutateUnaryOp(*ir.UnaryOp) (Rewrite, error)
		MutateBinaryOp(*ir.BinaryOp) (Rewrite, error)
	}

	// ValMutator intercepts the mutation of all values before their concrete
	// kind is resolved. The implementation may call MutateVal to resume the
	// default routing.
	ValMutator interface {
		Mutator
		MutateVal(ir.Val) (Rewrite, error)
	}

	// ExprMutator intercepts the mutation of all expressions before their
	// concrete kind is resolved. The implementation may call MutateExpr to
	// resume the default routing.
	ExprMutator interface {
		Mutator
		MutateExpr(ir.Expr) (Rewrite, error)
	}
)

// MutateStatement resolves the category of a statement and dispatches it as
// a value or as an expression. A statement of an unknown category is an
// internal error.
func MutateStatement(m Mutator, s ir.Statement) (Rewrite, error) {
	switch n := s.(type) {
	case ir.Val:
		if vm, ok := m.(ValMutator); ok {
			return vm.MutateVal(n)
		}
		return MutateVal(m, n)
	case ir.Expr:
		if em, ok := m.(ExprMutator); ok {
			return em.MutateExpr(n)
		}
		return MutateExpr(m, n)
	default:
		return Rewrite{}, fuserr.Internalf("cannot mutate %T: not a value or an expression", s)
	}
}

// MutateVal resolves the concrete kind of a value and calls the matching
// operation. A value of an unknown kind is an internal error.
func MutateVal(m Mutator, v ir.Val) (Rewrite, error) {
	switch n := v.(type) {
	case *ir.IterDomain:
		return m.MutateIterDomain(n)
	case *ir.TensorDomain:
		return m.MutateTensorDomain(n)
	case *ir.TensorView:
		return m.MutateTensorView(n)
	case *ir.Float:
		return m.MutateFloat(n)
	case *ir.Int:
		return m.MutateInt(n)
	default:
		return Rewrite{}, fuserr.Internalf("cannot mutate value %T: unknown kind", v)
	}
}

// MutateExpr resolves the concrete kind of an expression and calls the
// matching operation. An expression of an unknown kind is an internal error.
func MutateExpr(m Mutator, e ir.Expr) (Rewrite, error) {
	switch n := e.(type) {
	case *ir.Split:
		return m.MutateSplit(n)
	case *ir.Merge:
		return m.MutateMerge(n)
	case *ir.Reorder:
		return m.MutateReorder(n)
	case *ir.UnaryOp:
		return m.MutateUnaryOp(n)
	case *ir.BinaryOp:
		return m.MutateBinaryOp(n)
	default:
		return Rewrite{}, fuserr.Internalf("cannot mutate expression %T: unknown kind", e)
	}
}

// Mutate dispatches over every statement of a fusion, in the order
// documented by Fusion.Statements, and substitutes the replacements returned
// by the mutator into the fusion. A replacement must be of the same category
// as the statement it replaces. Stitching a replacement into the operands of
// the other statements is the responsibility of the pass.
func Mutate(m Mutator, f *ir.Fusion) error {
	stmts := slices.Collect(f.Statements())
	for _, s := range stmts {
		r, err := MutateStatement(m, s)
		if err != nil {
			return err
		}
		if !r.Replaced() {
			continue
		}
		if err := replace(f, s, r.Replacement()); err != nil {
			return err
		}
	}
	return nil
}

func replace(f *ir.Fusion, old, with ir.Statement) error {
	switch n := old.(type) {
	case ir.Val:
		withVal, ok := with.(ir.Val)
		if !ok {
			return errors.Errorf("cannot replace value %s with %T: the categories do not match", old, with)
		}
		return f.ReplaceVal(n, withVal)
	case ir.Expr:
		withExpr, ok := with.(ir.Expr)
		if !ok {
			return errors.Errorf("cannot replace expression %s with %T: the categories do not match", old, with)
		}
		return f.ReplaceExpr(n, withExpr)
	default:
		return fuserr.Internalf("cannot replace %T: not a value or an expression", old)
	}
}

// OptOutMutator is the base of permissive transforming passes. All the
// operations default to keeping the statement unchanged: a pass embeds
// OptOutMutator and overrides only the operations for the kinds it rewrites.
//
// The zero value is ready to use.
type OptOutMutator struct{}

var _ Mutator = OptOutMutator{}

// MutateIterDomain keeps the statement unchanged.
func (OptOutMutator) MutateIterDomain(*ir.IterDomain) (Rewrite, error) { return Unchanged(), nil }

// MutateTensorDomain keeps the statement unchanged.
func (OptOutMutator) MutateTensorDomain(*ir.TensorDomain) (Rewrite, error) { return Unchanged(), nil }

// MutateTensorView keeps the statement unchanged.
func (OptOutMutator) MutateTensorView(*ir.TensorView) (Rewrite, error) { return Unchanged(), nil }

// MutateFloat keeps the statement unchanged.
func (OptOutMutator) MutateFloat(*ir.Float) (Rewrite, error) { return Unchanged(), nil }

// MutateInt keeps the statement unchanged.
func (OptOutMutator) MutateInt(*ir.Int) (Rewrite, error) { return Unchanged(), nil }

// MutateSplit keeps the statement unchanged.
func (OptOutMutator) MutateSplit(*ir.Split) (Rewrite, error) { return Unchanged(), nil }

// MutateMerge keeps the statement unchanged.
func (OptOutMutator) MutateMerge(*ir.Merge) (Rewrite, error) { return Unchanged(), nil }

// MutateReorder keeps the statement unchanged.
func (OptOutMutator) MutateReorder(*ir.Reorder) (Rewrite, error) { return Unchanged(), nil }

// MutateUnaryOp keeps the statement unchanged.
func (OptOutMutator) MutateUnaryOp(*ir.UnaryOp) (Rewrite, error) { return Unchanged(), nil }

// MutateBinaryOp keeps the statement unchanged.
func (OptOutMutator) MutateBinaryOp(*ir.BinaryOp) (Rewrite, error) { return Unchanged(), nil }

// OptInMutator is the base of strict transforming passes. All the operations
// default to an UnhandledError naming the kind: a pass embeds OptInMutator
// and must override the operation of every kind it may encounter.
//
// The zero value is ready to use.
type OptInMutator struct{}

var _ Mutator = OptInMutator{}

// MutateIterDomain returns an UnhandledError.
func (OptInMutator) MutateIterDomain(*ir.IterDomain) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.IterDomainKind)
}

// MutateTensorDomain returns an UnhandledError.
func (OptInMutator) MutateTensorDomain(*ir.TensorDomain) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.TensorDomainKind)
}

// MutateTensorView returns an UnhandledError.
func (OptInMutator) MutateTensorView(*ir.TensorView) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.TensorViewKind)
}

// MutateFloat returns an UnhandledError.
func (OptInMutator) MutateFloat(*ir.Float) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.FloatKind)
}

// MutateInt returns an UnhandledError.
func (OptInMutator) MutateInt(*ir.Int) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.IntKind)
}

// MutateSplit returns an UnhandledError.
func (OptInMutator) MutateSplit(*ir.Split) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.SplitKind)
}

// MutateMerge returns an UnhandledError.
func (OptInMutator) MutateMerge(*ir.Merge) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.MergeKind)
}

// MutateReorder returns an UnhandledError.
func (OptInMutator) MutateReorder(*ir.Reorder) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.ReorderKind)
}

// MutateUnaryOp returns an UnhandledError.
func (OptInMutator) MutateUnaryOp(*ir.UnaryOp) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.UnaryOpKind)
}

// MutateBinaryOp returns an UnhandledError.
func (OptInMutator) MutateBinaryOp(*ir.BinaryOp) (Rewrite, error) {
	return Rewrite{}, unhandledMutate(ir.BinaryOpKind)
}
