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

import (
	"iter"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"

	"github.com/gx-org/fuser/base/ordered"
)

// Fusion owns all the statements of one compilation unit.
//
// Statements are registered by the constructors of this package in build
// order. An expression can only be constructed from values that already
// exist, so the registration order of expressions is a topological order of
// the def-use graph.
type Fusion struct {
	vals  *ordered.Set[Val]
	exprs *ordered.Set[Expr]

	nextName int
}

// NewFusion returns an empty fusion.
func NewFusion() *Fusion {
	return &Fusion{
		vals:  ordered.NewSet[Val](),
		exprs: ordered.NewSet[Expr](),
	}
}

func (f *Fusion) defineVal(v Val, base *valBase) {
	base.fusion = f
	base.name = f.nextName
	f.nextName++
	f.vals.Add(v)
}

func (f *Fusion) defineExpr(e Expr, base *exprBase) {
	base.fusion = f
	f.exprs.Add(e)
}

// NumVals returns the number of values registered in the fusion.
func (f *Fusion) NumVals() int { return f.vals.Size() }

// NumExprs returns the number of expressions registered in the fusion.
func (f *Fusion) NumExprs() int { return f.exprs.Size() }

// Vals iterates over the values of the fusion in registration order.
func (f *Fusion) Vals() iter.Seq[Val] { return f.vals.All() }

// Exprs iterates over the expressions of the fusion in registration order.
func (f *Fusion) Exprs() iter.Seq[Expr] { return f.exprs.All() }

// Has returns true if the statement is registered in the fusion.
func (f *Fusion) Has(s Statement) bool {
	switch n := s.(type) {
	case Val:
		return f.vals.Has(n)
	case Expr:
		return f.exprs.Has(n)
	}
	return false
}

// Origin returns the expression defining a value.
// Returns nil if no expression defines the value.
func (f *Fusion) Origin(v Val) Expr {
	for e := range f.exprs.All() {
		for _, out := range e.Outputs() {
			if out == v {
				return e
			}
		}
	}
	return nil
}

// Uses returns the expressions consuming a value, in registration order.
func (f *Fusion) Uses(v Val) []Expr {
	var uses []Expr
	for e := range f.exprs.All() {
		for _, in := range e.Inputs() {
			if in == v {
				uses = append(uses, e)
				break
			}
		}
	}
	return uses
}

// Statements iterates over all the statements of the fusion in
// def-before-use order: expressions follow the registration order, each
// preceded by its input values not visited yet and followed by its output
// values. Values never reached by an expression come last, in registration
// order. An expression defining a value is always visited before the
// expressions consuming that value. Operands not registered in the fusion,
// for example values replaced but not stitched into their consumers yet, are
// not visited (Validate reports them).
func (f *Fusion) Statements() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		seen := make(map[Val]bool)
		yieldVal := func(v Val) bool {
			if seen[v] {
				return true
			}
			seen[v] = true
			return yield(v)
		}
		for e := range f.exprs.All() {
			for _, in := range e.Inputs() {
				if !f.vals.Has(in) {
					continue
				}
				if !yieldVal(in) {
					return
				}
			}
			if !yield(e) {
				return
			}
			for _, out := range e.Outputs() {
				if !f.vals.Has(out) {
					continue
				}
				if !yieldVal(out) {
					return
				}
			}
		}
		for v := range f.vals.All() {
			if !yieldVal(v) {
				return
			}
		}
	}
}

// ReplaceVal substitutes a value with another at the same position in the
// registration order. The replacement must be registered in the fusion.
// Stitching the replacement into the operands of consumer expressions is the
// responsibility of the caller.
func (f *Fusion) ReplaceVal(old, with Val) error {
	if with == nil {
		return errors.Errorf("cannot replace %s with a nil value", old)
	}
	if with.Fusion() != f {
		return errors.Errorf("cannot replace %s: replacement %s belongs to a different fusion", old, with)
	}
	if !f.vals.Replace(old, with) {
		return errors.Errorf("cannot replace %s: the value is not registered in the fusion", old)
	}
	return nil
}

// ReplaceExpr substitutes an expression with another at the same position in
// the registration order. The replacement must be registered in the fusion.
func (f *Fusion) ReplaceExpr(old, with Expr) error {
	if with == nil {
		return errors.Errorf("cannot replace %s with a nil expression", old)
	}
	if with.Fusion() != f {
		return errors.Errorf("cannot replace %s: replacement %s belongs to a different fusion", old, with)
	}
	if !f.exprs.Replace(old, with) {
		return errors.Errorf("cannot replace %s: the expression is not registered in the fusion", old)
	}
	return nil
}

// Validate checks the well-formedness of the fusion graph: all the operands
// of the expressions are values registered in the fusion and every value is
// defined by at most one expression. All the errors found are returned.
func (f *Fusion) Validate() error {
	var errs error
	origins := make(map[Val][]Expr)
	for e := range f.exprs.All() {
		for _, in := range e.Inputs() {
			if in == nil {
				errs = multierr.Append(errs, errors.Errorf("%s has a nil input", e))
				continue
			}
			if !f.vals.Has(in) {
				errs = multierr.Append(errs, errors.Errorf("input %s of %s is not registered in the fusion", in, e))
			}
		}
		for _, out := range e.Outputs() {
			if out == nil {
				errs = multierr.Append(errs, errors.Errorf("%s has a nil output", e))
				continue
			}
			if !f.vals.Has(out) {
				errs = multierr.Append(errs, errors.Errorf("output %s of %s is not registered in the fusion", out, e))
			}
			origins[out] = append(origins[out], e)
		}
	}
	defined := maps.Keys(origins)
	sort.Slice(defined, func(i, j int) bool {
		return defined[i].Name() < defined[j].Name()
	})
	for _, v := range defined {
		if len(origins[v]) > 1 {
			errs = multierr.Append(errs, errors.Errorf("%s is defined by %d expressions", v, len(origins[v])))
		}
	}
	return errs
}
