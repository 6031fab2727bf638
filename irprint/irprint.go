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

// Package irprint writes a textual form of fusion IR statements.
//
// The printer is a strict pass: it must cover every statement kind. A kind
// added to the IR with no printing rule fails the dispatch with an
// UnhandledError instead of being silently dropped from the listing.
package irprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/gx-org/backend/dtype"

	"github.com/gx-org/fuser/dispatch"
	"github.com/gx-org/fuser/ir"
)

type printer struct {
	dispatch.OptIn
	w io.Writer
}

var _ dispatch.Handler = (*printer)(nil)

// Statement writes the line describing a statement.
func Statement(w io.Writer, s ir.Statement) error {
	return dispatch.Statement(&printer{w: w}, s)
}

// Fusion writes the listing of a fusion: first the values defined by no
// expression, in registration order, then every expression in
// def-before-use order.
func Fusion(w io.Writer, f *ir.Fusion) error {
	p := &printer{w: w}
	for v := range f.Vals() {
		if f.Origin(v) != nil {
			continue
		}
		if err := dispatch.Val(p, v); err != nil {
			return err
		}
	}
	for e := range f.Exprs() {
		if err := dispatch.Expr(p, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

// HandleIterDomain writes the axis and its extent.
func (p *printer) HandleIterDomain(n *ir.IterDomain) error {
	return p.line("%s = axis(%s)", n, n.Extent())
}

// HandleTensorDomain writes the domain as the list of its axes.
func (p *printer) HandleTensorDomain(n *ir.TensorDomain) error {
	axes := make([]string, n.NDims())
	for i, axis := range n.Axes() {
		axes[i] = axis.String()
	}
	return p.line("%s = [%s]", n, strings.Join(axes, ", "))
}

// HandleTensorView writes the tensor, its domain, and its element type.
func (p *printer) HandleTensorView(n *ir.TensorView) error {
	return p.line("%s = tensor(%s, %s)", n, n.Domain(), dataTypeString(n.DType()))
}

// HandleFloat writes the scalar and its value.
func (p *printer) HandleFloat(n *ir.Float) error {
	if v, ok := n.Value(); ok {
		return p.line("%s = %v", n, v)
	}
	return p.line("%s = ?", n)
}

// HandleInt writes the scalar and its value.
func (p *printer) HandleInt(n *ir.Int) error {
	if v, ok := n.Value(); ok {
		return p.line("%s = %d", n, v)
	}
	return p.line("%s = ?", n)
}

// HandleSplit writes the split, its operand, and its parameters.
func (p *printer) HandleSplit(n *ir.Split) error {
	return p.line("%s = split(%s, axis=%d, factor=%s)", n.Out(), n.In(), n.Axis(), n.Factor())
}

// HandleMerge writes the merge, its operand, and the merged axis.
func (p *printer) HandleMerge(n *ir.Merge) error {
	return p.line("%s = merge(%s, axis=%d)", n.Out(), n.In(), n.Axis())
}

// HandleReorder writes the reorder, its operand, and the permutation.
func (p *printer) HandleReorder(n *ir.Reorder) error {
	perm := make([]string, len(n.Pos2Axis()))
	for i, axis := range n.Pos2Axis() {
		perm[i] = fmt.Sprint(axis)
	}
	return p.line("%s = reorder(%s, {%s})", n.Out(), n.In(), strings.Join(perm, ", "))
}

// HandleUnaryOp writes the operation and its operand.
func (p *printer) HandleUnaryOp(n *ir.UnaryOp) error {
	return p.line("%s = %s(%s)", n.Out(), n.Op(), n.In())
}

// HandleBinaryOp writes the operation and its operands.
func (p *printer) HandleBinaryOp(n *ir.BinaryOp) error {
	return p.line("%s = %s(%s, %s)", n.Out(), n.Op(), n.LHS(), n.RHS())
}

// dataTypeString returns a string representation of an element type.
func dataTypeString(dt dtype.DataType) string {
	switch dt {
	case dtype.Bool:
		return "bool"
	case dtype.Bfloat16:
		return "bfloat16"
	case dtype.Float32:
		return "float32"
	case dtype.Float64:
		return "float64"
	case dtype.Int32:
		return "int32"
	case dtype.Int64:
		return "int64"
	case dtype.Uint32:
		return "uint32"
	case dtype.Uint64:
		return "uint64"
	}
	return "invalid"
}
