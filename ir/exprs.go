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

// exprBase is the base of all expressions. The fusion sets the fields at
// registration.
type exprBase struct {
	fusion *Fusion
}

func (*exprBase) node() {}
func (*exprBase) expr() {}

// Fusion returns the fusion owning the expression.
func (e *exprBase) Fusion() *Fusion { return e.fusion }

// Split divides one axis of a domain in two by a factor.
type Split struct {
	exprBase
	out, in *TensorDomain
	axis    int
	factor  *Int
}

// NewSplit registers an expression splitting an axis of a domain by a factor,
// defining out.
func NewSplit(f *Fusion, out, in *TensorDomain, axis int, factor *Int) *Split {
	e := &Split{out: out, in: in, axis: axis, factor: factor}
	f.defineExpr(e, &e.exprBase)
	return e
}

// Kind of the expression.
func (*Split) Kind() ExprKind { return SplitKind }

// Out returns the domain defined by the split.
func (e *Split) Out() *TensorDomain { return e.out }

// In returns the domain being split.
func (e *Split) In() *TensorDomain { return e.in }

// Axis returns the position of the axis being split.
func (e *Split) Axis() int { return e.axis }

// Factor returns the size of the inner axis created by the split.
func (e *Split) Factor() *Int { return e.factor }

// Inputs returns the values consumed by the expression.
func (e *Split) Inputs() []Val { return []Val{e.in, e.factor} }

// Outputs returns the values defined by the expression.
func (e *Split) Outputs() []Val { return []Val{e.out} }

// Merge fuses an axis of a domain with the next one.
type Merge struct {
	exprBase
	out, in *TensorDomain
	axis    int
}

// NewMerge registers an expression merging an axis of a domain with the next
// one, defining out.
func NewMerge(f *Fusion, out, in *TensorDomain, axis int) *Merge {
	e := &Merge{out: out, in: in, axis: axis}
	f.defineExpr(e, &e.exprBase)
	return e
}

// Kind of the expression.
func (*Merge) Kind() ExprKind { return MergeKind }

// Out returns the domain defined by the merge.
func (e *Merge) Out() *TensorDomain { return e.out }

// In returns the domain being merged.
func (e *Merge) In() *TensorDomain { return e.in }

// Axis returns the position of the first of the two axes being merged.
func (e *Merge) Axis() int { return e.axis }

// Inputs returns the values consumed by the expression.
func (e *Merge) Inputs() []Val { return []Val{e.in} }

// Outputs returns the values defined by the expression.
func (e *Merge) Outputs() []Val { return []Val{e.out} }

// Reorder permutes the axes of a domain.
type Reorder struct {
	exprBase
	out, in  *TensorDomain
	pos2axis []int
}

// NewReorder registers an expression permuting the axes of a domain, defining
// out. pos2axis maps each axis position of out to an axis position of in.
func NewReorder(f *Fusion, out, in *TensorDomain, pos2axis []int) *Reorder {
	e := &Reorder{out: out, in: in, pos2axis: pos2axis}
	f.defineExpr(e, &e.exprBase)
	return e
}

// Kind of the expression.
func (*Reorder) Kind() ExprKind { return ReorderKind }

// Out returns the domain defined by the reorder.
func (e *Reorder) Out() *TensorDomain { return e.out }

// In returns the domain being permuted.
func (e *Reorder) In() *TensorDomain { return e.in }

// Pos2Axis maps each axis position of the output to an axis position of the
// input.
func (e *Reorder) Pos2Axis() []int { return e.pos2axis }

// Inputs returns the values consumed by the expression.
func (e *Reorder) Inputs() []Val { return []Val{e.in} }

// Outputs returns the values defined by the expression.
func (e *Reorder) Outputs() []Val { return []Val{e.out} }

// UnaryOpType is the operator of a unary expression.
type UnaryOpType uint

// Unary operators.
const (
	UnaryOpNeg UnaryOpType = iota
	UnaryOpCast
)

// String returns a string representation of the operator.
func (t UnaryOpType) String() string {
	switch t {
	case UnaryOpNeg:
		return "neg"
	case UnaryOpCast:
		return "cast"
	}
	return "invalid"
}

// UnaryOp is an elementwise operation with one operand.
type UnaryOp struct {
	exprBase
	op      UnaryOpType
	out, in Val
}

// NewUnaryOp registers an elementwise expression applying op to in, defining
// out.
func NewUnaryOp(f *Fusion, op UnaryOpType, out, in Val) *UnaryOp {
	e := &UnaryOp{op: op, out: out, in: in}
	f.defineExpr(e, &e.exprBase)
	return e
}

// Kind of the expression.
func (*UnaryOp) Kind() ExprKind { return UnaryOpKind }

// Op returns the operator of the expression.
func (e *UnaryOp) Op() UnaryOpType { return e.op }

// Out returns the value defined by the expression.
func (e *UnaryOp) Out() Val { return e.out }

// In returns the operand of the expression.
func (e *UnaryOp) In() Val { return e.in }

// Inputs returns the values consumed by the expression.
func (e *UnaryOp) Inputs() []Val { return []Val{e.in} }

// Outputs returns the values defined by the expression.
func (e *UnaryOp) Outputs() []Val { return []Val{e.out} }

// BinaryOpType is the operator of a binary expression.
type BinaryOpType uint

// Binary operators.
const (
	BinaryOpAdd BinaryOpType = iota
	BinaryOpSub
	BinaryOpMul
	BinaryOpDiv
	BinaryOpMod
	BinaryOpCeilDiv
	BinaryOpAnd
	BinaryOpLT
)

// String returns a string representation of the operator.
func (t BinaryOpType) String() string {
	switch t {
	case BinaryOpAdd:
		return "add"
	case BinaryOpSub:
		return "sub"
	case BinaryOpMul:
		return "mul"
	case BinaryOpDiv:
		return "div"
	case BinaryOpMod:
		return "mod"
	case BinaryOpCeilDiv:
		return "ceildiv"
	case BinaryOpAnd:
		return "and"
	case BinaryOpLT:
		return "lt"
	}
	return "invalid"
}

// BinaryOp is an elementwise operation with two operands.
type BinaryOp struct {
	exprBase
	op            BinaryOpType
	out, lhs, rhs Val
}

// NewBinaryOp registers an elementwise expression applying op to lhs and rhs,
// defining out.
func NewBinaryOp(f *Fusion, op BinaryOpType, out, lhs, rhs Val) *BinaryOp {
	e := &BinaryOp{op: op, out: out, lhs: lhs, rhs: rhs}
	f.defineExpr(e, &e.exprBase)
	return e
}

// Kind of the expression.
func (*BinaryOp) Kind() ExprKind { return BinaryOpKind }

// Op returns the operator of the expression.
func (e *BinaryOp) Op() BinaryOpType { return e.op }

// Out returns the value defined by the expression.
func (e *BinaryOp) Out() Val { return e.out }

// LHS returns the left operand of the expression.
func (e *BinaryOp) LHS() Val { return e.lhs }

// RHS returns the right operand of the expression.
func (e *BinaryOp) RHS() Val { return e.rhs }

// Inputs returns the values consumed by the expression.
func (e *BinaryOp) Inputs() []Val { return []Val{e.lhs, e.rhs} }

// Outputs returns the values defined by the expression.
func (e *BinaryOp) Outputs() []Val { return []Val{e.out} }
