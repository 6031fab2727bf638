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

package dispatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/fuser/dispatch"
	"github.com/gx-org/fuser/ir"
)

func newDomain(f *ir.Fusion) *ir.TensorDomain {
	return ir.NewTensorDomain(f, ir.NewIterDomain(f, ir.NewInt(f, 16)))
}

// kindTests builds one statement of each concrete kind.
var kindTests = []struct {
	kind  string
	build func(f *ir.Fusion) ir.Statement
}{
	{
		kind:  "iterdomain",
		build: func(f *ir.Fusion) ir.Statement { return ir.NewIterDomain(f, ir.NewInt(f, 16)) },
	},
	{
		kind:  "tensordomain",
		build: func(f *ir.Fusion) ir.Statement { return newDomain(f) },
	},
	{
		kind:  "tensorview",
		build: func(f *ir.Fusion) ir.Statement { return ir.NewTensorView(f, newDomain(f), dtype.Float32) },
	},
	{
		kind:  "float",
		build: func(f *ir.Fusion) ir.Statement { return ir.NewFloat(f, 1.5) },
	},
	{
		kind:  "int",
		build: func(f *ir.Fusion) ir.Statement { return ir.NewInt(f, 2) },
	},
	{
		kind: "split",
		build: func(f *ir.Fusion) ir.Statement {
			return ir.NewSplit(f, newDomain(f), newDomain(f), 0, ir.NewInt(f, 4))
		},
	},
	{
		kind: "merge",
		build: func(f *ir.Fusion) ir.Statement {
			return ir.NewMerge(f, newDomain(f), newDomain(f), 0)
		},
	},
	{
		kind: "reorder",
		build: func(f *ir.Fusion) ir.Statement {
			return ir.NewReorder(f, newDomain(f), newDomain(f), []int{0})
		},
	},
	{
		kind: "unaryop",
		build: func(f *ir.Fusion) ir.Statement {
			return ir.NewUnaryOp(f, ir.UnaryOpNeg, ir.NewSymbolicInt(f), ir.NewInt(f, 1))
		},
	},
	{
		kind: "binaryop",
		build: func(f *ir.Fusion) ir.Statement {
			return ir.NewBinaryOp(f, ir.BinaryOpAdd, ir.NewSymbolicInt(f), ir.NewInt(f, 1), ir.NewInt(f, 2))
		},
	},
}

// kindRecorder overrides all the operations to count the calls per kind.
type kindRecorder struct {
	dispatch.OptOut
	counts map[string]int
}

func newKindRecorder() *kindRecorder {
	return &kindRecorder{counts: make(map[string]int)}
}

func (r *kindRecorder) record(kind fmt.Stringer) error {
	r.counts[kind.String()]++
	return nil
}

func (r *kindRecorder) HandleIterDomain(n *ir.IterDomain) error     { return r.record(n.Kind()) }
func (r *kindRecorder) HandleTensorDomain(n *ir.TensorDomain) error { return r.record(n.Kind()) }
func (r *kindRecorder) HandleTensorView(n *ir.TensorView) error     { return r.record(n.Kind()) }
func (r *kindRecorder) HandleFloat(n *ir.Float) error               { return r.record(n.Kind()) }
func (r *kindRecorder) HandleInt(n *ir.Int) error                   { return r.record(n.Kind()) }
func (r *kindRecorder) HandleSplit(n *ir.Split) error               { return r.record(n.Kind()) }
func (r *kindRecorder) HandleMerge(n *ir.Merge) error               { return r.record(n.Kind()) }
func (r *kindRecorder) HandleReorder(n *ir.Reorder) error           { return r.record(n.Kind()) }
func (r *kindRecorder) HandleUnaryOp(n *ir.UnaryOp) error           { return r.record(n.Kind()) }
func (r *kindRecorder) HandleBinaryOp(n *ir.BinaryOp) error         { return r.record(n.Kind()) }

func TestDispatchRoutesToKindOperation(t *testing.T) {
	for _, test := range kindTests {
		node := test.build(ir.NewFusion())
		r := newKindRecorder()
		if err := dispatch.Statement(r, node); err != nil {
			t.Errorf("%s: dispatch returned %v", test.kind, err)
			continue
		}
		want := map[string]int{test.kind: 1}
		if !cmp.Equal(r.counts, want) {
			t.Errorf("%s: wrong operations called: %s", test.kind, cmp.Diff(r.counts, want))
		}
	}
}

func TestOptOutDefaultsToNoOp(t *testing.T) {
	for _, test := range kindTests {
		node := test.build(ir.NewFusion())
		if err := dispatch.Statement(dispatch.OptOut{}, node); err != nil {
			t.Errorf("%s: dispatch returned %v but want no error", test.kind, err)
		}
	}
}

func TestOptInDefaultsToUnhandled(t *testing.T) {
	for _, test := range kindTests {
		node := test.build(ir.NewFusion())
		err := dispatch.Statement(dispatch.OptIn{}, node)
		if err == nil {
			t.Errorf("%s: dispatch returned no error", test.kind)
			continue
		}
		var unhandled *dispatch.UnhandledError
		if !errors.As(err, &unhandled) {
			t.Errorf("%s: dispatch returned %T but want an UnhandledError", test.kind, err)
			continue
		}
		if unhandled.Kind != test.kind {
			t.Errorf("%s: the error names kind %q but want %q", test.kind, unhandled.Kind, test.kind)
		}
		if unhandled.Op != "handle" {
			t.Errorf("%s: the error names operation %q but want %q", test.kind, unhandled.Op, "handle")
		}
	}
}

// buildScalarChain registers i0 = 4, i1 = neg(i0), and i2 = add(i1, i0).
func buildScalarChain(f *ir.Fusion) (*ir.Int, *ir.UnaryOp, *ir.BinaryOp) {
	in := ir.NewInt(f, 4)
	negOut := ir.NewSymbolicInt(f)
	neg := ir.NewUnaryOp(f, ir.UnaryOpNeg, negOut, in)
	addOut := ir.NewSymbolicInt(f)
	add := ir.NewBinaryOp(f, ir.BinaryOpAdd, addOut, negOut, in)
	return in, neg, add
}

// binaryOpFinder collects the binary operations of a fusion and skips
// everything else.
type binaryOpFinder struct {
	dispatch.OptOut
	ops []*ir.BinaryOp
}

func (r *binaryOpFinder) HandleBinaryOp(n *ir.BinaryOp) error {
	r.ops = append(r.ops, n)
	return nil
}

func TestFindBinaryOps(t *testing.T) {
	f := ir.NewFusion()
	_, _, add := buildScalarChain(f)
	r := &binaryOpFinder{}
	for s := range f.Statements() {
		if err := dispatch.Statement(r, s); err != nil {
			t.Fatalf("dispatch of %s: %v", s, err)
		}
	}
	if len(r.ops) != 1 || r.ops[0] != add {
		t.Errorf("found binary operations %v but want [%s]", r.ops, add)
	}
}

// scalarReader covers the three kinds present in the scalar chain.
type scalarReader struct {
	dispatch.OptIn
	visited []string
}

func (r *scalarReader) HandleInt(n *ir.Int) error {
	r.visited = append(r.visited, n.String())
	return nil
}

func (r *scalarReader) HandleUnaryOp(n *ir.UnaryOp) error {
	r.visited = append(r.visited, n.String())
	return nil
}

func (r *scalarReader) HandleBinaryOp(n *ir.BinaryOp) error {
	r.visited = append(r.visited, n.String())
	return nil
}

func TestStrictCoversFusion(t *testing.T) {
	f := ir.NewFusion()
	buildScalarChain(f)
	r := &scalarReader{}
	for s := range f.Statements() {
		if err := dispatch.Statement(r, s); err != nil {
			t.Fatalf("dispatch of %s: %v", s, err)
		}
	}
	want := []string{"i0", "neg(i0)", "i1", "add(i1, i0)", "i2"}
	if !cmp.Equal(r.visited, want) {
		t.Errorf("wrong visit order: %s", cmp.Diff(r.visited, want))
	}
}

// scalarReaderNoUnary covers ints and binary operations only.
type scalarReaderNoUnary struct {
	dispatch.OptIn
	visited []string
}

func (r *scalarReaderNoUnary) HandleInt(n *ir.Int) error {
	r.visited = append(r.visited, n.String())
	return nil
}

func (r *scalarReaderNoUnary) HandleBinaryOp(n *ir.BinaryOp) error {
	r.visited = append(r.visited, n.String())
	return nil
}

func TestStrictFailsAtUnhandledNode(t *testing.T) {
	f := ir.NewFusion()
	buildScalarChain(f)
	r := &scalarReaderNoUnary{}
	var err error
	for s := range f.Statements() {
		if err = dispatch.Statement(r, s); err != nil {
			break
		}
	}
	if err == nil {
		t.Fatalf("dispatch returned no error on an unhandled kind")
	}
	var unhandled *dispatch.UnhandledError
	if !errors.As(err, &unhandled) || unhandled.Kind != "unaryop" {
		t.Fatalf("dispatch returned %q but want an UnhandledError for unaryop", err)
	}
	// The dispatch fails when the unary operation is reached, not before.
	want := []string{"i0"}
	if !cmp.Equal(r.visited, want) {
		t.Errorf("wrong statements visited before the error: %s", cmp.Diff(r.visited, want))
	}
}

// valInterceptor takes over the dispatch of all values.
type valInterceptor struct {
	dispatch.OptOut
	vals  int
	leafs int
}

func (r *valInterceptor) HandleVal(ir.Val) error {
	r.vals++
	return nil
}

func (r *valInterceptor) HandleInt(*ir.Int) error {
	r.leafs++
	return nil
}

func TestValHandlerInterceptsLeafRouting(t *testing.T) {
	f := ir.NewFusion()
	r := &valInterceptor{}
	if err := dispatch.Statement(r, ir.NewInt(f, 1)); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if r.vals != 1 || r.leafs != 0 {
		t.Errorf("got %d category calls and %d leaf calls but want 1 and 0", r.vals, r.leafs)
	}
	// Resuming the default routing with dispatch.Val reaches the leaf.
	if err := dispatch.Val(r, ir.NewInt(f, 1)); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if r.leafs != 1 {
		t.Errorf("got %d leaf calls but want 1", r.leafs)
	}
}
