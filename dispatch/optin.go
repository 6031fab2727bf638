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

import "github.com/gx-org/fuser/ir"

// OptIn is the base of strict read-only passes. All the operations default
// to an UnhandledError naming the kind: a pass embeds OptIn and must
// override the operation of every kind it may encounter. Reaching a kind
// the pass does not cover aborts the dispatch with the error instead of
// silently skipping the node.
//
// The zero value is ready to use.
type OptIn struct{}

var _ Handler = OptIn{}

// HandleIterDomain returns an UnhandledError.
func (OptIn) HandleIterDomain(*ir.IterDomain) error {
	return unhandledHandle(ir.IterDomainKind)
}

// HandleTensorDomain returns an UnhandledError.
func (OptIn) HandleTensorDomain(*ir.TensorDomain) error {
	return unhandledHandle(ir.TensorDomainKind)
}

// HandleTensorView returns an UnhandledError.
func (OptIn) HandleTensorView(*ir.TensorView) error {
	return unhandledHandle(ir.TensorViewKind)
}

// HandleFloat returns an UnhandledError.
func (OptIn) HandleFloat(*ir.Float) error {
	return unhandledHandle(ir.FloatKind)
}

// HandleInt returns an UnhandledError.
func (OptIn) HandleInt(*ir.Int) error {
	return unhandledHandle(ir.IntKind)
}

// HandleSplit returns an UnhandledError.
func (OptIn) HandleSplit(*ir.Split) error {
	return unhandledHandle(ir.SplitKind)
}

// HandleMerge returns an UnhandledError.
func (OptIn) HandleMerge(*ir.Merge) error {
	return unhandledHandle(ir.MergeKind)
}

// HandleReorder returns an UnhandledError.
func (OptIn) HandleReorder(*ir.Reorder) error {
	return unhandledHandle(ir.ReorderKind)
}

// HandleUnaryOp returns an UnhandledError.
func (OptIn) HandleUnaryOp(*ir.UnaryOp) error {
	return unhandledHandle(ir.UnaryOpKind)
}

// HandleBinaryOp returns an UnhandledError.
func (OptIn) HandleBinaryOp(*ir.BinaryOp) error {
	return unhandledHandle(ir.BinaryOpKind)
}
