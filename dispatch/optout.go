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

// OptOut is the base of permissive read-only passes. All the operations
// default to a no-op: a pass embeds OptOut and overrides only the operations
// for the kinds it cares about. Dispatching any well-formed statement
// through an OptOut pass never returns an unhandled kind error.
//
// The zero value is ready to use.
type OptOut struct{}

var _ Handler = OptOut{}

// HandleIterDomain does nothing.
func (OptOut) HandleIterDomain(*ir.IterDomain) error { return nil }

// HandleTensorDomain does nothing.
func (OptOut) HandleTensorDomain(*ir.TensorDomain) error { return nil }

// HandleTensorView does nothing.
func (OptOut) HandleTensorView(*ir.TensorView) error { return nil }

// HandleFloat does nothing.
func (OptOut) HandleFloat(*ir.Float) error { return nil }

// HandleInt does nothing.
func (OptOut) HandleInt(*ir.Int) error { return nil }

// HandleSplit does nothing.
func (OptOut) HandleSplit(*ir.Split) error { return nil }

// HandleMerge does nothing.
func (OptOut) HandleMerge(*ir.Merge) error { return nil }

// HandleReorder does nothing.
func (OptOut) HandleReorder(*ir.Reorder) error { return nil }

// HandleUnaryOp does nothing.
func (OptOut) HandleUnaryOp(*ir.UnaryOp) error { return nil }

// HandleBinaryOp does nothing.
func (OptOut) HandleBinaryOp(*ir.BinaryOp) error { return nil }
