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

import "github.com/gx-org/backend/dtype"

// valBase is the base of all values. The fusion sets the fields at registration.
type valBase struct {
	fusion *Fusion
	name   int
}

func (*valBase) node() {}
func (*valBase) val()  {}

// Fusion returns the fusion owning the value.
func (v *valBase) Fusion() *Fusion { return v.fusion }

// Name returns the name of the value, unique within its fusion.
func (v *valBase) Name() int { return v.name }

// IterDomain is one axis of an iteration space.
type IterDomain struct {
	valBase
	extent *Int
}

// NewIterDomain registers a new iteration axis with its extent.
func NewIterDomain(f *Fusion, extent *Int) *IterDomain {
	d := &IterDomain{extent: extent}
	f.defineVal(d, &d.valBase)
	return d
}

// Kind of the value.
func (*IterDomain) Kind() ValKind { return IterDomainKind }

// Extent returns the number of iterations of the axis.
func (d *IterDomain) Extent() *Int { return d.extent }

// TensorDomain is a tuple of iteration axes.
type TensorDomain struct {
	valBase
	axes []*IterDomain
}

// NewTensorDomain registers a new tuple of axes.
func NewTensorDomain(f *Fusion, axes ...*IterDomain) *TensorDomain {
	d := &TensorDomain{axes: axes}
	f.defineVal(d, &d.valBase)
	return d
}

// Kind of the value.
func (*TensorDomain) Kind() ValKind { return TensorDomainKind }

// NDims returns the number of axes of the domain.
func (d *TensorDomain) NDims() int { return len(d.axes) }

// Axes returns the axes of the domain.
func (d *TensorDomain) Axes() []*IterDomain { return d.axes }

// Axis returns the ith axis of the domain.
func (d *TensorDomain) Axis(i int) *IterDomain { return d.axes[i] }

// TensorView is a tensor shaped value.
type TensorView struct {
	valBase
	domain *TensorDomain
	dtyp   dtype.DataType
}

// NewTensorView registers a new tensor value given its domain and element type.
func NewTensorView(f *Fusion, domain *TensorDomain, dtyp dtype.DataType) *TensorView {
	v := &TensorView{domain: domain, dtyp: dtyp}
	f.defineVal(v, &v.valBase)
	return v
}

// Kind of the value.
func (*TensorView) Kind() ValKind { return TensorViewKind }

// Domain returns the iteration domain of the tensor.
func (v *TensorView) Domain() *TensorDomain { return v.domain }

// DType returns the element type of the tensor.
func (v *TensorView) DType() dtype.DataType { return v.dtyp }

// Float is a floating point scalar, either a constant or a symbolic value
// defined by an expression.
type Float struct {
	valBase
	value *float64
}

// NewFloat registers a new float constant.
func NewFloat(f *Fusion, value float64) *Float {
	v := &Float{value: &value}
	f.defineVal(v, &v.valBase)
	return v
}

// NewSymbolicFloat registers a new float with no set value.
func NewSymbolicFloat(f *Fusion) *Float {
	v := &Float{}
	f.defineVal(v, &v.valBase)
	return v
}

// Kind of the value.
func (*Float) Kind() ValKind { return FloatKind }

// DType returns the element type of the scalar.
func (*Float) DType() dtype.DataType { return dtype.Float32 }

// Value returns the constant value of the scalar.
// Returns false if the scalar is symbolic.
func (v *Float) Value() (float64, bool) {
	if v.value == nil {
		return 0, false
	}
	return *v.value, true
}

// IsSymbolic returns true if the scalar has no set value.
func (v *Float) IsSymbolic() bool { return v.value == nil }

// Int is an integer scalar, either a constant or a symbolic value defined
// by an expression.
type Int struct {
	valBase
	value *int64
}

// NewInt registers a new integer constant.
func NewInt(f *Fusion, value int64) *Int {
	v := &Int{value: &value}
	f.defineVal(v, &v.valBase)
	return v
}

// NewSymbolicInt registers a new integer with no set value.
func NewSymbolicInt(f *Fusion) *Int {
	v := &Int{}
	f.defineVal(v, &v.valBase)
	return v
}

// Kind of the value.
func (*Int) Kind() ValKind { return IntKind }

// DType returns the element type of the scalar.
func (*Int) DType() dtype.DataType { return dtype.Int64 }

// Value returns the constant value of the scalar.
// Returns false if the scalar is symbolic.
func (v *Int) Value() (int64, bool) {
	if v.value == nil {
		return 0, false
	}
	return *v.value, true
}

// IsSymbolic returns true if the scalar has no set value.
func (v *Int) IsSymbolic() bool { return v.value == nil }
