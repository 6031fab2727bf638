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
	"fmt"
	"strings"
)

// Values are named by a prefix specific to their kind followed by their
// fusion name. Expressions are named by their operation applied to the
// names of their inputs. Package irprint writes complete statements.

// String representation of the axis.
func (d *IterDomain) String() string { return fmt.Sprintf("id%d", d.name) }

// String representation of the domain.
func (d *TensorDomain) String() string { return fmt.Sprintf("td%d", d.name) }

// String representation of the tensor.
func (v *TensorView) String() string { return fmt.Sprintf("T%d", v.name) }

// String representation of the scalar.
func (v *Float) String() string { return fmt.Sprintf("f%d", v.name) }

// String representation of the scalar.
func (v *Int) String() string { return fmt.Sprintf("i%d", v.name) }

func exprString(op string, ins []Val) string {
	ss := make([]string, len(ins))
	for i, in := range ins {
		ss[i] = in.String()
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(ss, ", "))
}

// String representation of the expression.
func (e *Split) String() string { return exprString("split", e.Inputs()) }

// String representation of the expression.
func (e *Merge) String() string { return exprString("merge", e.Inputs()) }

// String representation of the expression.
func (e *Reorder) String() string { return exprString("reorder", e.Inputs()) }

// String representation of the expression.
func (e *UnaryOp) String() string { return exprString(e.op.String(), e.Inputs()) }

// String representation of the expression.
func (e *BinaryOp) String() string { return exprString(e.op.String(), e.Inputs()) }
