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

import "fmt"

// UnhandledError reports a statement kind reached by a strict dispatch with
// no override for that kind. It points at a gap in the pass, not at a
// runtime condition: the pass must be extended to cover the kind.
type UnhandledError struct {
	// Op is the name of the dispatch operation.
	Op string
	// Kind is the name of the unhandled kind.
	Kind string
}

// Error returns a string description of the error.
func (e *UnhandledError) Error() string {
	return fmt.Sprintf("%s not overridden for %s", e.Op, e.Kind)
}

func unhandledHandle(kind fmt.Stringer) error {
	return &UnhandledError{Op: "handle", Kind: kind.String()}
}

func unhandledMutate(kind fmt.Stringer) error {
	return &UnhandledError{Op: "mutate", Kind: kind.String()}
}
