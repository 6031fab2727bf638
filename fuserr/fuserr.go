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

// Package fuserr provides helpers to build fuser errors.
package fuserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Internal marks an error as an internal invariant violation.
// Such an error is a bug in the fuser and not a user error.
func Internal(err error) error {
	return fmt.Errorf("fuser internal error. This is a bug in the fuser. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error.
func Internalf(format string, a ...any) error {
	return Internal(errors.Errorf(format, a...))
}
