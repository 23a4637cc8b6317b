// Copyright 2024 Blockforge, Inc.
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

// Package condition compiles textual boolean expressions into evaluable
// predicate trees and evaluates them against a subject. Expressions
// reference permission nodes and externally-resolved attributes and
// compose with any/all/not combinators:
//
//	all [permission essentials.fly; %world% == hub]
//
// Trees are built by a Parser and memoized per source string by a
// Manager, so repeated evaluations of the same expression never reparse.
package condition

import (
	"context"

	"github.com/blockforge/gatekeeper/subject"
)

// Condition is a predicate over a subject. Implementations are immutable
// after construction and Evaluate must be reentrant: the Manager shares a
// single tree between concurrent callers.
type Condition interface {
	// Evaluate determines if the subject satisfies the condition.
	Evaluate(ctx context.Context, subj subject.Subject) bool

	// Describe renders the condition in a canonical human-readable form
	// for diagnostics. The output is not reparsed.
	Describe() string
}
