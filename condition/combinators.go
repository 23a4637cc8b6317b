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

package condition

import (
	"context"
	"strings"

	"github.com/blockforge/gatekeeper/subject"
)

// Any is satisfied when at least one child is satisfied. The parser
// guarantees at least one child.
type Any struct {
	children []Condition
}

var _ Condition = Any{}

func (c Any) Evaluate(ctx context.Context, subj subject.Subject) bool {
	for _, child := range c.children {
		if child.Evaluate(ctx, subj) {
			return true
		}
	}
	return false
}

func (c Any) Describe() string {
	return describeList("any", c.children)
}

// All is satisfied when every child is satisfied. The parser guarantees
// at least one child.
type All struct {
	children []Condition
}

var _ Condition = All{}

func (c All) Evaluate(ctx context.Context, subj subject.Subject) bool {
	for _, child := range c.children {
		if !child.Evaluate(ctx, subj) {
			return false
		}
	}
	return true
}

func (c All) Describe() string {
	return describeList("all", c.children)
}

// Not inverts a single inner condition.
type Not struct {
	inner Condition
}

var _ Condition = Not{}

func (c Not) Evaluate(ctx context.Context, subj subject.Subject) bool {
	return !c.inner.Evaluate(ctx, subj)
}

func (c Not) Describe() string {
	return "not " + c.inner.Describe()
}

func describeList(name string, children []Condition) string {
	descs := make([]string, 0, len(children))
	for _, child := range children {
		descs = append(descs, child.Describe())
	}
	return name + " [" + strings.Join(descs, "; ") + "]"
}
