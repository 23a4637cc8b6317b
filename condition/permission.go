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

// Permission checks a single permission node on the subject, optionally
// negated.
type Permission struct {
	Node   string
	Negate bool
}

var _ Condition = Permission{}

// NewPermission builds a permission condition from a bare node name. A
// leading "!" negates the check.
func NewPermission(node string) Permission {
	node = strings.TrimSpace(node)
	if strings.HasPrefix(node, "!") {
		return Permission{Node: strings.TrimSpace(node[1:]), Negate: true}
	}
	return Permission{Node: node}
}

func (c Permission) Evaluate(ctx context.Context, subj subject.Subject) bool {
	ok := subj.HasPermission(c.Node)
	if c.Negate {
		return !ok
	}
	return ok
}

func (c Permission) Describe() string {
	if c.Negate {
		return "!" + c.Node
	}
	return "permission " + c.Node
}
