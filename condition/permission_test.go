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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blockforge/gatekeeper/subject/subjecttest"
)

func TestPermissionEvaluate(t *testing.T) {
	ctx := context.Background()
	subj := &subjecttest.Subject{
		PermissionsValue: []string{"essentials.fly"},
	}

	tests := []struct {
		name     string
		cond     Permission
		expected bool
	}{
		{"held node", Permission{Node: "essentials.fly"}, true},
		{"missing node", Permission{Node: "essentials.god"}, false},
		{"negated held node", Permission{Node: "essentials.fly", Negate: true}, false},
		{"negated missing node", Permission{Node: "essentials.god", Negate: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cond.Evaluate(ctx, subj))
		})
	}
}

func TestNewPermission(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Permission
	}{
		{"bare node", "essentials.fly", Permission{Node: "essentials.fly"}},
		{"negated node", "!essentials.fly", Permission{Node: "essentials.fly", Negate: true}},
		{"surrounding whitespace", "  essentials.fly  ", Permission{Node: "essentials.fly"}},
		{"space after bang", "! essentials.fly", Permission{Node: "essentials.fly", Negate: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewPermission(tc.input))
		})
	}
}

func TestNegationEquivalence(t *testing.T) {
	// "!node" and an explicitly negated permission condition agree for a
	// subject lacking the node.
	ctx := context.Background()
	subj := &subjecttest.Subject{}

	bang := NewPermission("!essentials.fly")
	explicit := Permission{Node: "essentials.fly", Negate: true}

	assert.True(t, bang.Evaluate(ctx, subj))
	assert.True(t, explicit.Evaluate(ctx, subj))
}

func TestPermissionDescribe(t *testing.T) {
	assert.Equal(t, "permission essentials.fly", Permission{Node: "essentials.fly"}.Describe())
	assert.Equal(t, "!essentials.fly", Permission{Node: "essentials.fly", Negate: true}.Describe())
}
