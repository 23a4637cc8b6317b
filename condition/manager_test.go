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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/gatekeeper/subject/subjecttest"
)

func newTestManager(t *testing.T) *Manager {
	m, err := NewManager(subjecttest.Resolver{})
	require.NoError(t, err, "failed to create manager")
	return m
}

func TestManagerEvaluate(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	subj := &subjecttest.Subject{
		PermissionsValue: []string{"essentials.fly"},
		AttributesValue:  map[string]string{"world": "hub"},
	}

	tests := []struct {
		name     string
		expr     string
		expected bool
	}{
		{"held permission", "permission essentials.fly", true},
		{"missing permission", "permission essentials.god", false},
		{"negated missing permission", "!essentials.god", true},
		{"attribute comparison", "%world% == hub", true},
		{"combined", "all [permission essentials.fly; %world% == hub]", true},
		{"combined with failure", "all [permission essentials.fly; %world% == wild]", false},
		{"invalid expression", "all [permission essentials.fly", false},
		{"garbage", "]][;;", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.expected, m.Evaluate(ctx, subj, tc.expr))
			})
		})
	}
}

func TestManagerEvaluateIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	subj := &subjecttest.Subject{PermissionsValue: []string{"a"}}

	expr := "any [permission a; permission b]"
	first := m.Evaluate(ctx, subj, expr)
	second := m.Evaluate(ctx, subj, expr)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestManagerCacheLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	subj := &subjecttest.Subject{}

	require.Equal(t, 0, m.CacheSize())

	m.Evaluate(ctx, subj, "permission a")
	assert.Equal(t, 1, m.CacheSize(), "first evaluation caches the tree")

	m.Evaluate(ctx, subj, "permission a")
	assert.Equal(t, 1, m.CacheSize(), "repeated evaluation must not grow the cache")

	m.Evaluate(ctx, subj, "permission b")
	assert.Equal(t, 2, m.CacheSize())

	// Failed parses are memoized too, so persistently invalid
	// expressions are not reparsed on every call.
	m.Evaluate(ctx, subj, "all [broken")
	assert.Equal(t, 3, m.CacheSize())
	m.Evaluate(ctx, subj, "all [broken")
	assert.Equal(t, 3, m.CacheSize())

	m.ClearCache()
	assert.Equal(t, 0, m.CacheSize())
}

func TestManagerEvaluateAllAny(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	subj := &subjecttest.Subject{PermissionsValue: []string{"a"}}

	exprs := []string{"permission a", "permission b"}

	assert.False(t, m.EvaluateAll(ctx, subj, exprs))
	assert.True(t, m.EvaluateAny(ctx, subj, exprs))

	assert.True(t, m.EvaluateAll(ctx, subj, nil), "empty list is vacuously true")
	assert.False(t, m.EvaluateAny(ctx, subj, nil))
}

func TestManagerIsValid(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		expr     string
		expected bool
	}{
		{"permission a", true},
		{"all [permission a; any [permission b; permission c]]", true},
		{"%world% == hub", true},
		{"", false},
		{"all []", false},
		{"any [permission a", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, m.IsValid(tc.expr), "expression: %q", tc.expr)
	}
}

func TestManagerDescribe(t *testing.T) {
	m := newTestManager(t)

	desc, err := m.Describe("all[permission a;any[permission b;!c]]")
	require.NoError(t, err)
	assert.Equal(t, "all [permission a; any [permission b; !c]]", desc)

	_, err = m.Describe("all [broken")
	assert.Error(t, err)
}

func TestManagerConcurrentFirstParse(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	subj := &subjecttest.Subject{PermissionsValue: []string{"a"}}
	exprs := make([]string, 8)
	for i := range exprs {
		exprs[i] = fmt.Sprintf("any [permission a; permission node%d]", i)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for _, expr := range exprs {
					assert.True(t, m.Evaluate(ctx, subj, expr))
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(exprs), m.CacheSize(), "concurrent first parses must not duplicate entries")
}
