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

package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	s := NewStatic("steve", []string{"essentials.fly", " essentials.god "}, map[string]string{"world": "hub"})

	assert.Equal(t, "steve", s.Name())
	assert.True(t, s.HasPermission("essentials.fly"))
	assert.True(t, s.HasPermission("essentials.god"), "permission nodes are trimmed")
	assert.False(t, s.HasPermission("essentials.tp"))

	v, ok := s.Attribute("world")
	assert.True(t, ok)
	assert.Equal(t, "hub", v)

	_, ok = s.Attribute("biome")
	assert.False(t, ok)
}

func TestStaticDefaultName(t *testing.T) {
	s := NewStatic("", nil, nil)
	assert.Equal(t, "static", s.Name())
}

func TestMapResolver(t *testing.T) {
	s := NewStatic("steve", nil, map[string]string{"world": "hub"})
	r := MapResolver{}

	assert.Equal(t, "hub", r.Resolve(s, "%world%"))
	assert.Equal(t, "%biome%", r.Resolve(s, "%biome%"), "unresolved tokens are returned unchanged")
}

// bareSubject has no attribute table.
type bareSubject struct{}

func (bareSubject) Name() string                { return "bare" }
func (bareSubject) HasPermission(n string) bool { return false }

func TestMapResolverWithoutAttributeSource(t *testing.T) {
	r := MapResolver{}
	assert.Equal(t, "%world%", r.Resolve(bareSubject{}, "%world%"))
}
