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
	"strings"
)

// Static is a fixed-state Subject built from explicit permission and
// attribute sets. It backs the CLI and HTTP debug surfaces, where the
// subject is assembled from request input rather than a live player.
type Static struct {
	SubjectName string
	Permissions map[string]bool
	Attributes  map[string]string
}

// NewStatic creates a Static subject from a permission list and an
// attribute map. Either may be nil.
func NewStatic(name string, perms []string, attrs map[string]string) *Static {
	permSet := make(map[string]bool, len(perms))
	for _, p := range perms {
		permSet[strings.TrimSpace(p)] = true
	}
	return &Static{
		SubjectName: name,
		Permissions: permSet,
		Attributes:  attrs,
	}
}

func (s *Static) Name() string {
	if s.SubjectName != "" {
		return s.SubjectName
	}
	return "static"
}

func (s *Static) HasPermission(node string) bool {
	return s.Permissions[node]
}

// Attribute returns the raw attribute value and whether it is present.
func (s *Static) Attribute(key string) (string, bool) {
	v, ok := s.Attributes[key]
	return v, ok
}

// MapResolver resolves "%key%" tokens against subjects that expose a
// static attribute map. Tokens that do not resolve are returned unchanged,
// which the condition engine treats as "attribute undefined".
type MapResolver struct{}

// attributeSource is satisfied by Static and by any subject that carries
// its own attribute table.
type attributeSource interface {
	Attribute(key string) (string, bool)
}

func (MapResolver) Resolve(subj Subject, token string) string {
	src, ok := subj.(attributeSource)
	if !ok {
		return token
	}

	key := strings.TrimSuffix(strings.TrimPrefix(token, "%"), "%")
	if v, ok := src.Attribute(key); ok {
		return v
	}
	return token
}
