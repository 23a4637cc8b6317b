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

package subjecttest

import (
	"github.com/blockforge/gatekeeper/subject"
)

// Subject is a configurable subject.Subject for tests.
type Subject struct {
	NameValue string

	PermissionsValue []string

	AttributesValue map[string]string
}

func (s *Subject) Name() string {
	if s.NameValue != "" {
		return s.NameValue
	}
	return "subjecttest"
}

func (s *Subject) HasPermission(node string) bool {
	for _, p := range s.PermissionsValue {
		if p == node {
			return true
		}
	}
	return false
}

func (s *Subject) Attribute(key string) (string, bool) {
	v, ok := s.AttributesValue[key]
	return v, ok
}

// Resolver resolves "%key%" tokens against a Subject's AttributesValue.
// The zero value is usable.
type Resolver struct{}

var _ subject.AttributeResolver = Resolver{}

func (Resolver) Resolve(subj subject.Subject, token string) string {
	return subject.MapResolver{}.Resolve(subj, token)
}
