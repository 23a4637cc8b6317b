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

package handler

import (
	"github.com/blockforge/gatekeeper/subject"
)

// SubjectPayload is the wire form of a test subject: explicit permission
// and attribute state supplied by the caller of a debug endpoint.
type SubjectPayload struct {
	Name        string            `json:"name"`
	Permissions []string          `json:"permissions"`
	Attributes  map[string]string `json:"attributes"`
}

func (p SubjectPayload) ToSubject() *subject.Static {
	return subject.NewStatic(p.Name, p.Permissions, p.Attributes)
}
