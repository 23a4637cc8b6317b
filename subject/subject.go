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

// Subject is the entity a condition is evaluated against, typically a
// player or console sender. Implementations must answer permission checks
// without side effects; the engine may call HasPermission many times for
// the same node during a single evaluation pass.
type Subject interface {
	// Name returns a human-readable identifier for the subject, used only
	// in diagnostics and logging.
	Name() string

	// HasPermission returns true if the subject holds the given permission
	// node.
	HasPermission(node string) bool
}

// AttributeResolver maps a named attribute token (for example "%world%") to
// its current string value for a subject. Resolvers must return the token
// unchanged, or the empty string, when they cannot resolve it; the engine
// treats both as "unresolved".
//
// A resolver may be globally unavailable, in which case attribute
// conditions fail closed.
type AttributeResolver interface {
	Resolve(subj Subject, token string) string
}
