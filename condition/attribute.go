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

	"github.com/rs/zerolog"

	"github.com/blockforge/gatekeeper/subject"
)

// Attribute compares an externally-resolved attribute against an expected
// value, or checks bare existence when no operator is given. Resolution
// goes through the AttributeResolver the parser was constructed with; if
// no resolver is available the condition fails closed.
type Attribute struct {
	// Token is the literal attribute text from the expression, typically
	// delimited (for example "%world%").
	Token string

	// Operator and Expected are empty for a bare existence check.
	Operator Operator
	Expected string

	resolver subject.AttributeResolver
}

var _ Condition = Attribute{}

// newAttribute parses the raw leaf text into an attribute condition. The
// text is scanned for the longest-matching operator symbol; everything
// before it is the token and everything after it, trimmed, is the
// expected value. Text with no operator symbol is a bare existence check.
func newAttribute(raw string, resolver subject.AttributeResolver) Attribute {
	for _, op := range operatorsLongestFirst {
		if len(raw) < 2 {
			break
		}
		// Search from index 1 so that an operator character can never
		// split an empty token off the front.
		if i := strings.Index(raw[1:], string(op)); i >= 0 {
			i++
			return Attribute{
				Token:    strings.TrimSpace(raw[:i]),
				Operator: op,
				Expected: strings.TrimSpace(raw[i+len(op):]),
				resolver: resolver,
			}
		}
	}
	return Attribute{Token: strings.TrimSpace(raw), resolver: resolver}
}

func (c Attribute) Evaluate(ctx context.Context, subj subject.Subject) bool {
	if c.resolver == nil {
		zerolog.Ctx(ctx).Debug().
			Str("token", c.Token).
			Msg("no attribute resolver available; condition fails closed")
		return false
	}

	actual := c.resolver.Resolve(subj, c.Token)

	if c.Operator == "" {
		// Existence check: the attribute resolved to something non-empty
		// and different from its own unresolved token form.
		return actual != "" && actual != c.Token
	}

	return c.Operator.Compare(actual, c.Expected)
}

func (c Attribute) Describe() string {
	if c.Operator == "" {
		return c.Token
	}
	return c.Token + " " + string(c.Operator) + " " + c.Expected
}
