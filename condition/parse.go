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
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/blockforge/gatekeeper/subject"
)

// DefaultMaxDepth bounds combinator nesting so that adversarial
// configuration input cannot exhaust the stack.
const DefaultMaxDepth = 32

// Parser converts expression strings into Condition trees. Keywords are
// case-insensitive and whitespace around brackets and separators is
// optional and arbitrary: "all[x;y]", "all [x; y]" and "all [ x ; y ]"
// parse identically.
type Parser struct {
	resolver subject.AttributeResolver
	maxDepth int
}

// NewParser creates a parser that resolves attribute tokens through the
// given resolver. A nil resolver is allowed; attribute conditions then
// fail closed at evaluation time.
func NewParser(resolver subject.AttributeResolver) *Parser {
	return &Parser{resolver: resolver, maxDepth: DefaultMaxDepth}
}

// Parse compiles an expression into a Condition tree. It returns an error
// for structurally invalid input: unmatched brackets, empty
// sub-expression lists, missing operands, or nesting beyond the depth
// limit. It never panics on malformed input.
func (p *Parser) Parse(expr string) (Condition, error) {
	return p.parseExpr(strings.TrimSpace(expr), 0)
}

func (p *Parser) parseExpr(expr string, depth int) (Condition, error) {
	if depth > p.maxDepth {
		return nil, errors.Errorf("reached maximum nesting depth (%d) while parsing expression", p.maxDepth)
	}
	if expr == "" {
		return nil, errors.New("empty expression")
	}

	// Combinator keywords are tried before leaf forms.
	for _, kw := range []string{"any", "or"} {
		if inner, ok, err := matchBracketed(expr, kw); err != nil {
			return nil, err
		} else if ok {
			children, err := p.parseList(inner, depth+1)
			if err != nil {
				return nil, errors.WithMessage(err, "failed to parse sub-expressions for '"+kw+"'")
			}
			return Any{children: children}, nil
		}
	}
	for _, kw := range []string{"all", "and"} {
		if inner, ok, err := matchBracketed(expr, kw); err != nil {
			return nil, err
		} else if ok {
			children, err := p.parseList(inner, depth+1)
			if err != nil {
				return nil, errors.WithMessage(err, "failed to parse sub-expressions for '"+kw+"'")
			}
			return All{children: children}, nil
		}
	}

	if rest, ok := matchKeyword(expr, "not"); ok {
		inner, err := p.parseLeaf(rest)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to parse operand for 'not'")
		}
		return Not{inner: inner}, nil
	}

	return p.parseLeaf(expr)
}

func (p *Parser) parseLeaf(expr string) (Condition, error) {
	if expr == "" {
		return nil, errors.New("empty expression")
	}

	// Permission keyword forms are tried before the bare attribute
	// fallback, so an unprefixed token is accepted as an attribute leaf.
	for _, kw := range []string{"permission", "perm"} {
		if rest, ok := matchKeyword(expr, kw); ok {
			if rest == "" {
				return nil, errors.Errorf("'%s' requires a node name", kw)
			}
			return NewPermission(rest), nil
		}
	}

	if strings.HasPrefix(expr, "!") {
		node := strings.TrimSpace(expr[1:])
		if node == "" {
			return nil, errors.New("'!' requires a node name")
		}
		return Permission{Node: node, Negate: true}, nil
	}

	for _, kw := range []string{"placeholder", "papi"} {
		if rest, ok := matchKeyword(expr, kw); ok {
			if rest == "" {
				return nil, errors.Errorf("'%s' requires an attribute token", kw)
			}
			return newAttribute(rest, p.resolver), nil
		}
	}

	return newAttribute(expr, p.resolver), nil
}

// parseList splits a bracketed expression list on top-level semicolons
// and parses each element. Semicolons inside nested brackets do not
// terminate the outer list.
func (p *Parser) parseList(inner string, depth int) ([]Condition, error) {
	parts, err := splitTopLevel(inner)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, errors.New("empty list of sub-expressions is not allowed")
	}

	children := make([]Condition, 0, len(parts))
	for _, part := range parts {
		child, err := p.parseExpr(part, depth)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// matchBracketed matches a combinator form "kw [ ... ]" and returns the
// bracket contents. It reports an error when the keyword is present with
// an opening bracket but the brackets do not balance, or when trailing
// text follows the closing bracket.
func matchBracketed(expr, kw string) (string, bool, error) {
	if len(expr) < len(kw) || !strings.EqualFold(expr[:len(kw)], kw) {
		return "", false, nil
	}

	rest := strings.TrimLeftFunc(expr[len(kw):], unicode.IsSpace)
	if !strings.HasPrefix(rest, "[") {
		return "", false, nil
	}

	depth := 0
	for i, r := range rest {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				if strings.TrimSpace(rest[i+1:]) != "" {
					return "", false, errors.Errorf("unexpected text after closing bracket: %q", rest[i+1:])
				}
				return rest[1:i], true, nil
			}
		}
	}
	return "", false, errors.Errorf("unmatched '[' in expression %q", expr)
}

// matchKeyword matches a leading case-insensitive keyword followed by
// whitespace and returns the trimmed remainder. The bare keyword with no
// remainder also matches, so "permission" alone reports a missing node
// name instead of degrading into an attribute token.
func matchKeyword(expr, kw string) (string, bool) {
	if strings.EqualFold(expr, kw) {
		return "", true
	}
	if len(expr) > len(kw) && strings.EqualFold(expr[:len(kw)], kw) && unicode.IsSpace(rune(expr[len(kw)])) {
		return strings.TrimSpace(expr[len(kw):]), true
	}
	return "", false
}

// splitTopLevel splits on semicolons outside nested brackets, trimming
// each element. Empty elements are rejected. A naive strings.Split would
// break apart nested combinators.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0

	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, errors.Errorf("unmatched ']' in expression list %q", s)
			}
		case ';':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Errorf("unmatched '[' in expression list %q", s)
	}
	parts = append(parts, s[start:])

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty sub-expression in list")
		}
		out = append(out, part)
	}
	return out, nil
}
