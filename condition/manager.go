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
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/blockforge/gatekeeper/subject"
)

// DefaultCacheSize is the number of compiled expression trees a Manager
// retains before evicting the least recently used.
const DefaultCacheSize = 10_000

// entry is a cache value for one expression string. A nil cond records a
// confirmed parse failure, so persistently invalid expressions are not
// reparsed on every evaluation. Relying on a missing key would conflate
// "not yet tried" with "failed".
type entry struct {
	cond Condition
	err  error
}

// Manager is the public entry point for expression evaluation. It owns
// the expression cache: each distinct expression string is parsed at most
// once per cache lifetime and the resulting tree is shared by all
// callers. Managers are safe for concurrent use without external locking.
//
// Managers are explicitly constructed components with no package-level
// state; tests and embedders create isolated instances.
type Manager struct {
	parser *Parser

	// mu serializes the parse-on-miss path so a given key is parsed by
	// exactly one caller; reads bypass it entirely.
	mu    sync.Mutex
	cache *lru.Cache
}

// NewManager creates a Manager with the default cache size. The resolver
// may be nil, in which case attribute conditions evaluate to false.
func NewManager(resolver subject.AttributeResolver) (*Manager, error) {
	return NewManagerWithSize(resolver, DefaultCacheSize)
}

// NewManagerWithSize creates a Manager with an explicit cache capacity.
func NewManagerWithSize(resolver subject.AttributeResolver, size int) (*Manager, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create expression cache")
	}
	return &Manager{
		parser: NewParser(resolver),
		cache:  cache,
	}, nil
}

// Evaluate parses the expression (or reuses a cached tree) and evaluates
// it against the subject. It returns false when the expression does not
// parse or the subject fails the predicate; malformed input never panics.
func (m *Manager) Evaluate(ctx context.Context, subj subject.Subject, expr string) bool {
	e := m.compile(ctx, expr)
	if e.cond == nil {
		return false
	}
	return e.cond.Evaluate(ctx, subj)
}

// EvaluateAll returns true if every expression evaluates true for the
// subject. An empty list is vacuously true. Each expression is cached
// independently.
func (m *Manager) EvaluateAll(ctx context.Context, subj subject.Subject, exprs []string) bool {
	for _, expr := range exprs {
		if !m.Evaluate(ctx, subj, expr) {
			return false
		}
	}
	return true
}

// EvaluateAny returns true if at least one expression evaluates true for
// the subject. An empty list is false.
func (m *Manager) EvaluateAny(ctx context.Context, subj subject.Subject, exprs []string) bool {
	for _, expr := range exprs {
		if m.Evaluate(ctx, subj, expr) {
			return true
		}
	}
	return false
}

// IsValid reports whether the expression parses.
func (m *Manager) IsValid(expr string) bool {
	return m.compile(context.Background(), expr).cond != nil
}

// Describe returns the canonical tree description of the expression, or
// the parse error when it is invalid.
func (m *Manager) Describe(expr string) (string, error) {
	e := m.compile(context.Background(), expr)
	if e.cond == nil {
		return "", e.err
	}
	return e.cond.Describe(), nil
}

// ClearCache drops all cached trees. Callers invoke this on
// configuration reload so stale expressions do not pin cache capacity.
func (m *Manager) ClearCache() {
	m.cache.Purge()
}

// CacheSize returns the number of cached expressions, counting both
// compiled trees and recorded parse failures.
func (m *Manager) CacheSize() int {
	return m.cache.Len()
}

func (m *Manager) compile(ctx context.Context, expr string) entry {
	if v, ok := m.cache.Get(expr); ok {
		return v.(entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have won the race to parse this key.
	if v, ok := m.cache.Get(expr); ok {
		return v.(entry)
	}

	cond, err := m.parser.Parse(expr)
	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Str("expression", expr).
			Msg("failed to parse condition expression")

		e := entry{err: err}
		m.cache.Add(expr, e)
		return e
	}

	e := entry{cond: cond}
	m.cache.Add(expr, e)
	return e
}
