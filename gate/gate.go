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

// Package gate binds named lists of condition expressions, declared in
// configuration, to the condition engine. Each gate's expressions are
// evaluated independently and combined with AND semantics.
package gate

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/blockforge/gatekeeper/condition"
	"github.com/blockforge/gatekeeper/subject"
)

type Config struct {
	Gates []Gate `yaml:"gates"`
}

type Gate struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Conditions  []string `yaml:"conditions"`
}

// ParseConfig parses a gate configuration. Unknown fields are rejected.
func ParseConfig(bytes []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(bytes, &c); err != nil {
		return nil, errors.Wrap(err, "failed unmarshalling gate configuration")
	}

	seen := make(map[string]bool, len(c.Gates))
	for _, g := range c.Gates {
		if g.Name == "" {
			return nil, errors.New("gate with empty name")
		}
		if seen[g.Name] {
			return nil, errors.Errorf("duplicate gate name '%s'", g.Name)
		}
		seen[g.Name] = true
	}
	return &c, nil
}

// Set is a gate table bound to a condition manager. Lookups and reloads
// are safe for concurrent use.
type Set struct {
	manager *condition.Manager

	mu    sync.RWMutex
	gates map[string]Gate
	names []string
}

// NewSet validates every expression in the configuration against the
// manager's parser and returns a bound gate set. A configuration with any
// invalid expression is rejected at load time rather than failing closed
// at runtime.
func NewSet(manager *condition.Manager, cfg *Config) (*Set, error) {
	s := &Set{manager: manager}
	if err := s.load(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Allows evaluates every condition of the named gate against the subject.
// Unknown gates fail closed.
func (s *Set) Allows(ctx context.Context, subj subject.Subject, name string) bool {
	s.mu.RLock()
	g, ok := s.gates[name]
	s.mu.RUnlock()

	if !ok {
		zerolog.Ctx(ctx).Warn().
			Str("gate", name).
			Str("subject", subj.Name()).
			Msg("unknown gate; denying")
		return false
	}

	return s.manager.EvaluateAll(ctx, subj, g.Conditions)
}

// Gates returns the configured gate names in declaration order.
func (s *Set) Gates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...)
}

// Lookup returns the named gate definition.
func (s *Set) Lookup(name string) (Gate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gates[name]
	return g, ok
}

// Reload replaces the gate table and clears the manager's expression
// cache, so expressions dropped by the new configuration do not pin cache
// capacity. On validation failure the previous table stays in effect.
func (s *Set) Reload(cfg *Config) error {
	if err := s.load(cfg); err != nil {
		return err
	}
	s.manager.ClearCache()
	return nil
}

func (s *Set) load(cfg *Config) error {
	gates := make(map[string]Gate, len(cfg.Gates))
	names := make([]string, 0, len(cfg.Gates))

	for _, g := range cfg.Gates {
		for _, expr := range g.Conditions {
			if !s.manager.IsValid(expr) {
				return errors.Errorf("gate '%s' has invalid condition expression %q", g.Name, expr)
			}
		}
		gates[g.Name] = g
		names = append(names, g.Name)
	}

	s.mu.Lock()
	s.gates = gates
	s.names = names
	s.mu.Unlock()
	return nil
}
