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

package server

import (
	"os"

	"github.com/bluekeyes/hatpear"
	"github.com/palantir/go-baseapp/baseapp"
	"github.com/pkg/errors"
	"goji.io/pat"

	"github.com/blockforge/gatekeeper/condition"
	"github.com/blockforge/gatekeeper/gate"
	"github.com/blockforge/gatekeeper/metrics"
	"github.com/blockforge/gatekeeper/server/handler"
	"github.com/blockforge/gatekeeper/subject"
)

type Server struct {
	config *Config
	base   *baseapp.Server
}

// New instantiates a new Server.
// Callers must then invoke Start to run the Server.
func New(c *Config) (*Server, error) {
	logger := baseapp.NewLogger(baseapp.LoggingConfig{
		Level:  c.Logging.Level,
		Pretty: c.Logging.Text,
	})

	base, err := baseapp.NewServer(c.Server, baseapp.DefaultParams(logger, "gatekeeper.")...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize base server")
	}

	cacheSize := c.Cache.Expressions
	if cacheSize < 1 {
		cacheSize = condition.DefaultCacheSize
	}

	manager, err := condition.NewManagerWithSize(subject.MapResolver{}, cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize condition manager")
	}

	gateCfg := &gate.Config{}
	if c.Gates.Path != "" {
		bytes, err := os.ReadFile(c.Gates.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed reading gate config file: %s", c.Gates.Path)
		}
		gateCfg, err = gate.ParseConfig(bytes)
		if err != nil {
			return nil, errors.Wrapf(err, "failed parsing gate config file: %s", c.Gates.Path)
		}
	}

	gates, err := gate.NewSet(manager, gateCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load gate configuration")
	}

	metrics.SetRegistry(base.Registry())
	metrics.ConditionCacheSize(func() int64 {
		return int64(manager.CacheSize())
	})

	mux := base.Mux()

	mux.Handle(pat.Get("/api/health"), handler.Health())
	mux.Handle(pat.Post("/api/evaluate"), hatpear.Try(&handler.Evaluate{
		Manager:     manager,
		Evaluations: metrics.EvaluationCount(),
	}))
	mux.Handle(pat.Put("/api/validate"), handler.Validate(manager))
	mux.Handle(pat.Get("/api/describe"), handler.Describe(manager))
	mux.Handle(pat.Get("/api/cache"), handler.CacheInfo(manager))
	mux.Handle(pat.Delete("/api/cache"), handler.CacheClear(manager))
	mux.Handle(pat.Get("/api/gates"), handler.ListGates(gates))
	mux.Handle(pat.Post("/api/gates/:name/evaluate"), hatpear.Try(&handler.EvaluateGate{
		Gates: gates,
	}))

	return &Server{
		config: c,
		base:   base,
	}, nil
}

// Start is blocking and long-running
func (s *Server) Start() error {
	return s.base.Start()
}
