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

package metrics

import (
	"github.com/rcrowley/go-metrics"
)

var (
	registry metrics.Registry
)

func SetRegistry(r metrics.Registry) {
	registry = r
}

// ConditionCacheSize - registers a gauge with the registry that monitors the number of cached expression trees
func ConditionCacheSize(sizeFn func() int64) metrics.Gauge {
	return metrics.NewRegisteredFunctionalGauge("condition.expression_cache.size", registry, sizeFn)
}

// EvaluationCount - registers a meter with the registry that tracks condition evaluations served over HTTP
func EvaluationCount() metrics.Meter {
	return metrics.NewRegisteredMeter("condition.evaluations", registry)
}
