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
	"encoding/json"
	"net/http"

	"github.com/palantir/go-baseapp/baseapp"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"

	"github.com/blockforge/gatekeeper/condition"
)

type EvaluateRequest struct {
	Expression string         `json:"expression"`
	Subject    SubjectPayload `json:"subject"`
}

type EvaluateResponse struct {
	Expression string `json:"expression"`
	Result     bool   `json:"result"`
}

// Evaluate evaluates a single expression against a caller-supplied
// subject. Invalid expressions evaluate to false rather than erroring,
// matching the engine's fail-closed contract; use the validate endpoint
// to distinguish invalid input.
type Evaluate struct {
	Manager     *condition.Manager
	Evaluations metrics.Meter
}

func (h *Evaluate) ServeHTTP(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		baseapp.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
		return nil
	}

	subj := req.Subject.ToSubject()
	result := h.Manager.Evaluate(ctx, subj, req.Expression)
	if h.Evaluations != nil {
		h.Evaluations.Mark(1)
	}

	zerolog.Ctx(ctx).Debug().
		Str("expression", req.Expression).
		Str("subject", subj.Name()).
		Bool("result", result).
		Msg("evaluated condition expression")

	baseapp.WriteJSON(w, http.StatusOK, &EvaluateResponse{
		Expression: req.Expression,
		Result:     result,
	})
	return nil
}
