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
	"github.com/rs/zerolog"
	"goji.io/pat"

	"github.com/blockforge/gatekeeper/gate"
)

type GateList struct {
	Gates []string `json:"gates"`
}

func ListGates(gates *gate.Set) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		baseapp.WriteJSON(w, http.StatusOK, &GateList{
			Gates: gates.Gates(),
		})
	})
}

type GateResult struct {
	Gate   string `json:"gate"`
	Result bool   `json:"result"`
}

// EvaluateGate evaluates every condition of a named gate against a
// caller-supplied subject. Unknown gates are reported as 404 rather than
// silently denying, since this is a debug surface.
type EvaluateGate struct {
	Gates *gate.Set
}

func (h *EvaluateGate) ServeHTTP(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	name := pat.Param(r, "name")

	if _, ok := h.Gates.Lookup(name); !ok {
		baseapp.WriteJSON(w, http.StatusNotFound, map[string]string{
			"error": "unknown gate: " + name,
		})
		return nil
	}

	var payload SubjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		baseapp.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
		return nil
	}

	subj := payload.ToSubject()
	result := h.Gates.Allows(ctx, subj, name)

	zerolog.Ctx(ctx).Debug().
		Str("gate", name).
		Str("subject", subj.Name()).
		Bool("result", result).
		Msg("evaluated gate")

	baseapp.WriteJSON(w, http.StatusOK, &GateResult{
		Gate:   name,
		Result: result,
	})
	return nil
}
