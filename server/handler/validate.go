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
	"io"
	"net/http"

	"github.com/palantir/go-baseapp/baseapp"
	"github.com/rs/zerolog"

	"github.com/blockforge/gatekeeper/condition"
	"github.com/blockforge/gatekeeper/gate"
	"github.com/blockforge/gatekeeper/version"
)

type ValidateCheck struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Validate checks a gate configuration file, including every condition
// expression it declares, without installing it.
func Validate(manager *condition.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := zerolog.Ctx(ctx)

		logger.Info().Msg("Attempting to validate gate configuration")
		check := ValidateCheck{Version: version.GetVersion()}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			check.Message = "Unable to read gate configuration buffer"
			baseapp.WriteJSON(w, http.StatusInternalServerError, &check)
			return
		}

		cfg, err := gate.ParseConfig(body)
		if err != nil {
			check.Message = err.Error()
			baseapp.WriteJSON(w, http.StatusBadRequest, &check)
			return
		}

		// Validate expressions against a throwaway set so the live gate
		// table is untouched.
		if _, err := gate.NewSet(manager, cfg); err != nil {
			check.Message = err.Error()
			baseapp.WriteJSON(w, http.StatusUnprocessableEntity, &check)
			return
		}

		check.Message = "Gate configuration is valid"
		baseapp.WriteJSON(w, http.StatusOK, &check)
	})
}
