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
	"net/http"

	"github.com/palantir/go-baseapp/baseapp"

	"github.com/blockforge/gatekeeper/condition"
)

type DescribeResponse struct {
	Expression  string `json:"expression"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Describe renders the canonical tree description of the expression in
// the "expr" query parameter, or the parse error for invalid input.
func Describe(manager *condition.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expr := r.URL.Query().Get("expr")
		if expr == "" {
			baseapp.WriteJSON(w, http.StatusBadRequest, &DescribeResponse{
				Error: "missing 'expr' query parameter",
			})
			return
		}

		desc, err := manager.Describe(expr)
		if err != nil {
			baseapp.WriteJSON(w, http.StatusUnprocessableEntity, &DescribeResponse{
				Expression: expr,
				Error:      err.Error(),
			})
			return
		}

		baseapp.WriteJSON(w, http.StatusOK, &DescribeResponse{
			Expression:  expr,
			Description: desc,
		})
	})
}
