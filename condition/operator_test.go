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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorFromSymbol(t *testing.T) {
	for _, sym := range []string{">", ">=", "<", "<=", "==", "!="} {
		op, ok := OperatorFromSymbol(sym)
		if assert.True(t, ok, "symbol %q was not recognized", sym) {
			assert.Equal(t, sym, string(op))
		}
	}

	for _, sym := range []string{"", "=", "<>", "===", "~"} {
		_, ok := OperatorFromSymbol(sym)
		assert.False(t, ok, "symbol %q should not be recognized", sym)
	}
}

func TestOperatorCompareNumeric(t *testing.T) {
	tests := []struct {
		name     string
		op       Operator
		left     string
		right    string
		expected bool
	}{
		{"greater, multi-digit", OpGreater, "10", "9", true},
		{"greater, equal operands", OpGreater, "5", "5", false},
		{"greater-equal, equal operands", OpGreaterEqual, "5", "5", true},
		{"less, floats", OpLess, "1.5", "2", true},
		{"less-equal, negative", OpLessEqual, "-3", "0", true},
		{"equal, mixed formats", OpEqual, "1.0", "1", true},
		{"not-equal", OpNotEqual, "2", "2.5", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.Compare(tc.left, tc.right))
		})
	}
}

func TestOperatorCompareStringFallback(t *testing.T) {
	tests := []struct {
		name     string
		op       Operator
		left     string
		right    string
		expected bool
	}{
		// Lexicographic order, not numeric intent: "v2" sorts after
		// "v10" because '2' > '1'.
		{"prefixed versions sort lexicographically", OpGreater, "v2", "v10", true},
		{"prefixed versions, same order as numeric", OpGreater, "v10", "v9", false},
		{"string equality", OpEqual, "hub", "hub", true},
		{"string inequality", OpNotEqual, "hub", "wild", true},
		{"one numeric operand still compares as strings", OpGreater, "10", "abc", false},
		{"less-equal on identical strings", OpLessEqual, "same", "same", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.Compare(tc.left, tc.right))
		})
	}
}

func TestOperatorCompareNeverPanics(t *testing.T) {
	for _, op := range operatorsLongestFirst {
		assert.NotPanics(t, func() {
			op.Compare("", "")
			op.Compare("NaN", "Inf")
			op.Compare("1e309", "-1e309")
		})
	}
}
