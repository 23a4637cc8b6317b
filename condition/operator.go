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
	"strconv"
	"strings"
)

// Operator is a comparison between two string operands. Comparison is
// numeric when both operands parse as floating-point numbers and falls
// back to lexicographic string comparison otherwise, including for
// OpEqual and OpNotEqual, which become plain string (in)equality in the
// fallback.
type Operator string

const (
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
)

// operatorsLongestFirst orders symbols so that two-character operators are
// matched before their one-character prefixes during tokenization: ">="
// must never tokenize as ">" followed by "=".
var operatorsLongestFirst = []Operator{
	OpGreaterEqual,
	OpLessEqual,
	OpEqual,
	OpNotEqual,
	OpGreater,
	OpLess,
}

// OperatorFromSymbol returns the operator for a symbol, if it is one of
// the six comparison symbols.
func OperatorFromSymbol(s string) (Operator, bool) {
	for _, op := range operatorsLongestFirst {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

// Compare applies the operator to two operands. It never fails: operands
// that do not both parse as numbers are compared as strings.
func (op Operator) Compare(left, right string) bool {
	lf, lerr := strconv.ParseFloat(strings.TrimSpace(left), 64)
	rf, rerr := strconv.ParseFloat(strings.TrimSpace(right), 64)

	if lerr == nil && rerr == nil {
		switch op {
		case OpGreater:
			return lf > rf
		case OpGreaterEqual:
			return lf >= rf
		case OpLess:
			return lf < rf
		case OpLessEqual:
			return lf <= rf
		case OpEqual:
			return lf == rf
		case OpNotEqual:
			return lf != rf
		}
		return false
	}

	cmp := strings.Compare(left, right)
	switch op {
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	}
	return false
}
