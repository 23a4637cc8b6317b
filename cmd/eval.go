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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmdFlags subjectFlags

var EvalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluates a condition expression against a test subject.",
	Long: "Evaluates a condition expression against a subject assembled from --perm and --attr flags " +
		"and prints the boolean result. Invalid expressions evaluate to false; use 'check' to " +
		"distinguish them.",
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		subj, err := evalCmdFlags.subject()
		if err != nil {
			return err
		}

		result := m.Evaluate(cmd.Context(), subj, args[0])
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(EvalCmd)
	evalCmdFlags.register(EvalCmd)
}
