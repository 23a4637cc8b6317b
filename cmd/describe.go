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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var DescribeCmd = &cobra.Command{
	Use:   "describe <expression>",
	Short: "Prints the canonical tree form of a condition expression.",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		desc, err := m.Describe(args[0])
		if err != nil {
			return errors.WithMessage(err, "invalid expression")
		}

		fmt.Fprintln(cmd.OutOrStdout(), desc)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(DescribeCmd)
}
