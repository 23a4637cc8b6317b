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
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blockforge/gatekeeper/condition"
	"github.com/blockforge/gatekeeper/subject"
	"github.com/blockforge/gatekeeper/version"
)

var RootCmd = &cobra.Command{
	Use:           "gatekeeper",
	Short:         "Evaluates condition expressions for permission gating.",
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// subjectFlags assembles a static subject from repeated --perm and
// --attr flags, shared by the expression debug commands.
type subjectFlags struct {
	Name  string
	Perms []string
	Attrs []string
}

func (f *subjectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "subject", "cli", "name of the test subject")
	cmd.Flags().StringArrayVar(&f.Perms, "perm", nil, "permission node held by the subject (repeatable)")
	cmd.Flags().StringArrayVar(&f.Attrs, "attr", nil, "attribute in key=value form (repeatable)")
}

func (f *subjectFlags) subject() (*subject.Static, error) {
	attrs := make(map[string]string, len(f.Attrs))
	for _, kv := range f.Attrs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("invalid attribute %q, expected key=value", kv)
		}
		attrs[parts[0]] = parts[1]
	}
	return subject.NewStatic(f.Name, f.Perms, attrs), nil
}

func newManager() (*condition.Manager, error) {
	m, err := condition.NewManager(subject.MapResolver{})
	return m, errors.Wrap(err, "failed to create condition manager")
}
