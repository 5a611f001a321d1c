// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/go-arcade/roster/internal/app"
	"github.com/go-arcade/roster/internal/bootstrap"
	"github.com/go-arcade/roster/internal/config"
	"github.com/go-arcade/roster/internal/console"
	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/version"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// NewRootCmd builds the roster command line. initApp is the wire injector.
func NewRootCmd(initApp bootstrap.InitAppFunc) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "roster",
		Short:         "roster manages the team members of an account",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "conf", config.DefaultPath, "conf file path, e.g. --conf ./conf.d/config.toml")

	run := func(fn func(ctx context.Context, a *app.App) error) error {
		return bootstrap.Exec(configFile, initApp, fn)
	}

	root.AddCommand(
		newListCmd(run),
		newShellCmd(run),
		newConfigCmd(),
		version.VersionCmd,
	)
	return root
}

// runFunc bootstraps the app and hands it to fn.
type runFunc func(fn func(ctx context.Context, a *app.App) error) error

func newListCmd(run runFunc) *cobra.Command {
	var query, output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the team members, loading the sample roster first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unknown output format %q", output)
			}
			return run(func(ctx context.Context, a *app.App) error {
				if err := a.Seed(ctx); err != nil {
					return err
				}
				members := roster.Filter(a.Store.Members(), query)
				return printMembers(cmd.OutOrStdout(), members, output)
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive search over name, role and brands")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func printMembers(w io.Writer, members []roster.TeamMember, output string) error {
	if output == outputTable {
		console.WriteTable(w, members)
		return nil
	}
	b, err := sonic.ConfigStd.MarshalIndent(members, "", "  ")
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func newShellCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive team screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, a *app.App) error {
				return ShellFor(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
			})
		},
	}
}

// ShellFor assembles an interactive shell over a's components.
func ShellFor(a *app.App, in io.Reader, out io.Writer) *console.Shell {
	deps := console.Deps{
		Store:  a.Store,
		Editor: a.Editor,
		Loader: a.Loader,
		Brands: a.Brands(),
		Seed:   a.Conf.Current().Roster.SeedOnStart,
	}
	// a nil *metrics.Registry in the interface would not compare nil
	if a.MetricsEnabled() {
		deps.Metrics = a.Metrics
	}
	return console.NewShell(deps, in, out)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := config.Render(config.Defaults())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
