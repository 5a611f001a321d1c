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

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/go-arcade/roster/internal/roster"
	"github.com/go-arcade/roster/pkg/log"
)

const prompt = "roster> "

// Dumper writes a metrics exposition.
type Dumper interface {
	Dump(w io.Writer) error
}

// Shell is the interactive team screen: every input line is one command.
type Shell struct {
	store   *roster.Store
	editor  *roster.Editor
	loader  *roster.Loader
	metrics Dumper
	brands  []string
	seed    bool
	view    *View

	in  io.Reader
	out io.Writer

	quit bool
	// loads started from the shell, waited for on exit
	pending sync.WaitGroup
}

type Deps struct {
	Store   *roster.Store
	Editor  *roster.Editor
	Loader  *roster.Loader
	Metrics Dumper
	Brands  []string
	// Seed starts a background load on entry when the roster is empty.
	Seed bool
}

func NewShell(deps Deps, in io.Reader, out io.Writer) *Shell {
	out = &syncWriter{w: out}
	brands := deps.Brands
	if len(brands) == 0 {
		brands = roster.AvailableBrands
	}
	return &Shell{
		store:   deps.Store,
		editor:  deps.Editor,
		loader:  deps.Loader,
		metrics: deps.Metrics,
		brands:  brands,
		seed:    deps.Seed,
		view:    NewView(deps.Store, out),
		in:      in,
		out:     out,
	}
}

// Run reads commands until quit, EOF or ctx is done. The table is redrawn
// after every store mutation.
func (s *Shell) Run(ctx context.Context) error {
	stop := s.view.Live()
	defer stop()
	defer s.pending.Wait()

	if s.seed && s.store.Len() == 0 {
		s.LoadInBackground(ctx)
	}
	s.view.Render()
	scanner := bufio.NewScanner(s.in)
	for !s.quit {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Exec(ctx, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) {
	args, err := splitArgs(line)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if len(args) == 0 {
		return
	}
	cmd := s.commands()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Debugw("shell command failed", "line", line, "error", err)
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

// commands builds a fresh tree per line so flag values never leak between
// invocations.
func (s *Shell) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "roster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.AddCommand(
		s.listCmd(),
		s.searchCmd(),
		s.addCmd(),
		s.editCmd(),
		s.removeCmd(),
		s.loadCmd(),
		s.statusCmd(),
		s.statsCmd(),
		s.brandsCmd(),
		s.rolesCmd(),
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "Leave the shell",
			Run: func(*cobra.Command, []string) {
				s.quit = true
			},
		},
	)
	return root
}

func (s *Shell) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Clear the search and show every member",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			s.view.SetQuery("")
			s.view.Render()
		},
	}
}

func (s *Shell) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Filter by name, role or brand",
		Run: func(_ *cobra.Command, args []string) {
			s.view.SetQuery(strings.Join(args, " "))
			s.view.Render()
		},
	}
}

func (s *Shell) addCmd() *cobra.Command {
	var (
		role   string
		brands []string
	)
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a team member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			form := s.editor.NewForm()
			if len(args) == 1 {
				form.Username = args[0]
			}
			if role != "" {
				r, err := roster.ParseRole(role)
				if err != nil {
					return err
				}
				form.Role = r
			}
			for _, b := range brands {
				form.AddCustomBrand(b)
			}
			m, err := s.editor.Submit(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "added %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&role, "role", "r", "", "Admin, Finance or Staff (default Admin)")
	cmd.Flags().StringArrayVarP(&brands, "brand", "b", nil, "brand to assign, repeatable")
	return cmd
}

func (s *Shell) editCmd() *cobra.Command {
	var (
		username string
		role     string
		brands   []string
		toggles  []string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m, ok := s.store.Member(args[0])
			if !ok {
				fmt.Fprintf(s.out, "no member with id %s\n", args[0])
				return nil
			}
			form := s.editor.EditForm(m)
			if c.Flags().Changed("username") {
				form.Username = username
			}
			if role != "" {
				r, err := roster.ParseRole(role)
				if err != nil {
					return err
				}
				form.Role = r
			}
			if c.Flags().Changed("brand") {
				form.Brands = nil
				for _, b := range brands {
					form.AddCustomBrand(b)
				}
			}
			for _, b := range toggles {
				form.ToggleBrand(b)
			}
			updated, err := s.editor.Submit(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "saved %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "new username")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Admin, Finance or Staff")
	cmd.Flags().StringArrayVarP(&brands, "brand", "b", nil, "replace the brand selection, repeatable")
	cmd.Flags().StringArrayVarP(&toggles, "toggle", "t", nil, "select or deselect a brand, repeatable")
	return cmd
}

func (s *Shell) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a team member",
		Args:    cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			m, ok := s.store.Member(args[0])
			s.store.RemoveMember(args[0])
			if !ok {
				fmt.Fprintf(s.out, "no member with id %s\n", args[0])
				return
			}
			fmt.Fprintf(s.out, "removed %s (%s)\n", m.Name, m.ID)
		},
	}
}

func (s *Shell) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Reload the roster from its source in the background",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			s.LoadInBackground(c.Context())
		},
	}
}

// LoadInBackground starts a load without blocking the prompt. Run waits for
// it before returning.
func (s *Shell) LoadInBackground(ctx context.Context) {
	done := s.loader.Start(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := <-done; err != nil {
			log.Warnw("background load failed", "error", err)
		}
	}()
}

func (s *Shell) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show loading flag, error and size",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			errMsg := "none"
			if e := s.store.Error(); e != nil {
				errMsg = *e
			}
			fmt.Fprintf(s.out, "members: %d\nloading: %t\nerror: %s\nquery: %q\n",
				s.store.Len(), s.store.Loading(), errMsg, s.view.Query())
		},
	}
}

func (s *Shell) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print roster metrics",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if s.metrics == nil {
				fmt.Fprintln(s.out, "metrics are disabled")
				return nil
			}
			return s.metrics.Dump(s.out)
		},
	}
}

func (s *Shell) brandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the brand catalog",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			for _, b := range s.brands {
				fmt.Fprintln(s.out, b)
			}
		},
	}
}

func (s *Shell) rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List roles",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			for _, r := range roster.Roles {
				fmt.Fprintf(s.out, "%-8s %s\n", r, r.Description())
			}
		},
	}
}

// syncWriter serializes writes from the prompt loop and background renders.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
