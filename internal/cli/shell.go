package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/input"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/output"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/records"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/sobject"
)

// Menu actions, in display order.
const (
	actionQuery = iota + 1
	actionCreate
	actionUpdate
	actionDelete
	actionExport
	actionExit
)

// Shell drives the interactive menu loop. After authentication it loops
// until the user selects Exit; request errors are printed and absorbed back
// into the loop, never fatal.
type Shell struct {
	store    *records.Store
	prompter input.Prompter
	out      io.Writer
}

// NewShell creates a shell over the given record store.
func NewShell(store *records.Store, prompter input.Prompter, out io.Writer) *Shell {
	return &Shell{store: store, prompter: prompter, out: out}
}

// Run presents the action menu until the user exits. End of input is treated
// like Exit.
func (s *Shell) Run() error {
	for {
		s.printMenu()

		choice, err := s.prompter.Line("\n  Select action (1-6): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		action, ok := parseChoice(choice, actionExit)
		if !ok {
			fmt.Fprintln(s.out, "  Invalid selection.")
			continue
		}

		if action == actionExit {
			fmt.Fprintln(s.out, "\n  Goodbye!")
			return nil
		}

		obj, err := s.selectObject()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := s.dispatch(action, obj); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(s.out, "  %s\n", output.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
	}
}

func (s *Shell) dispatch(action int, obj sobject.Type) error {
	switch action {
	case actionQuery:
		limit, err := s.readLimit()
		if err != nil {
			return err
		}
		_, err = s.store.Query(obj, limit)
		return err
	case actionCreate:
		return s.store.Create(obj)
	case actionUpdate:
		return s.store.Update(obj)
	case actionDelete:
		return s.store.Delete(obj)
	case actionExport:
		_, err := s.store.Export(obj)
		return err
	}
	return nil
}

func (s *Shell) printMenu() {
	fmt.Fprintf(s.out, "\n%s\n", output.Rule(60))
	fmt.Fprintf(s.out, "  %s\n", output.MenuHeaderStyle.Render("ACTIONS:"))
	fmt.Fprintln(s.out, "    1. Query records")
	fmt.Fprintln(s.out, "    2. Create record")
	fmt.Fprintln(s.out, "    3. Update record")
	fmt.Fprintln(s.out, "    4. Delete record")
	fmt.Fprintln(s.out, "    5. Export to CSV")
	fmt.Fprintln(s.out, "    6. Exit")
}

// selectObject prompts for one of the supported objects, re-prompting until
// a valid 1-4 digit is entered.
func (s *Shell) selectObject() (sobject.Type, error) {
	fmt.Fprintf(s.out, "\n  %s\n", output.MenuHeaderStyle.Render("Available objects:"))
	for i, obj := range sobject.All {
		fmt.Fprintf(s.out, "    %d. %s\n", i+1, obj)
	}

	for {
		choice, err := s.prompter.Line("\n  Select object (1-4): ")
		if err != nil {
			return 0, err
		}
		if n, ok := parseChoice(choice, len(sobject.All)); ok {
			return sobject.All[n-1], nil
		}
		fmt.Fprintln(s.out, "  Invalid selection. Try again.")
	}
}

// readLimit prompts for the record limit, defaulting when blank and
// re-prompting on non-numeric or non-positive input.
func (s *Shell) readLimit() (int, error) {
	for {
		raw, err := s.prompter.Line(fmt.Sprintf("  Record limit (default %d): ", core.DefaultQueryLimit))
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return core.DefaultQueryLimit, nil
		}
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(s.out, "  Invalid limit. Enter a positive number.")
	}
}

// parseChoice parses a 1-based menu selection, rejecting anything outside
// [1, max].
func parseChoice(raw string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
