// Package records implements the CRUD and export operations for the
// supported Salesforce objects. Every operation looks up the object's field
// table, collects input through a Prompter, and delegates to the gateway.
package records

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/input"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/output"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/sobject"
)

// Store executes record operations against a transport.
type Store struct {
	transport api.Transport
	prompter  input.Prompter

	// Out receives user-facing operation output; defaults to stdout.
	Out io.Writer

	// ExportDir is where CSV exports are written; defaults to the working
	// directory.
	ExportDir string
}

// NewStore creates a record store over the given transport and prompter.
func NewStore(transport api.Transport, prompter input.Prompter) *Store {
	return &Store{
		transport: transport,
		prompter:  prompter,
		Out:       os.Stdout,
		ExportDir: ".",
	}
}

// Query runs the object's whitelisted SELECT with the given limit and prints
// each returned record. It returns the records for callers that need them.
func (s *Store) Query(obj sobject.Type, limit int) ([]map[string]interface{}, error) {
	soql := obj.SOQL(limit)
	fmt.Fprintf(s.Out, "\n  Executing: %s\n", soql)

	raw, err := s.transport.Do(http.MethodGet, "/query/?q="+url.QueryEscape(soql), nil)
	if err != nil {
		return nil, err
	}

	page := api.ParseQueryResponse(raw)
	if len(page.Records) == 0 {
		fmt.Fprintf(s.Out, "\n  No %s records found.\n", obj)
		return nil, nil
	}

	fmt.Fprintf(s.Out, "\n  Found %d record(s):\n\n", page.TotalSize)
	fields := obj.QueryFields()
	for _, record := range page.Records {
		output.PrintRecord(s.Out, record, fields)
	}

	return page.Records, nil
}

// Create prompts for each field in the object's prompt table and POSTs the
// collected payload. Blank input omits the field; if nothing is entered the
// operation aborts without a network call.
func (s *Store) Create(obj sobject.Type) error {
	fmt.Fprintf(s.Out, "\n  Enter details for new %s:\n", obj)

	data := make(map[string]interface{})
	for _, field := range obj.CreateFields() {
		value, err := s.prompter.Line(fmt.Sprintf("    %s: ", field.Prompt))
		if err != nil {
			return err
		}
		if value != "" {
			data[field.Name] = value
		}
	}

	if len(data) == 0 {
		fmt.Fprintln(s.Out, "  No data entered. Aborting.")
		return nil
	}

	raw, err := s.transport.Do(http.MethodPost, "/sobjects/"+obj.String(), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  %s\n", output.SuccessStyle.Render(fmt.Sprintf("✓ %s created successfully!", obj)))
	if id, ok := raw["id"].(string); ok {
		fmt.Fprintf(s.Out, "    Record ID: %s\n", id)
	}
	return nil
}

// Update prompts for a record id and each editable field, then PATCHes the
// collected changes. A blank id or an empty change set aborts without a
// network call.
func (s *Store) Update(obj sobject.Type) error {
	id, err := s.prompter.Line(fmt.Sprintf("\n  Enter %s record ID to update: ", obj))
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(s.Out, "  No ID entered. Aborting.")
		return nil
	}

	fmt.Fprintln(s.Out, "  Enter fields to update (leave blank to skip):")
	updates := make(map[string]interface{})
	for _, field := range obj.UpdateFields() {
		value, err := s.prompter.Line(fmt.Sprintf("    %s: ", field))
		if err != nil {
			return err
		}
		if value != "" {
			updates[field] = value
		}
	}

	if len(updates) == 0 {
		fmt.Fprintln(s.Out, "  No updates entered. Aborting.")
		return nil
	}

	if _, err := s.transport.Do(http.MethodPatch, fmt.Sprintf("/sobjects/%s/%s", obj, id), updates); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  %s\n", output.SuccessStyle.Render(fmt.Sprintf("✓ %s %s updated successfully!", obj, id)))
	return nil
}

// Delete prompts for a record id and a literal "yes" confirmation
// (case-insensitive) before issuing the DELETE. Any other confirmation input
// cancels without a network call.
func (s *Store) Delete(obj sobject.Type) error {
	id, err := s.prompter.Line(fmt.Sprintf("\n  Enter %s record ID to delete: ", obj))
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(s.Out, "  No ID entered. Aborting.")
		return nil
	}

	confirm, err := s.prompter.Line(fmt.Sprintf("  Confirm delete %s? (yes/no): ", id))
	if err != nil {
		return err
	}
	if !equalsYes(confirm) {
		fmt.Fprintln(s.Out, "  Delete cancelled.")
		return nil
	}

	if _, err := s.transport.Do(http.MethodDelete, fmt.Sprintf("/sobjects/%s/%s", obj, id), nil); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n  %s\n", output.SuccessStyle.Render(fmt.Sprintf("✓ %s %s deleted successfully!", obj, id)))
	return nil
}

// equalsYes reports whether the confirmation input is a literal "yes",
// case-insensitively. Anything else, including "y", cancels.
func equalsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
