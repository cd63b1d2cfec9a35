// Package sobject defines the fixed set of supported Salesforce objects and
// their per-object field tables. Every record read or written by the CLI
// flows through these whitelists; there is no dynamic schema discovery.
package sobject

import (
	"fmt"
	"strings"
)

// Type identifies one of the supported Salesforce objects.
type Type int

const (
	Account Type = iota
	Contact
	Lead
	Opportunity
)

// All lists the supported objects in menu order.
var All = []Type{Account, Contact, Lead, Opportunity}

func (t Type) String() string {
	switch t {
	case Account:
		return "Account"
	case Contact:
		return "Contact"
	case Lead:
		return "Lead"
	case Opportunity:
		return "Opportunity"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Field pairs an API field name with its interactive prompt label.
type Field struct {
	Name   string
	Prompt string
}

var queryFields = map[Type][]string{
	Account:     {"Id", "Name", "Industry", "Phone", "CreatedDate"},
	Contact:     {"Id", "FirstName", "LastName", "Email", "Phone", "AccountId"},
	Lead:        {"Id", "FirstName", "LastName", "Company", "Status", "Email"},
	Opportunity: {"Id", "Name", "StageName", "Amount", "CloseDate", "AccountId"},
}

var createFields = map[Type][]Field{
	Account: {
		{Name: "Name", Prompt: "Account name"},
		{Name: "Industry", Prompt: "Industry"},
		{Name: "Phone", Prompt: "Phone"},
	},
	Contact: {
		{Name: "FirstName", Prompt: "First name"},
		{Name: "LastName", Prompt: "Last name"},
		{Name: "Email", Prompt: "Email"},
		{Name: "Phone", Prompt: "Phone"},
	},
	Lead: {
		{Name: "FirstName", Prompt: "First name"},
		{Name: "LastName", Prompt: "Last name"},
		{Name: "Company", Prompt: "Company"},
		{Name: "Email", Prompt: "Email"},
	},
	Opportunity: {
		{Name: "Name", Prompt: "Opportunity name"},
		{Name: "StageName", Prompt: "Stage (e.g. Prospecting)"},
		{Name: "CloseDate", Prompt: "Close date (YYYY-MM-DD)"},
		{Name: "Amount", Prompt: "Amount"},
	},
}

var updateFields = map[Type][]string{
	Account:     {"Name", "Industry", "Phone"},
	Contact:     {"FirstName", "LastName", "Email", "Phone"},
	Lead:        {"FirstName", "LastName", "Company", "Status"},
	Opportunity: {"Name", "StageName", "Amount", "CloseDate"},
}

// QueryFields returns the whitelist of fields selected by query and export.
func (t Type) QueryFields() []string {
	return append([]string(nil), queryFields[t]...)
}

// CreateFields returns the prompt table used when creating a record.
func (t Type) CreateFields() []Field {
	return append([]Field(nil), createFields[t]...)
}

// UpdateFields returns the editable field set for updates.
func (t Type) UpdateFields() []string {
	return append([]string(nil), updateFields[t]...)
}

// SOQL builds the SELECT statement for the object. A limit of zero or less
// omits the LIMIT clause (used by the query-all export).
func (t Type) SOQL(limit int) string {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(queryFields[t], ", "), t)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	return query
}
