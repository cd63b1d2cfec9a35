package records

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/input"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/sobject"
)

// queryPage builds a raw query payload the way the gateway would decode one.
func queryPage(total int, done bool, next string, recs ...map[string]interface{}) map[string]interface{} {
	items := make([]interface{}, len(recs))
	for i, r := range recs {
		items[i] = r
	}
	page := map[string]interface{}{
		"totalSize": float64(total),
		"done":      done,
		"records":   items,
	}
	if next != "" {
		page["nextRecordsUrl"] = next
	}
	return page
}

func newTestStore(transport api.Transport, responses ...string) (*Store, *input.ScriptPrompter, *bytes.Buffer) {
	prompter := input.NewScriptPrompter(responses...)
	store := NewStore(transport, prompter)
	buf := &bytes.Buffer{}
	store.Out = buf
	return store, prompter, buf
}

func TestQueryBuildsWhitelistedSOQL(t *testing.T) {
	transport := api.NewMockTransport(queryPage(1, true, "",
		map[string]interface{}{"Id": "001xx", "Name": "Acme"},
	))
	store, _, buf := newTestStore(transport)

	records, err := store.Query(sobject.Account, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	wantEndpoint := "/query/?q=" + url.QueryEscape("SELECT Id, Name, Industry, Phone, CreatedDate FROM Account LIMIT 5")
	entry := transport.RequestLog[0]
	if entry.Method != "GET" || entry.Endpoint != wantEndpoint {
		t.Errorf("Request = %s %s, want GET %s", entry.Method, entry.Endpoint, wantEndpoint)
	}
	if !strings.Contains(entry.Endpoint, "LIMIT+5") {
		t.Errorf("Expected spaces encoded as '+', got %s", entry.Endpoint)
	}

	out := buf.String()
	if !strings.Contains(out, "Found 1 record(s)") {
		t.Errorf("Expected record count in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Name: Acme") {
		t.Errorf("Expected record fields in output, got:\n%s", out)
	}
}

func TestQueryNoRecords(t *testing.T) {
	transport := api.NewMockTransport(queryPage(0, true, ""))
	store, _, buf := newTestStore(transport)

	records, err := store.Query(sobject.Lead, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if records != nil {
		t.Errorf("Expected no records, got %v", records)
	}
	if !strings.Contains(buf.String(), "No Lead records found") {
		t.Errorf("Expected empty-result message, got:\n%s", buf.String())
	}
}

func TestQueryHidesMetadataKey(t *testing.T) {
	transport := api.NewMockTransport(queryPage(1, true, "",
		map[string]interface{}{
			"attributes": map[string]interface{}{"type": "Account", "url": "/services/data/v62.0/sobjects/Account/001xx"},
			"Id":         "001xx",
			"Name":       "Acme",
		},
	))
	store, _, buf := newTestStore(transport)

	if _, err := store.Query(sobject.Account, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "attributes") {
		t.Errorf("Metadata key leaked into output:\n%s", buf.String())
	}
}

func TestCreateOmitsBlankFields(t *testing.T) {
	transport := api.NewMockTransport(map[string]interface{}{
		"id":      "003xx000001",
		"success": true,
	})
	// Contact prompts: first name, last name, email, phone.
	store, _, buf := newTestStore(transport, "Jane", "", "", "")

	if err := store.Create(sobject.Contact); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if transport.RequestsMade() != 1 {
		t.Fatalf("Expected 1 request, got %d", transport.RequestsMade())
	}
	entry := transport.RequestLog[0]
	if entry.Method != "POST" || entry.Endpoint != "/sobjects/Contact" {
		t.Errorf("Request = %s %s, want POST /sobjects/Contact", entry.Method, entry.Endpoint)
	}
	if len(entry.Body) != 1 || entry.Body["FirstName"] != "Jane" {
		t.Errorf("Payload = %v, want only FirstName", entry.Body)
	}
	if _, ok := entry.Body["LastName"]; ok {
		t.Error("Blank LastName must be absent from the payload")
	}
	if !strings.Contains(buf.String(), "Record ID: 003xx000001") {
		t.Errorf("Expected new record id in output, got:\n%s", buf.String())
	}
}

func TestCreateAbortsWhenAllFieldsBlank(t *testing.T) {
	transport := api.NewMockTransport()
	store, _, buf := newTestStore(transport, "", "", "", "")

	if err := store.Create(sobject.Contact); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 0 {
		t.Errorf("Expected no network call, got %d requests", transport.RequestsMade())
	}
	if !strings.Contains(buf.String(), "No data entered. Aborting.") {
		t.Errorf("Expected abort message, got:\n%s", buf.String())
	}
}

func TestUpdatePatchesNonBlankFields(t *testing.T) {
	transport := api.NewMockTransport(map[string]interface{}{})
	// Account editable fields: Name, Industry, Phone.
	store, _, _ := newTestStore(transport, "001xx000ABC", "Acme Corp", "", "")

	if err := store.Update(sobject.Account); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entry := transport.RequestLog[0]
	if entry.Method != "PATCH" || entry.Endpoint != "/sobjects/Account/001xx000ABC" {
		t.Errorf("Request = %s %s, want PATCH /sobjects/Account/001xx000ABC", entry.Method, entry.Endpoint)
	}
	if len(entry.Body) != 1 || entry.Body["Name"] != "Acme Corp" {
		t.Errorf("Payload = %v, want only Name", entry.Body)
	}
}

func TestUpdateAbortsOnBlankID(t *testing.T) {
	transport := api.NewMockTransport()
	store, _, buf := newTestStore(transport, "")

	if err := store.Update(sobject.Account); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 0 {
		t.Errorf("Expected no network call, got %d requests", transport.RequestsMade())
	}
	if !strings.Contains(buf.String(), "No ID entered. Aborting.") {
		t.Errorf("Expected abort message, got:\n%s", buf.String())
	}
}

func TestUpdateAbortsWhenNoFieldsEntered(t *testing.T) {
	transport := api.NewMockTransport()
	store, _, buf := newTestStore(transport, "001xx000ABC", "", "", "")

	if err := store.Update(sobject.Account); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 0 {
		t.Errorf("Expected no network call, got %d requests", transport.RequestsMade())
	}
	if !strings.Contains(buf.String(), "No updates entered. Aborting.") {
		t.Errorf("Expected abort message, got:\n%s", buf.String())
	}
}

func TestDeleteRequiresYesConfirmation(t *testing.T) {
	transport := api.NewMockTransport()
	store, _, buf := newTestStore(transport, "00Qxx000DEF", "no")

	if err := store.Delete(sobject.Lead); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 0 {
		t.Errorf("Expected no DELETE request, got %d requests", transport.RequestsMade())
	}
	if !strings.Contains(buf.String(), "Delete cancelled.") {
		t.Errorf("Expected cancellation message, got:\n%s", buf.String())
	}
}

func TestDeleteConfirmationIsCaseInsensitive(t *testing.T) {
	transport := api.NewMockTransport(map[string]interface{}{})
	store, _, _ := newTestStore(transport, "00Qxx000DEF", "YES")

	if err := store.Delete(sobject.Lead); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 1 {
		t.Fatalf("Expected 1 request, got %d", transport.RequestsMade())
	}
	entry := transport.RequestLog[0]
	if entry.Method != "DELETE" || entry.Endpoint != "/sobjects/Lead/00Qxx000DEF" {
		t.Errorf("Request = %s %s, want DELETE /sobjects/Lead/00Qxx000DEF", entry.Method, entry.Endpoint)
	}
}

func TestDeleteAbortsOnBlankID(t *testing.T) {
	transport := api.NewMockTransport()
	store, _, _ := newTestStore(transport, "")

	if err := store.Delete(sobject.Lead); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transport.RequestsMade() != 0 {
		t.Errorf("Expected no network call, got %d requests", transport.RequestsMade())
	}
}

func TestOperationsSurfaceGatewayErrors(t *testing.T) {
	transport := api.NewMockTransport()
	transport.Err = &api.APIError{StatusCode: 400, ErrorCode: "MALFORMED_QUERY", Message: "unexpected token"}
	store, _, _ := newTestStore(transport)

	if _, err := store.Query(sobject.Account, 10); err == nil {
		t.Error("Expected query to surface the gateway error")
	}
}
