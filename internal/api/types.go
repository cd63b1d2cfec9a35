// Package api provides the HTTP gateway and types for the Salesforce REST API.
package api

// Session is the authenticated context used for all REST calls.
// It is created once at startup and never mutated afterwards.
type Session struct {
	AccessToken string
	InstanceURL string
}

// QueryResponse is the typed view of one SOQL query result page.
type QueryResponse struct {
	TotalSize      int
	Done           bool
	NextRecordsURL string
	Records        []map[string]interface{}
}

// Transport is the interface for issuing authenticated REST calls.
// endpoint is relative to the data API root (e.g. "/sobjects/Account"),
// except for "/services/..." continuation paths returned by the platform,
// which are used verbatim.
type Transport interface {
	Do(method, endpoint string, body interface{}) (map[string]interface{}, error)
}

// ParseQueryResponse converts a raw gateway payload into a QueryResponse.
func ParseQueryResponse(raw map[string]interface{}) QueryResponse {
	var page QueryResponse

	if n, ok := raw["totalSize"].(float64); ok {
		page.TotalSize = int(n)
	}
	if done, ok := raw["done"].(bool); ok {
		page.Done = done
	}
	if next, ok := raw["nextRecordsUrl"].(string); ok {
		page.NextRecordsURL = next
	}
	if items, ok := raw["records"].([]interface{}); ok {
		for _, item := range items {
			if rec, ok := item.(map[string]interface{}); ok {
				page.Records = append(page.Records, rec)
			}
		}
	}

	return page
}
