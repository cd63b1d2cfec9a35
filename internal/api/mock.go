package api

import (
	"encoding/json"
)

// RequestLogEntry records a call made to the mock transport.
type RequestLogEntry struct {
	Method   string
	Endpoint string
	Body     map[string]interface{}
}

// MockTransport is an in-memory fake suitable for deterministic unit tests.
// Responses are returned in order; once exhausted, an empty payload is
// returned. Every call is recorded for assertions.
type MockTransport struct {
	Responses  []map[string]interface{}
	Err        error
	RequestLog []RequestLogEntry

	next int
}

// NewMockTransport creates a mock transport that replays the given responses.
func NewMockTransport(responses ...map[string]interface{}) *MockTransport {
	return &MockTransport{
		Responses:  responses,
		RequestLog: make([]RequestLogEntry, 0),
	}
}

// Do simulates an API request using the canned responses.
func (t *MockTransport) Do(method, endpoint string, body interface{}) (map[string]interface{}, error) {
	t.RequestLog = append(t.RequestLog, RequestLogEntry{
		Method:   method,
		Endpoint: endpoint,
		Body:     toMap(body),
	})

	if t.Err != nil {
		return nil, t.Err
	}

	if t.next < len(t.Responses) {
		resp := t.Responses[t.next]
		t.next++
		return resp, nil
	}

	return map[string]interface{}{}, nil
}

// RequestsMade returns the number of requests made to this transport.
func (t *MockTransport) RequestsMade() int {
	return len(t.RequestLog)
}

// Reset clears the recorded requests and rewinds the response sequence.
func (t *MockTransport) Reset() {
	t.RequestLog = make([]RequestLogEntry, 0)
	t.next = 0
}

// toMap normalizes a request body to a map for test assertions, taking the
// same JSON round trip the real gateway takes.
func toMap(body interface{}) map[string]interface{} {
	if body == nil {
		return nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
