//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseURL string

func init() {
	host := getEnv("TEST_API_HOST", "localhost")
	port := getEnv("TEST_API_PORT", "8080")
	baseURL = fmt.Sprintf("http://%s:%s", host, port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// makeRequest sends a JSON request to the running server. A non-empty token is
// sent as a bearer credential.
func makeRequest(t *testing.T, method, path string, body interface{}, token string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	// Generation calls the model backend and can take a while
	client := &http.Client{Timeout: 3 * time.Minute}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

func generateTestEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}

// registerTestUser creates a fresh account through the API and returns its token
func registerTestUser(t *testing.T) string {
	t.Helper()
	resp := POST(t, "/api/auth/register").
		WithBody(map[string]string{"email": generateTestEmail(), "password": "password123"}).
		Do().
		RequireStatus(http.StatusCreated)

	token, ok := resp.JSON()["token"].(string)
	require.True(t, ok, "token missing from register response")
	return token
}

// createTestProfile creates a business profile owned by token's user and returns its id
func createTestProfile(t *testing.T, token string) string {
	t.Helper()
	resp := POST(t, "/api/profiles").
		WithToken(token).
		WithBody(map[string]string{
			"offer":    "A 12-week strength program for busy parents",
			"avatar":   "Parents aged 30-45 with desk jobs",
			"problems": "No time, low energy, failed diets",
			"desires":  "Feel strong and keep up with their kids",
			"tone":     "Inspiring",
		}).
		Do().
		RequireStatus(http.StatusCreated)

	profile, ok := resp.JSON()["profile"].(map[string]interface{})
	require.True(t, ok, "profile missing from create response")
	return profile["id"].(string)
}

// requireGeneration skips tests that call the model backend unless enabled
func requireGeneration(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_GENERATION") == "" {
		t.Skip("set TEST_GENERATION=1 to run tests that call the model backend")
	}
}

// --- Testify-based Assertion Helpers ---

// APIResponse wraps an HTTP response for fluent assertions.
type APIResponse struct {
	t          *testing.T
	Response   *http.Response
	Body       []byte
	parsedJSON map[string]interface{}
}

// RequireStatus asserts the response has the expected status code (fails test immediately if not).
func (r *APIResponse) RequireStatus(expected int) *APIResponse {
	r.t.Helper()
	require.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// AssertStatus asserts the response has the expected status code.
func (r *APIResponse) AssertStatus(expected int) *APIResponse {
	r.t.Helper()
	assert.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// JSON parses the response body as JSON and returns the parsed map.
func (r *APIResponse) JSON() map[string]interface{} {
	r.t.Helper()
	if r.parsedJSON == nil {
		r.parsedJSON = make(map[string]interface{})
		require.NoError(r.t, json.Unmarshal(r.Body, &r.parsedJSON),
			"failed to parse JSON response: %s", string(r.Body))
	}
	return r.parsedJSON
}

// AssertJSONField asserts a field exists and has the expected value.
func (r *APIResponse) AssertJSONField(field string, expected interface{}) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, field, "field %s not found in response", field)
	if expected != nil {
		assert.Equal(r.t, expected, data[field], "field %s has unexpected value", field)
	}
	return r
}

// AssertErrorCode asserts the error envelope carries the given code.
func (r *APIResponse) AssertErrorCode(code string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, "error", "expected error field in response")
	assert.Equal(r.t, code, data["code"])
	return r
}

// --- Request Builder ---

// APIRequest helps build and execute API requests.
type APIRequest struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	token   string
	headers map[string]string
}

// NewRequest creates a new API request builder.
func NewRequest(t *testing.T, method, path string) *APIRequest {
	t.Helper()
	return &APIRequest{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

func (r *APIRequest) WithBody(body interface{}) *APIRequest {
	r.body = body
	return r
}

func (r *APIRequest) WithToken(token string) *APIRequest {
	r.token = token
	return r
}

func (r *APIRequest) WithHeader(key, value string) *APIRequest {
	r.headers[key] = value
	return r
}

// Do executes the request and returns an APIResponse.
func (r *APIRequest) Do() *APIResponse {
	r.t.Helper()
	resp, body := makeRequest(r.t, r.method, r.path, r.body, r.token, r.headers)
	return &APIResponse{t: r.t, Response: resp, Body: body}
}

// --- Convenience Functions ---

func GET(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodGet, path)
}

func POST(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPost, path)
}

func PUT(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPut, path)
}

func DELETE(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodDelete, path)
}
