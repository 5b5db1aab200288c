package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// APIResponse is the decoded response envelope with object data.
type APIResponse struct {
	Status      string                 `json:"status"`
	Message     string                 `json:"message"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data"`
}

// Success reports whether the envelope status is "success".
func (r APIResponse) Success() bool {
	return r.Status == "success"
}

// ParseAPIResponse decodes a response whose data is an object or absent.
func ParseAPIResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

// ParseListData decodes a response whose data is an array.
func ParseListData(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp.Data
}

// Items returns the "items" array of an object response.
func Items(t *testing.T, resp APIResponse) []interface{} {
	t.Helper()

	items, ok := resp.Data["items"].([]interface{})
	require.True(t, ok, "data.items should be an array")
	return items
}
