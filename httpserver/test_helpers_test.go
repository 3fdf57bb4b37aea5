package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"cinelog/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Info    string          `json:"info,omitempty"`
}

func decodeAPIResponse(t testing.TB, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "failed to decode response body")
	return resp
}

func decodeAPIResult(t testing.TB, result json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(result, v), "failed to decode result payload")
}
