package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerEndpoints(t *testing.T) {
	g, _ := newTestRouter()

	w := doGet(t, g, "/swagger/index.html")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	w = doGet(t, g, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Equal(t, "3.0.0", doc["openapi"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, paths, "/api/sitemap-data")
	require.Contains(t, paths, "/api/contact")

	// readiness always answers 200 (the in-memory fallback still serves the
	// catalog), so the doc must not promise a 503
	ready := paths["/ready"].(map[string]interface{})["get"].(map[string]interface{})
	responses := ready["responses"].(map[string]interface{})
	require.Contains(t, responses, "200")
	require.NotContains(t, responses, "503")
}
