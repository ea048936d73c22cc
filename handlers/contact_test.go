package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pytechdigital/content-api/internal/contact"
)

func postContact(g http.Handler, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	g, repo := newTestRouter()

	w := postContact(g, `{"name":"A","email":"a@b.com","phone":"1","city":"Delhi","service":"SEO","message":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sub contact.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	require.NotEmpty(t, sub.ID)
	require.False(t, sub.Timestamp.IsZero())
	require.Equal(t, "A", sub.Name)
	require.Equal(t, "Delhi", sub.City)

	require.Len(t, repo.All(), 1)
}

func TestSubmitContact_MissingField(t *testing.T) {
	g, repo := newTestRouter()

	w := postContact(g, `{"name":"A","email":"a@b.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, repo.All())
}

func TestSubmitContact_DuplicateContentAccepted(t *testing.T) {
	g, repo := newTestRouter()

	payload := `{"name":"A","email":"a@b.com","phone":"1","city":"Delhi","service":"SEO","message":"hi"}`
	w1 := postContact(g, payload)
	w2 := postContact(g, payload)
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	var s1, s2 contact.Submission
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &s1))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &s2))
	require.NotEqual(t, s1.ID, s2.ID)
	require.Len(t, repo.All(), 2)
}
