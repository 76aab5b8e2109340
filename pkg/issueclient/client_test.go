package issueclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issue-tracker/pkg/issueclient"
)

func TestIssueClient(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	stored := issueclient.Issue{ID: "abc", Title: "Fix login", Status: "New", Created: created}

	var lastPatch map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issues", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]issueclient.Issue{stored})
	})
	mux.HandleFunc("POST /api/issues", func(w http.ResponseWriter, r *http.Request) {
		var req issueclient.CreateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error_code": 400, "message": "title is required"})
			return
		}
		json.NewEncoder(w).Encode(issueclient.Issue{ID: "new", Title: req.Title, Status: req.Status})
	})
	mux.HandleFunc("GET /api/issues/abc", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(stored)
	})
	mux.HandleFunc("PUT /api/issues/abc", func(w http.ResponseWriter, r *http.Request) {
		lastPatch = map[string]any{}
		json.NewDecoder(r.Body).Decode(&lastPatch)
		out := stored
		if v, ok := lastPatch["owner"].(string); ok {
			out.Owner = v
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("PATCH /api/issues/abc/close", func(w http.ResponseWriter, r *http.Request) {
		out := stored
		out.Status = "Completed"
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("DELETE /api/issues/abc", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
	})
	mux.HandleFunc("/api/issues/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error_code": 404, "message": "issue not found"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := issueclient.NewClient(ts.URL + "/")
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		issues, err := client.List(ctx)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "abc", issues[0].ID)
		assert.True(t, created.Equal(issues[0].Created))
	})

	t.Run("Get", func(t *testing.T) {
		i, err := client.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "Fix login", i.Title)
	})

	t.Run("Create", func(t *testing.T) {
		i, err := client.Create(ctx, issueclient.CreateRequest{Title: "Add search", Status: "New"})
		require.NoError(t, err)
		assert.Equal(t, "new", i.ID)
		assert.Equal(t, "New", i.Status)
	})

	t.Run("CreateValidationError", func(t *testing.T) {
		_, err := client.Create(ctx, issueclient.CreateRequest{})
		var apiErr *issueclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "title is required", apiErr.Message)
	})

	t.Run("UpdateSendsOnlySetFields", func(t *testing.T) {
		owner := "bob"
		i, err := client.Update(ctx, "abc", issueclient.Patch{Owner: &owner})
		require.NoError(t, err)
		assert.Equal(t, "bob", i.Owner)
		assert.Equal(t, map[string]any{"owner": "bob"}, lastPatch)
	})

	t.Run("Close", func(t *testing.T) {
		i, err := client.Close(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "Completed", i.Status)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, client.Delete(ctx, "abc"))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := client.Get(ctx, "missing")
		assert.ErrorIs(t, err, issueclient.ErrNotFound)

		err = client.Delete(ctx, "missing")
		assert.ErrorIs(t, err, issueclient.ErrNotFound)
	})
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, issueclient.Patch{}.Empty())
	effort := 0
	assert.False(t, issueclient.Patch{Effort: &effort}.Empty())
}
