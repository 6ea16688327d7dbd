package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shilpgroup-io/backoffice/internal/assembler"
	"shilpgroup-io/backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var creds models.AdminLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@shilpgroup.com", creds.Email)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": "upstream-token",
				"admin": map[string]string{"id": "a1", "email": creds.Email},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Login(context.Background(), models.AdminLoginRequest{
		Email:    "admin@shilpgroup.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", result.Token)
	assert.Equal(t, "a1", result.Admin.ID)
}

func TestBearerTokenAttachedFromContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"id": "a1"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := WithToken(context.Background(), "upstream-token")
	_, err := client.Profile(ctx)
	require.NoError(t, err)
}

func TestEnvelopeFailureBecomesApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"message": "Invalid credentials", "code": "BAD_LOGIN"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), models.AdminLoginRequest{Email: "x@y.com", Password: "nope"})
	require.Error(t, err)

	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "BAD_LOGIN", apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestTimeoutSurfacesTimeoutCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.http.Timeout = 20 * time.Millisecond

	_, err := client.GetProject(context.Background(), "p1")
	require.Error(t, err)

	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, "TIMEOUT", apiErr.Code)
}

func TestListProjectsFoldsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "residential", r.URL.Query().Get("type"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"data":       []map[string]string{{"_id": "p1"}, {"_id": "p2"}},
			"pagination": map[string]int{"current": 2, "pages": 7, "total": 64},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	list, err := client.ListProjects(context.Background(), "residential")
	require.NoError(t, err)
	assert.Len(t, list.Projects, 2)
	assert.Equal(t, 2, list.Pagination.Current)
	assert.Equal(t, 7, list.Pagination.Pages)
}

func TestSubmitSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Project created successfully",
			"data":    map[string]string{"projectId": "p9", "projectTitle": "Serene Heights", "slug": "serene-heights"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.CreateProject(context.Background(), testPayload())

	assert.True(t, result.Success)
	assert.Equal(t, "p9", result.ProjectID)
	assert.Equal(t, "serene-heights", result.Slug)
}

func TestSubmitFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Validation failed",
			"errors": []map[string]string{
				{"type": "field", "path": "projectTitle", "msg": "Title is required", "location": "body"},
				{"type": "field", "path": "slug", "msg": "Slug already exists", "location": "body"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.CreateProject(context.Background(), testPayload())

	assert.False(t, result.Success)
	assert.Equal(t, "Validation failed", result.Message)
	assert.Equal(t, map[string]string{
		"projectTitle": "Title is required",
		"slug":         "Slug already exists",
	}, result.FieldErrors)
}

func TestSubmitTransportErrorBecomesFailedResult(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	result := client.CreateProject(context.Background(), testPayload())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Nil(t, result.FieldErrors)
}

func testPayload() *assembler.Payload {
	return &assembler.Payload{
		Body:        bytes.NewBufferString("--x--"),
		ContentType: "multipart/form-data; boundary=x",
	}
}
