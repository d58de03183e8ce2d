package template

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_FetchByCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/code/welcome", r.URL.Path)

		_ = json.NewEncoder(w).Encode(fetchResponse{
			Success: true,
			Data: Template{
				Subject:     "Welcome {{name}}",
				HTMLContent: "<p>Hello {{name}}</p>",
				TextContent: "Hello {{name}}",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	tmpl, err := client.FetchByCode(context.Background(), "welcome")
	assert.NoError(t, err)
	assert.Equal(t, "Welcome {{name}}", tmpl.Subject)
}

func TestClient_FetchByCode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(fetchResponse{Success: false, Error: "template not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.FetchByCode(context.Background(), "unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_FetchByCode_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.FetchByCode(context.Background(), "welcome")
	assert.Error(t, err)
}
