package examples

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startino/reletino/pkg/config"
)

func TestClient_Retrieve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/examples", r.URL.Path)
		assert.Equal(t, "proj-1", r.URL.Query().Get("project"))
		assert.Equal(t, "looking for a crm", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("k"))
		assert.Equal(t, "secret-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"examples": [
			{"content": "post about spreadsheets", "optimal": "relevant, asks for our product category"},
			{"content": "post about hiring", "optimal": "not relevant"}
		]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(config.ExamplesConfig{
		Endpoint: server.URL,
		APIKey:   "secret-key",
		Count:    2,
		Timeout:  5 * time.Second,
	})
	require.True(t, client.Enabled())

	formatted, err := client.Retrieve(context.Background(), "proj-1", "looking for a crm")
	require.NoError(t, err)
	assert.Contains(t, formatted, "<content>post about spreadsheets</content>")
	assert.Contains(t, formatted, "<optimal>not relevant</optimal>")
	assert.Equal(t, 2, strings.Count(formatted, "<example>"))
}

func TestClient_RetrieveEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"examples": []}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(config.ExamplesConfig{Endpoint: server.URL})
	formatted, err := client.Retrieve(context.Background(), "proj-1", "query")
	require.NoError(t, err)
	assert.Empty(t, formatted)
}

func TestClient_RetrieveDisabled(t *testing.T) {
	client := New(config.ExamplesConfig{})
	assert.False(t, client.Enabled())

	formatted, err := client.Retrieve(context.Background(), "proj-1", "query")
	require.NoError(t, err)
	assert.Empty(t, formatted)
}

func TestClient_RetrieveErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := New(config.ExamplesConfig{Endpoint: server.URL})
		_, err := client.Retrieve(context.Background(), "proj-1", "query")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json")) //nolint:errcheck
		}))
		defer server.Close()

		client := New(config.ExamplesConfig{Endpoint: server.URL})
		_, err := client.Retrieve(context.Background(), "proj-1", "query")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse examples response")
	})

	t.Run("unreachable", func(t *testing.T) {
		client := New(config.ExamplesConfig{Endpoint: "http://127.0.0.1:1", Timeout: time.Second})
		_, err := client.Retrieve(context.Background(), "proj-1", "query")
		require.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	assert.Empty(t, Format(nil))

	formatted := Format([]Example{{Content: "a", Optimal: "b"}})
	assert.Equal(t, "<example><content>a</content><optimal>b</optimal></example>", formatted)
}
