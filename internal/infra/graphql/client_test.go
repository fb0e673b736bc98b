package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zuora-catalog-importer/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.APIConfig{BaseURL: serverURL, APIKey: "test-key"}, nil)
}

func TestExecuteDecodesData(t *testing.T) {
	var gotMethod, gotAPIKey string
	var gotBody request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAPIKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"products":{"totalCount":2}}}`))
	}))
	defer server.Close()

	var out struct {
		Products struct {
			TotalCount int `json:"totalCount"`
		} `json:"products"`
	}
	err := newTestClient(server.URL).Execute(context.Background(),
		"query { products { totalCount } }",
		map[string]any{"environmentId": "env-1"},
		&out)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "query { products { totalCount } }", gotBody.Query)
	assert.Equal(t, "env-1", gotBody.Variables["environmentId"])
	assert.Equal(t, 2, out.Products.TotalCount)
}

func TestExecuteReturnsErrorList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"Plan not found","extensions":{"code":"NOT_FOUND"}}]}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).Execute(context.Background(), "query { plan }", nil, nil)

	var list ErrorList
	require.ErrorAs(t, err, &list)
	require.Len(t, list, 1)
	assert.Contains(t, err.Error(), "Plan not found")
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestExecuteReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Execute(context.Background(), "query { plans }", nil, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestExecuteMissingDataWithOutTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var out struct{}
	err := newTestClient(server.URL).Execute(context.Background(), "query { plans }", nil, &out)
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*StatusError)))
}

func TestExecuteEmptyBaseURL(t *testing.T) {
	client := NewClient(config.APIConfig{APIKey: "k"}, nil)
	err := client.Execute(context.Background(), "query { plans }", nil, nil)
	require.Error(t, err)
}
