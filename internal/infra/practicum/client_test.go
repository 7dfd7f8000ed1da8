package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	var gotAuth, gotFromDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		w.Write([]byte(`{"homeworks": [], "current_date": 1700000000}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	body, err := client.Fetch(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "OAuth secret-token", gotAuth)
	assert.Equal(t, "42", gotFromDate)
	assert.Equal(t, int64(1700000000), body.CurrentDate(0))
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close() // connection refused from now on

	client := NewClient(endpoint, "secret-token")
	body, err := client.Fetch(context.Background(), 42)

	require.Nil(t, body)
	var unreachable *ServiceUnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, endpoint, unreachable.Params.URL)
	assert.Equal(t, int64(42), unreachable.Params.FromDate)
}

func TestFetchBadStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	_, err := client.Fetch(context.Background(), 42)

	var bad *BadResponseError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, http.StatusNotFound, bad.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchServiceDenial(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
	}{
		{"error key", `{"error": "bad_request"}`, "error"},
		{"code key", `{"code": "UnknownError"}`, "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "secret-token")
			_, err := client.Fetch(context.Background(), 42)

			var denial *ServiceDenialError
			require.ErrorAs(t, err, &denial)
			assert.Equal(t, tt.key, denial.Key)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
