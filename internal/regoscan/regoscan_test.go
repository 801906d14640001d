package regoscan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "motorvault/pkg/domain-errors"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"bare json":       {`{"rego":"ABC123"}`, `{"rego":"ABC123"}`},
		"json fence":      {"```json\n{\"rego\":\"ABC123\"}\n```", `{"rego":"ABC123"}`},
		"anonymous fence": {"```\n{\"rego\":\"ABC123\"}\n```", `{"rego":"ABC123"}`},
		"leading space":   {"  \n```json\n{}\n```  ", `{}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.in))
		})
	}
}

func TestHTTPExtractor_Extract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "aW1hZ2U=", req["image"])

		w.Write([]byte("```json\n{\"rego\":\"XYZ789\",\"make\":\"Toyota\",\"year\":2019}\n```"))
	}))
	defer srv.Close()

	got, err := NewHTTPExtractor(srv.URL, "secret").Extract(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", got.Rego)
	assert.Equal(t, "Toyota", got.Make)
	assert.Equal(t, 2019, got.Year)
}

func TestHTTPExtractor_Extract_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPExtractor(srv.URL, "secret").Extract(context.Background(), "aW1hZ2U=")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInternal))
}
