package voice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, signedURLPath, r.URL.Path)
		assert.Equal(t, "agent-1", r.URL.Query().Get("agent_id"))
		assert.Equal(t, "xi-secret", r.Header.Get("xi-api-key"))
		_, _ = w.Write([]byte(`{"signed_url":"wss://voice.example/conv?token=abc"}`))
	}))
	defer srv.Close()

	got, err := NewClient(Config{BaseURL: srv.URL}).SignedURL(context.Background(), "xi-secret", "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "wss://voice.example/conv?token=abc", got)
}

func TestSignedURL_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			name: "provider rejects key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
			},
			wantMsg: "HTTP 401",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`nope`))
			},
			wantMsg: "decode voice response",
		},
		{
			name: "empty url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"signed_url":""}`))
			},
			wantMsg: "empty signed url",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := NewClient(Config{BaseURL: srv.URL}).SignedURL(context.Background(), "k", "a")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
