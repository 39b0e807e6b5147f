package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, gotPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && gotPrompt != nil && len(req.Contents) > 0 {
			*gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var prompt string
	srv := newTestServer(t, http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hola Ana "},{"text":"paga hoy"}]}}]}`, &prompt)
	defer srv.Close()

	gen, err := NewGeminiGenerator(context.Background(), "test-key", "test-model", srv.URL+"/")
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "Escribe WhatsApp para Ana.")
	require.NoError(t, err)
	assert.Equal(t, "Hola Ana paga hoy", text)
	assert.Equal(t, "Escribe WhatsApp para Ana.", prompt)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	t.Run("upstream failure", func(t *testing.T) {
		srv := newTestServer(t, http.StatusInternalServerError, `{"error":{"code":500,"message":"boom"}}`, nil)
		defer srv.Close()

		gen, err := NewGeminiGenerator(context.Background(), "test-key", "test-model", srv.URL+"/")
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "hola")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("rejected key", func(t *testing.T) {
		srv := newTestServer(t, http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`, nil)
		defer srv.Close()

		gen, err := NewGeminiGenerator(context.Background(), "test-key", "test-model", srv.URL+"/")
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "hola")
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("no candidates", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, `{"candidates":[]}`, nil)
		defer srv.Close()

		gen, err := NewGeminiGenerator(context.Background(), "test-key", "test-model", srv.URL+"/")
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "hola")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewGeminiGenerator(context.Background(), "", "test-model", "")
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}
