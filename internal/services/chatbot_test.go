package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotGenerate(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, 0.7, req.Temperature)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "hello back"})
	}))
	defer upstream.Close()

	client := NewChatbotClient("key", upstream.URL)
	text, err := client.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello back", text)
}

func TestChatbotGenerateUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	defer upstream.Close()

	client := NewChatbotClient("key", upstream.URL)
	_, err := client.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestChatbotGenerateWithoutKey(t *testing.T) {
	client := NewChatbotClient("", "http://unused.invalid")
	_, err := client.Generate(context.Background(), "hello")
	require.Error(t, err)
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 400, serr.Status)
}
