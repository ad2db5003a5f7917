package generation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/mbelda/fridgechef-be/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"generations": []map[string]string{{"text": "Pancakes: mix and fry."}},
		})
	}))
	defer srv.Close()

	client := generation.NewCohereClient(srv.URL, "test-key", 5*time.Second)

	recipe, err := client.Generate(context.Background(), "egg,flour")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes: mix and fry.", recipe)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotBody["prompt"], "egg,flour")
	assert.EqualValues(t, 500, gotBody["max_tokens"])
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := generation.NewCohereClient(srv.URL, "test-key", 5*time.Second)

	_, err := client.Generate(context.Background(), "egg")
	assert.True(t, apperror.IsType(err, apperror.External), "got %v", err)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generations": []}`))
	}))
	defer srv.Close()

	client := generation.NewCohereClient(srv.URL, "test-key", 5*time.Second)

	_, err := client.Generate(context.Background(), "egg")
	assert.True(t, apperror.IsType(err, apperror.External), "got %v", err)
}

func TestGenerate_UnreachableHost(t *testing.T) {
	client := generation.NewCohereClient("http://127.0.0.1:1", "test-key", time.Second)

	_, err := client.Generate(context.Background(), "egg")
	assert.True(t, apperror.IsType(err, apperror.External), "got %v", err)
}
