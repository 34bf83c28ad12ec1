package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  string
		wantText string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"candidates": [{
					"content": {"parts": [{"text": "[{\"name\":\"Joe's Pizza\"}]"}]},
					"groundingMetadata": {"groundingChunks": [
						{"maps": {"uri": "https://maps.example/1", "title": "Joe's Pizza"}},
						{"web": {"uri": "https://example.com", "title": "Example"}}
					]}
				}]
			}`,
			wantText: `[{"name":"Joe's Pizza"}]`,
		},
		{
			name:    "rate_limit",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "quota exceeded"}}`,
			wantErr: "unexpected status 429",
		},
		{
			name:    "server_error",
			status:  http.StatusInternalServerError,
			body:    `{"error": {"message": "internal"}}`,
			wantErr: "unexpected status 500",
		},
		{
			name:    "malformed_response",
			status:  http.StatusOK,
			body:    `{invalid json`,
			wantErr: "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))

			resp, err := client.GenerateContent(context.Background(), GenerateRequest{
				Model:  "gemini-2.5-flash",
				Prompt: "find businesses",
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantText, resp.Text)
			require.Len(t, resp.Sources, 2)
			assert.Equal(t, "https://maps.example/1", resp.Sources[0].Maps.URI)
			assert.Equal(t, "https://example.com", resp.Sources[1].Web.URI)
		})
	}
}

func TestGenerateContentRequestBody(t *testing.T) {
	var captured apiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.GenerateContent(context.Background(), GenerateRequest{
		Model:         "gemini-2.5-flash",
		Prompt:        "pizza near me",
		MapsGrounding: true,
		LocationBias:  &LatLng{Latitude: 40.7, Longitude: -74.0},
		Schema: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"status": {Type: TypeString, Enum: []string{"Likely Active"}},
			},
			Required: []string{"status"},
		},
		ThinkingBudget: 32768,
	})
	require.NoError(t, err)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "pizza near me", captured.Contents[0].Parts[0].Text)

	require.Len(t, captured.Tools, 1)
	assert.NotNil(t, captured.Tools[0].GoogleMaps)

	require.NotNil(t, captured.ToolConfig)
	assert.InDelta(t, 40.7, captured.ToolConfig.RetrievalConfig.LatLng.Latitude, 1e-9)

	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, captured.GenerationConfig.ResponseSchema)
	assert.Equal(t, TypeObject, captured.GenerationConfig.ResponseSchema.Type)
	require.NotNil(t, captured.GenerationConfig.ThinkingConfig)
	assert.Equal(t, 32768, captured.GenerationConfig.ThinkingConfig.ThinkingBudget)
}

func TestGenerateContentInlineImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// "aGVsbG8=" is base64 for "hello".
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [
					{"text": "3"},
					{"inlineData": {"mimeType": "image/png", "data": "aGVsbG8="}}
				]}
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	resp, err := client.GenerateContent(context.Background(), GenerateRequest{
		Model:         "gemini-2.5-flash-image",
		Prompt:        "rank check",
		ImageResponse: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "3", resp.Text)
	require.NotNil(t, resp.Image)
	assert.Equal(t, "image/png", resp.Image.MIMEType)
	assert.Equal(t, []byte("hello"), resp.Image.Data)
}

func TestGenerateContentNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	resp, err := client.GenerateContent(context.Background(), GenerateRequest{
		Model:  "gemini-2.5-flash",
		Prompt: "anything",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)
	assert.Empty(t, resp.Sources)
	assert.Nil(t, resp.Image)
}
