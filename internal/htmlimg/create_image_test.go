package htmlimg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/30042004huy/Tecksale-quanlibanhang/internal/util"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func newTestService(t *testing.T, handler http.HandlerFunc) ImageRenderer {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := resty.New()
	t.Cleanup(func() { _ = client.Close() })

	return NewHCTIService(client, &util.Config{
		RenderAPIURL:    ts.URL,
		RenderAPIUserID: "user-id",
		RenderAPIKey:    "api-key",
	})
}

func TestCreateImage(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/image", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "user-id", user)
		require.Equal(t, "api-key", pass)

		var req createImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "<html></html>", req.HTML)
		require.Equal(t, "", req.CSS)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://hcti.io/v1/image/abc123"}`))
	})

	url, err := service.CreateImage(context.Background(), "<html></html>", "")
	require.NoError(t, err)
	require.Equal(t, "https://hcti.io/v1/image/abc123", url)
}

func TestCreateImageMissingURL(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200}`))
	})

	_, err := service.CreateImage(context.Background(), "<html></html>", "")
	require.ErrorIs(t, err, ErrNoImageURL)
}

func TestCreateImageServerError(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := service.CreateImage(context.Background(), "<html></html>", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
