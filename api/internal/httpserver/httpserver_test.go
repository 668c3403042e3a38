package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ocr-api/api/internal/handle"
	"ocr-api/api/internal/imgio"
	"ocr-api/api/internal/ocr"
)

type noopEngine struct{}

func (noopEngine) Name() string { return "noop" }
func (noopEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	return ocr.Result{Lines: []ocr.Line{}}, nil
}

func TestRoutes(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handle.New(ocr.Guard(noopEngine{}), imgio.NewResolver(time.Second), "eng", log)
	srv := httptest.NewServer(New(":0", h, log).Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}

	// Wrong-method probes prove each predict route is registered.
	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodPost, "/ocr/predict-by-path"},
		{http.MethodGet, "/ocr/predict-by-base64"},
		{http.MethodGet, "/ocr/predict-by-file"},
		{http.MethodPost, "/ocr/predict-by-url"},
	} {
		req, _ := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want 405", tc.method, tc.path, resp.StatusCode)
		}
	}
}
