package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ocr-api/api/internal/ocr"
)

func TestRecognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Images) != 1 || req.Stream {
			t.Errorf("unexpected request: %+v images=%d", req, len(req.Images))
		}
		_ = json.NewEncoder(w).Encode(generateResponse{
			Response: `{"lines":[{"polygon":[[1,2],[3,2],[3,4],[1,4]],"text":"HELLO","confidence":0.9}]}`,
			Done:     true,
		})
	}))
	defer srv.Close()

	e := New(srv.URL, "test-model")
	res, err := e.Recognize(context.Background(), ocr.Input{Image: []byte{0x89, 'P', 'N', 'G'}})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(res.Lines) != 1 || res.Lines[0].Text != "HELLO" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRecognizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := New(srv.URL, "")
	if _, err := e.Recognize(context.Background(), ocr.Input{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestDefaults(t *testing.T) {
	e := New("", "")
	if e.baseURL != defaultBaseURL || e.model != defaultModel {
		t.Errorf("defaults not applied: %+v", e)
	}
}
