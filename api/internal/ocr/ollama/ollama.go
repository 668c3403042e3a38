package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ocr-api/api/internal/ocr"
)

const prompt = `You are an OCR engine. Read ALL text in the image and return
STRICT JSON only: {"lines":[{"polygon":[[x,y],[x,y],[x,y],[x,y]],"text":"...",
"confidence":0.0}]}. One entry per text line, reading order, confidence in
[0,1]. No text in the image means {"lines":[]}. No prose, no markdown.`

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2-vision"
)

// Engine runs recognition through a locally hosted vision model served by
// Ollama's generate API.
type Engine struct {
	baseURL string
	model   string
	httpc   *http.Client
}

func New(baseURL, model string) *Engine {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Engine{
		baseURL: baseURL,
		model:   model,
		httpc:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (e *Engine) Name() string { return "ollama" }

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Format string   `json:"format"`
	Stream bool     `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  e.model,
		Prompt: prompt,
		Images: []string{base64.StdEncoding.EncodeToString(in.Image)},
		Format: "json",
		Stream: false,
	})
	if err != nil {
		return ocr.Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return ocr.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ocr.Result{}, fmt.Errorf("ollama status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("read response: %w", err)
	}
	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return ocr.Result{}, fmt.Errorf("unmarshal response: %w", err)
	}
	return ocr.ParseLinesJSON(gr.Response)
}
