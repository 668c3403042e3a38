package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ocr-api/api/internal/ocr"
)

const prompt = `You are an OCR engine. Read ALL text in the image.
Return STRICT JSON, nothing else:
{
  "lines": [
    {
      "polygon": [[x,y],[x,y],[x,y],[x,y]],  // pixel corners, reading-order winding
      "text": "recognized line text",
      "confidence": 0.0   // your certainty in [0,1]
    }
  ]
}
Emit one entry per text line, in reading order. If the image contains no
text, return {"lines": []}. Do not translate, summarize, or correct the text.`

// Engine runs recognition through a Gemini vision model. It is the remote
// alternative to the local Tesseract engine.
type Engine struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{apiKey: apiKey, model: model}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if e.apiKey == "" {
		return ocr.Result{}, fmt.Errorf("gemini: api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return ocr.Result{}, fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(e.model)
	m.SetTemperature(0)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.Text(prompt), genai.ImageData("png", in.Image))
	if err != nil {
		return ocr.Result{}, fmt.Errorf("gemini generate: %w", err)
	}
	text, err := candidateText(resp)
	if err != nil {
		return ocr.Result{}, err
	}
	return ocr.ParseLinesJSON(text)
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			return string(t), nil
		}
	}
	return "", fmt.Errorf("gemini: no text part in response")
}
