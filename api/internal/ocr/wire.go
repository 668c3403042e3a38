package ocr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// wireLine is the strict JSON shape model-backed engines are prompted to
// return: {"lines":[{"polygon":[[x,y],...],"text":"...","confidence":0.97}]}.
type wireLine struct {
	Polygon    [][2]float64 `json:"polygon"`
	Text       string       `json:"text"`
	Confidence float64      `json:"confidence"`
}

type wireResult struct {
	Lines []wireLine `json:"lines"`
}

// ParseLinesJSON decodes a model response into a Result. Vision models wrap
// JSON in markdown fences often enough that stripping them first is cheaper
// than re-prompting. Confidences are clamped into [0,1].
func ParseLinesJSON(raw string) (Result, error) {
	raw = stripCodeFences(raw)
	var wr wireResult
	if err := json.Unmarshal([]byte(raw), &wr); err != nil {
		return Result{}, fmt.Errorf("parse engine response: %w", err)
	}
	lines := make([]Line, 0, len(wr.Lines))
	for _, wl := range wr.Lines {
		poly := make([]Point, 0, len(wl.Polygon))
		for _, p := range wl.Polygon {
			poly = append(poly, Point(p))
		}
		lines = append(lines, Line{
			Polygon:    poly,
			Text:       wl.Text,
			Confidence: clamp01(wl.Confidence),
		})
	}
	return Result{Lines: lines}, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
