package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"ocr-api/api/internal/ocr"
)

// Engine is the default local OCR provider, backed by the gosseract client.
// A fresh client is created per call; the client holds C-side buffers and is
// not reusable across images.
type Engine struct {
	clientFactory func() *gosseract.Client
}

func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	select {
	case <-ctx.Done():
		return ocr.Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	if in.Language != "" {
		if err := c.SetLanguage(in.Language); err != nil {
			return ocr.Result{}, fmt.Errorf("set language %q: %w", in.Language, err)
		}
	}
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize: %w", err)
	}
	return ocr.Result{Lines: linesFromBoxes(boxes)}, nil
}

// linesFromBoxes converts Tesseract line boxes into recognition lines. The
// four polygon corners follow reading-order winding: top-left, top-right,
// bottom-right, bottom-left. Boxes whose text trims to nothing are layout
// artifacts and are skipped.
func linesFromBoxes(boxes []gosseract.BoundingBox) []ocr.Line {
	lines := make([]ocr.Line, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		x0, y0 := float64(b.Box.Min.X), float64(b.Box.Min.Y)
		x1, y1 := float64(b.Box.Max.X), float64(b.Box.Max.Y)
		lines = append(lines, ocr.Line{
			Polygon: []ocr.Point{
				{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1},
			},
			Text:       text,
			Confidence: b.Confidence / 100.0,
		})
	}
	return lines
}
