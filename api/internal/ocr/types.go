package ocr

import "context"

// Point is an (x, y) pixel coordinate. It is an array, not a struct, so a
// polygon normalizes to the sequence-of-pairs shape clients expect.
type Point [2]float64

// Line is one recognized text region. Polygon points keep the engine's
// winding order; Lines keep the engine's emission order.
type Line struct {
	Polygon    []Point `json:"polygon"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Result is the raw engine output for a single image. An empty Lines slice
// means "no text detected", which is a valid result, not an error.
type Result struct {
	Lines []Line
}

// Input is a single canonical image submitted for recognition, encoded as
// PNG, plus the language model hint from configuration.
type Input struct {
	Image    []byte
	Language string
}

// Engine is the external OCR capability, opaque to the rest of the service.
// Implementations are not assumed safe for unsynchronized concurrent use;
// handlers only ever see an engine wrapped by Guard.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
