package handle

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ocr-api/api/internal/imgio"
	"ocr-api/api/internal/ocr"
)

// msgUnsupported is the guidance returned for every gatekeeper rejection.
const msgUnsupported = "please provide a .jpg or .png image"

type Handle struct {
	engine   ocr.Engine
	resolver *imgio.Resolver
	language string
	log      *slog.Logger
}

func New(engine ocr.Engine, resolver *imgio.Resolver, language string, log *slog.Logger) *Handle {
	if log == nil {
		log = slog.Default()
	}
	return &Handle{
		engine:   engine,
		resolver: resolver,
		language: language,
		log:      log,
	}
}

// predict runs the shared tail of every endpoint: resolve the source into a
// canonical image, hand it to the engine once, normalize the raw result.
func (h *Handle) predict(ctx context.Context, src imgio.Source) (any, error) {
	img, err := h.resolver.Resolve(ctx, src)
	if err != nil {
		return nil, err
	}
	png, err := img.PNG()
	if err != nil {
		return nil, err
	}
	res, err := h.engine.Recognize(ctx, ocr.Input{Image: png, Language: h.language})
	if err != nil {
		return nil, err
	}
	return ocr.Normalize(res.Lines), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps classified pipeline failures onto one consistent status
// scheme: 400 unsupported format, 422 undecodable payload, 502 failed fetch,
// 500 engine failure. Every body carries a message the caller can act on.
func (h *Handle) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var decodeErr *imgio.DecodeError
	var fetchErr *imgio.FetchError

	switch {
	case errors.Is(err, imgio.ErrUnsupportedFormat):
		h.log.Warn("rejected input", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgUnsupported})
	case errors.As(err, &decodeErr):
		h.log.Warn("undecodable image", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "image could not be decoded"})
	case errors.As(err, &fetchErr):
		h.log.Warn("fetch failed", "path", r.URL.Path, "url", fetchErr.URL, "status", fetchErr.Status, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "image could not be fetched"})
	default:
		h.log.Error("recognition failed", "path", r.URL.Path, "engine", h.engine.Name(), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "recognition failed"})
	}
}
