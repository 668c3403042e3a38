package handle

import (
	"net/http"

	"ocr-api/api/internal/imgio"
)

// PredictByPath recognizes an image already on the local filesystem.
func (h *Handle) PredictByPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "GET only"})
		return
	}
	p := r.URL.Query().Get("image_path")
	if p == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image_path is required"})
		return
	}
	data, err := h.predict(r.Context(), imgio.Path(p))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success("Success", data))
}
