package handle

import (
	"net/http"

	"ocr-api/api/internal/imgio"
)

// PredictByURL fetches an image over HTTP and recognizes it. The fetched
// bytes are signature-checked; the URL's own extension proves nothing.
func (h *Handle) PredictByURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "GET only"})
		return
	}
	u := r.URL.Query().Get("imageUrl")
	if u == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "imageUrl is required"})
		return
	}
	data, err := h.predict(r.Context(), imgio.URL(u))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success("Success", data))
}
