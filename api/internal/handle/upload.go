package handle

import (
	"io"
	"net/http"

	"ocr-api/api/internal/imgio"
)

// PredictByFile recognizes a multipart-uploaded image. The success message
// echoes the uploaded filename.
func (h *Handle) PredictByFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field \"file\" is required"})
		return
	}
	defer file.Close()

	// Extension gate before reading the body; no point slurping bytes the
	// filename already disqualifies.
	if err := imgio.CheckExt(header.Filename); err != nil {
		h.writeError(w, r, err)
		return
	}
	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read upload"})
		return
	}
	data, err := h.predict(r.Context(), imgio.Upload{Filename: header.Filename, Data: content})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success(header.Filename, data))
}
