package handle

import (
	"encoding/json"
	"net/http"

	"ocr-api/api/internal/imgio"
)

type base64Request struct {
	Base64Str string `json:"base64_str"`
}

// PredictByBase64 recognizes an image carried as base64 text in the request
// body. A data: URL prefix is tolerated.
func (h *Handle) PredictByBase64(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req base64Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}
	if req.Base64Str == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "base64_str is required"})
		return
	}
	data, err := h.predict(r.Context(), imgio.Base64(req.Base64Str))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, success("Success", data))
}
