package handle

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/dto"
)

// jsonResponse writes data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// jsonError writes an error response as JSON with the specified status code.
func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

// statusFor maps result codes to HTTP status codes. Success and unknown
// codes fall back to the given default.
func statusFor(res dto.Result, okStatus int) int {
	if res.Success {
		return okStatus
	}
	switch res.Code {
	case core.CodeNotFound:
		return http.StatusNotFound
	case core.CodeValidation, core.CodeInvalidAmount:
		return http.StatusBadRequest
	case core.CodeInvalidState, core.CodeAlreadyDone, core.CodeNotReady:
		return http.StatusConflict
	case core.CodeForbidden:
		return http.StatusForbidden
	}
	return http.StatusBadRequest
}

// pathID parses an int64 path segment; ok is false after a 400 was written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}
