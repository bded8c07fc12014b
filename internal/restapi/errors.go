package restapi

import (
	"encoding/json"
	"net/http"

	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/models"
)

// errorResponse is the body of every error response except validation errors.
type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) writeError(w http.ResponseWriter, status int, text string, version int) {
	setJSONResponseType(w)
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(errorResponse{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     version,
	})
	if err != nil {
		api.Logger.Error("failed to encode error response", "status", status, "error", err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response. Version 1 is kept
// for clients that parse it.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, http.StatusUnauthorized, "permission denied", 1)
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)
	api.writeError(w, http.StatusInternalServerError, "internal server error", 1)
}

// conflictResponse reports a request that cannot be answered unambiguously,
// such as a trip matching both directions equally well.
func (api *RestAPI) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.writeError(w, http.StatusConflict, err.Error(), 2)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
