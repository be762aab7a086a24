package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
)

// handleError maps tagged errors to HTTP statuses. Server-side failures are
// reported with a generic body so store and upstream details never reach the
// client.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case goerr.HasTag(err, errs.TagValidation):
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})

	case goerr.HasTag(err, errs.TagNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Session not found",
		})

	case goerr.HasTag(err, errs.TagConflict):
		respondJSON(w, http.StatusConflict, map[string]string{
			"error": "Session already exists",
		})

	case goerr.HasTag(err, errs.TagLLMError):
		errs.Handle(r.Context(), err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate response",
		})

	default:
		errs.Handle(r.Context(), err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}
