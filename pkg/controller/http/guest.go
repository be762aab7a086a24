package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
)

func newChatHandler(uc UseCase, cookie *sessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uc.CreateSession(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}

		cookie.Issue(w, sessionID)
		respondJSON(w, http.StatusOK, map[string]string{
			"session_id": sessionID.String(),
		})
	}
}

type updatePatientRequest struct {
	SessionID   types.SessionID `json:"session_id"`
	PatientInfo json.RawMessage `json:"patient_info"`
}

func updatePatientHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to decode request body",
				goerr.T(errs.TagValidation)))
			return
		}

		if req.SessionID == types.EmptySessionID {
			handleError(w, r, goerr.New("Session ID is required",
				goerr.T(errs.TagValidation)))
			return
		}

		update, err := decodePatientUpdate(req.PatientInfo)
		if err != nil {
			handleError(w, r, err)
			return
		}

		if err := uc.UpsertPatientInfo(r.Context(), req.SessionID, update); err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

// decodePatientUpdate rejects payloads where patient_info is missing or not
// a JSON object; a string or array must fail validation, not crash.
func decodePatientUpdate(raw json.RawMessage) (guest.PatientUpdate, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return guest.PatientUpdate{}, goerr.New("Invalid patient info",
			goerr.T(errs.TagValidation))
	}

	var update guest.PatientUpdate
	if err := json.Unmarshal(trimmed, &update); err != nil {
		return guest.PatientUpdate{}, goerr.Wrap(err, "Invalid patient info",
			goerr.T(errs.TagValidation))
	}
	return update, nil
}

type chatRequest struct {
	SessionID types.SessionID `json:"session_id"`
	Message   string          `json:"message"`
}

func chatHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to decode request body",
				goerr.T(errs.TagValidation)))
			return
		}

		if req.SessionID == types.EmptySessionID {
			handleError(w, r, goerr.New("Session ID is required",
				goerr.T(errs.TagValidation)))
			return
		}
		if req.Message == "" {
			handleError(w, r, goerr.New("Message is required",
				goerr.T(errs.TagValidation)))
			return
		}

		reply, err := uc.Chat(r.Context(), req.SessionID, req.Message)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"response": reply})
	}
}

// logoutHandler clears the request-scoped session linkage. The persisted
// guest record stays in the store; retention is the store's concern.
func logoutHandler(cookie *sessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionID, ok := cookie.Read(r); ok {
			logging.From(r.Context()).Info("logout", "session_id", sessionID)
		}
		cookie.Clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Warn("failed to encode response body", "error", err)
	}
}
