package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
)

// CreateSession generates a fresh session ID, persists a guest record with
// default attributes and an empty transcript, and returns the ID. There is
// no retry: a store failure surfaces directly to the caller.
func (u *UseCases) CreateSession(ctx context.Context) (types.SessionID, error) {
	sessionID := types.NewSessionID()
	g := guest.New(ctx, sessionID)

	if err := u.repository.CreateGuest(ctx, g); err != nil {
		return types.EmptySessionID, goerr.Wrap(err, "failed to create session")
	}

	logging.From(ctx).Info("created session", "session_id", sessionID)
	return sessionID, nil
}

// UpsertPatientInfo merges the supplied patient attributes into the session.
// A session that does not exist yet is created with defaults for the omitted
// fields and an empty transcript: the Uninitialized -> Active transition is
// triggered by the first write of any kind, and repeating the call is
// idempotent. The transcript is never touched.
func (u *UseCases) UpsertPatientInfo(ctx context.Context, sessionID types.SessionID, update guest.PatientUpdate) error {
	if err := sessionID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session ID", goerr.T(errs.TagValidation))
	}

	current, err := u.repository.GetGuest(ctx, sessionID)
	if err != nil {
		return goerr.Wrap(err, "failed to load session for patient update")
	}

	if current == nil {
		g := guest.New(ctx, sessionID)
		g.SetPatientInfo(ctx, update.Materialize())
		if err := u.repository.CreateGuest(ctx, g); err != nil {
			return goerr.Wrap(err, "failed to create session for patient update")
		}
		logging.From(ctx).Info("created session via patient update", "session_id", sessionID)
		return nil
	}

	info := update.ApplyTo(current.PatientInfo())
	if err := u.repository.UpdatePatientInfo(ctx, sessionID, info); err != nil {
		return goerr.Wrap(err, "failed to update patient info")
	}

	return nil
}

// GetSession loads a session, with a not_found error when it is absent.
func (u *UseCases) GetSession(ctx context.Context, sessionID types.SessionID) (*guest.Guest, error) {
	g, err := u.repository.GetGuest(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load session")
	}
	if g == nil {
		return nil, goerr.New("session not found",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagNotFound))
	}
	return g, nil
}
