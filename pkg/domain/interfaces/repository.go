package interfaces

import (
	"context"

	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
)

// Repository is the session store adapter. Implementations must distinguish
// absence from failure: GetGuest returns (nil, nil) for a missing record and
// a tagged error for transport or validation problems.
type Repository interface {
	// CreateGuest inserts a new record. An existing session ID yields an
	// error tagged conflict.
	CreateGuest(ctx context.Context, g *guest.Guest) error

	// GetGuest fetches a record by session ID, (nil, nil) when absent.
	GetGuest(ctx context.Context, sessionID types.SessionID) (*guest.Guest, error)

	// UpdatePatientInfo overwrites the patient attributes of an existing
	// record. The session ID and the transcript are never part of the
	// update payload.
	UpdatePatientInfo(ctx context.Context, sessionID types.SessionID, info guest.PatientInfo) error

	// AppendMessages atomically appends entries to the transcript. The
	// write must not interleave with a concurrent append on the same
	// session.
	AppendMessages(ctx context.Context, sessionID types.SessionID, msgs ...guest.Message) error

	Close() error
}
