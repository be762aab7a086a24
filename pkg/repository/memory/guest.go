package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/clock"
)

func (r *Memory) CreateGuest(ctx context.Context, g *guest.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.guests[g.SessionID]; ok {
		return r.eb.New("guest record already exists",
			goerr.TV(errs.SessionIDKey, g.SessionID.String()),
			goerr.T(errs.TagConflict))
	}

	r.guests[g.SessionID] = copyGuest(g)
	return nil
}

func (r *Memory) GetGuest(ctx context.Context, sessionID types.SessionID) (*guest.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.guests[sessionID]
	if !ok {
		return nil, nil
	}

	return copyGuest(g), nil
}

func (r *Memory) UpdatePatientInfo(ctx context.Context, sessionID types.SessionID, info guest.PatientInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.guests[sessionID]
	if !ok {
		return r.eb.New("guest record not found",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagNotFound))
	}

	g.SetPatientInfo(ctx, info)
	return nil
}

func (r *Memory) AppendMessages(ctx context.Context, sessionID types.SessionID, msgs ...guest.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.guests[sessionID]
	if !ok {
		return r.eb.New("guest record not found",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagNotFound))
	}

	g.ChatHistory = append(g.ChatHistory, msgs...)
	g.UpdatedAt = clock.Now(ctx)
	return nil
}

// copyGuest deep-copies a record so callers cannot mutate the stored state.
func copyGuest(g *guest.Guest) *guest.Guest {
	copied := *g
	copied.ChatHistory = make([]guest.Message, len(g.ChatHistory))
	copy(copied.ChatHistory, g.ChatHistory)
	return &copied
}
