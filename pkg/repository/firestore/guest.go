package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/clock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Firestore) CreateGuest(ctx context.Context, g *guest.Guest) error {
	// Create (not Set) so a duplicated session ID is rejected by the store.
	_, err := r.db.Collection(collectionGuestData).Doc(g.SessionID.String()).Create(ctx, g)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return r.eb.Wrap(err, "guest record already exists",
				goerr.TV(errs.SessionIDKey, g.SessionID.String()),
				goerr.T(errs.TagConflict))
		}
		return r.eb.Wrap(err, "failed to create guest record",
			goerr.TV(errs.SessionIDKey, g.SessionID.String()),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) GetGuest(ctx context.Context, sessionID types.SessionID) (*guest.Guest, error) {
	doc, err := r.db.Collection(collectionGuestData).Doc(sessionID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, r.eb.Wrap(err, "failed to get guest record",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagDatabase))
	}

	var g guest.Guest
	if err := doc.DataTo(&g); err != nil {
		return nil, goerr.Wrap(err, "failed to convert data to guest record",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagInternal))
	}
	return &g, nil
}

func (r *Firestore) UpdatePatientInfo(ctx context.Context, sessionID types.SessionID, info guest.PatientInfo) error {
	// Field-level update: session_id and chat_history are never written here.
	_, err := r.db.Collection(collectionGuestData).Doc(sessionID.String()).Update(ctx, []firestore.Update{
		{Path: "patient_name", Value: info.Name},
		{Path: "patient_age", Value: info.Age},
		{Path: "patient_gender", Value: info.Gender},
		{Path: "patient_language", Value: info.Language},
		{Path: "patient_phone", Value: info.Phone},
		{Path: "updated_at", Value: clock.Now(ctx)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r.eb.Wrap(err, "guest record not found",
				goerr.TV(errs.SessionIDKey, sessionID.String()),
				goerr.T(errs.TagNotFound))
		}
		return r.eb.Wrap(err, "failed to update patient info",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *Firestore) AppendMessages(ctx context.Context, sessionID types.SessionID, msgs ...guest.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	// Read-append-write inside a transaction: Firestore retries the whole
	// closure on contention, so two concurrent turns on the same session
	// cannot drop each other's entries. ArrayUnion is not usable here
	// because it deduplicates identical entries, and a patient repeating
	// the same message is a legitimate transcript.
	docRef := r.db.Collection(collectionGuestData).Doc(sessionID.String())
	err := r.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.New("guest record not found",
					goerr.TV(errs.SessionIDKey, sessionID.String()),
					goerr.T(errs.TagNotFound))
			}
			return goerr.Wrap(err, "failed to get guest record in transaction",
				goerr.TV(errs.SessionIDKey, sessionID.String()))
		}

		var g guest.Guest
		if err := snap.DataTo(&g); err != nil {
			return goerr.Wrap(err, "failed to convert data to guest record",
				goerr.TV(errs.SessionIDKey, sessionID.String()),
				goerr.T(errs.TagInternal))
		}

		history := append(g.ChatHistory, msgs...)
		return tx.Update(docRef, []firestore.Update{
			{Path: "chat_history", Value: history},
			{Path: "updated_at", Value: clock.Now(ctx)},
		})
	})
	if err != nil {
		if goerr.HasTag(err, errs.TagNotFound) || goerr.HasTag(err, errs.TagInternal) {
			return err
		}
		return r.eb.Wrap(err, "transaction failed for appending messages",
			goerr.TV(errs.SessionIDKey, sessionID.String()),
			goerr.T(errs.TagDatabase))
	}
	return nil
}
