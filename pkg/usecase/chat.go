package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/service/prompt"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
)

// Chat runs one turn of the consultation: load the session, compose the
// system prompt from its patient attributes, replay the transcript to the
// generation service with the new message, then atomically append both the
// human and the AI entry. A turn against an unknown session fails with
// not_found rather than creating one; only UpsertPatientInfo may create a
// session implicitly. When generation fails nothing is persisted.
func (u *UseCases) Chat(ctx context.Context, sessionID types.SessionID, userMessage string) (string, error) {
	g, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	systemPrompt, err := prompt.BuildSystemPrompt(g.PatientInfo())
	if err != nil {
		return "", goerr.Wrap(err, "failed to compose system prompt")
	}

	history := g.Transcript()
	reply, err := u.gateway.Generate(ctx, systemPrompt, history, userMessage)
	if err != nil {
		return "", goerr.Wrap(err, "generation service failed",
			goerr.V("session_id", sessionID))
	}

	turn := []guest.Message{
		guest.NewHumanMessage(userMessage),
		guest.NewAIMessage(reply),
	}
	if err := u.repository.AppendMessages(ctx, sessionID, turn...); err != nil {
		return "", goerr.Wrap(err, "failed to append turn",
			goerr.V("session_id", sessionID))
	}

	logging.From(ctx).Debug("appended turn",
		"session_id", sessionID,
		"history_len", len(g.ChatHistory)+len(turn))

	return reply, nil
}
