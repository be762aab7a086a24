package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/repository/firestore"
	"github.com/harsh2b/WellMate/pkg/utils/test"
)

func newTestRepo(t *testing.T) *firestore.Firestore {
	t.Helper()

	vars := test.NewEnvVars(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")
	repo := gt.R1(firestore.New(context.Background(),
		vars.Get("TEST_FIRESTORE_PROJECT_ID"),
		vars.Get("TEST_FIRESTORE_DATABASE_ID"),
	)).NoError(t)
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	return repo
}

func TestGuestLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sessionID := types.NewSessionID()

	t.Run("absent session resolves to nil", func(t *testing.T) {
		g, err := repo.GetGuest(ctx, sessionID)
		gt.NoError(t, err)
		gt.Nil(t, g)
	})

	t.Run("create and load", func(t *testing.T) {
		gt.NoError(t, repo.CreateGuest(ctx, guest.New(ctx, sessionID)))

		g := gt.R1(repo.GetGuest(ctx, sessionID)).NoError(t)
		gt.NotNil(t, g)
		gt.Equal(t, g.SessionID, sessionID)
		gt.Equal(t, g.PatientInfo(), guest.DefaultPatientInfo())
	})

	t.Run("duplicate create conflicts", func(t *testing.T) {
		err := repo.CreateGuest(ctx, guest.New(ctx, sessionID))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagConflict))
	})

	t.Run("update patient fields", func(t *testing.T) {
		info := guest.PatientInfo{Name: "Alice", Age: 34, Gender: "Female", Language: "Spanish", Phone: "+34600000000"}
		gt.NoError(t, repo.UpdatePatientInfo(ctx, sessionID, info))

		g := gt.R1(repo.GetGuest(ctx, sessionID)).NoError(t)
		gt.Equal(t, g.PatientInfo(), info)
		gt.A(t, g.ChatHistory).Length(0)
	})

	t.Run("append keeps order and duplicates", func(t *testing.T) {
		gt.NoError(t, repo.AppendMessages(ctx, sessionID,
			guest.NewHumanMessage("ok"),
			guest.NewAIMessage("noted"),
		))
		gt.NoError(t, repo.AppendMessages(ctx, sessionID,
			guest.NewHumanMessage("ok"),
			guest.NewAIMessage("noted"),
		))

		g := gt.R1(repo.GetGuest(ctx, sessionID)).NoError(t)
		gt.A(t, g.ChatHistory).Length(4)
		gt.Equal(t, g.ChatHistory[0].Type, guest.MessageTypeHuman)
		gt.Equal(t, g.ChatHistory[3].Type, guest.MessageTypeAI)
	})

	t.Run("append to unknown session fails", func(t *testing.T) {
		err := repo.AppendMessages(ctx, types.NewSessionID(), guest.NewHumanMessage("hi"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})
}
