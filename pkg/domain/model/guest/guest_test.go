package guest_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/clock"
)

func TestNewGuest(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return fixed })

	sessionID := types.NewSessionID()
	g := guest.New(ctx, sessionID)

	gt.Equal(t, g.SessionID, sessionID)
	gt.Equal(t, g.PatientName, "Guest")
	gt.Equal(t, g.PatientAge, 0)
	gt.Equal(t, g.PatientGender, "Unknown")
	gt.Equal(t, g.PatientLanguage, "English")
	gt.Equal(t, g.PatientPhone, "")
	gt.A(t, g.ChatHistory).Length(0)
	gt.Equal(t, g.CreatedAt, fixed)
	gt.Equal(t, g.UpdatedAt, fixed)
}

func TestSetPatientInfoKeepsTranscript(t *testing.T) {
	ctx := context.Background()
	g := guest.New(ctx, types.NewSessionID())
	g.ChatHistory = []guest.Message{
		guest.NewHumanMessage("I have a headache"),
		guest.NewAIMessage("How long has it lasted?"),
	}

	g.SetPatientInfo(ctx, guest.PatientInfo{
		Name:     "Alice",
		Age:      34,
		Gender:   "Female",
		Language: "Spanish",
		Phone:    "+34600000000",
	})

	gt.Equal(t, g.PatientName, "Alice")
	gt.Equal(t, g.PatientAge, 34)
	gt.Equal(t, g.PatientLanguage, "Spanish")
	gt.A(t, g.ChatHistory).Length(2)
}

func TestAgeUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"number", `42`, 42},
		{"numeric string", `"42"`, 42},
		{"padded string", `" 42 "`, 42},
		{"garbage string", `"abc"`, 0},
		{"negative number", `-5`, 0},
		{"negative string", `"-5"`, 0},
		{"float", `4.5`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"n":1}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var age guest.Age
			gt.NoError(t, json.Unmarshal([]byte(tc.input), &age))
			gt.Equal(t, int(age), tc.want)
		})
	}
}

func TestPatientUpdateApplyTo(t *testing.T) {
	t.Run("only supplied fields change", func(t *testing.T) {
		var update guest.PatientUpdate
		gt.NoError(t, json.Unmarshal([]byte(`{"name":"Bob","age":"51"}`), &update))

		got := update.ApplyTo(guest.PatientInfo{
			Name:     "Alice",
			Age:      34,
			Gender:   "Female",
			Language: "Spanish",
			Phone:    "+34600000000",
		})

		gt.Equal(t, got.Name, "Bob")
		gt.Equal(t, got.Age, 51)
		gt.Equal(t, got.Gender, "Female")
		gt.Equal(t, got.Language, "Spanish")
		gt.Equal(t, got.Phone, "+34600000000")
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		var update guest.PatientUpdate
		gt.NoError(t, json.Unmarshal([]byte(`{"name":"Bob","blood_type":"O"}`), &update))

		got := update.Materialize()
		gt.Equal(t, got.Name, "Bob")
		gt.Equal(t, got.Gender, "Unknown")
	})

	t.Run("materialize fills defaults", func(t *testing.T) {
		got := guest.PatientUpdate{}.Materialize()
		gt.Equal(t, got, guest.DefaultPatientInfo())
	})
}

func TestSanitizeHistory(t *testing.T) {
	history := []guest.Message{
		guest.NewHumanMessage("hello"),
		{Type: "system", Content: "not replayable"},
		{Type: guest.MessageTypeAI, Content: ""},
		guest.NewAIMessage("hi"),
	}

	got := guest.SanitizeHistory(history)
	gt.A(t, got).Length(2)
	gt.Equal(t, got[0].Type, guest.MessageTypeHuman)
	gt.Equal(t, got[1].Type, guest.MessageTypeAI)

	// input untouched
	gt.A(t, history).Length(4)
}
