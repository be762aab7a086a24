package guest

import (
	"context"
	"time"

	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/clock"
)

// Defaults applied when a guest record is created without patient details.
const (
	DefaultPatientName     = "Guest"
	DefaultPatientGender   = "Unknown"
	DefaultPatientLanguage = "English"
)

// Guest is a guest's identified conversational context: identity, patient
// attributes and the running transcript. It maps 1:1 onto a document in the
// guest_data collection.
type Guest struct {
	SessionID       types.SessionID `firestore:"session_id" json:"session_id"`
	PatientName     string          `firestore:"patient_name" json:"patient_name"`
	PatientAge      int             `firestore:"patient_age" json:"patient_age"`
	PatientGender   string          `firestore:"patient_gender" json:"patient_gender"`
	PatientLanguage string          `firestore:"patient_language" json:"patient_language"`
	PatientPhone    string          `firestore:"patient_phone" json:"patient_phone"`
	ChatHistory     []Message       `firestore:"chat_history" json:"chat_history"`
	CreatedAt       time.Time       `firestore:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `firestore:"updated_at" json:"updated_at"`
}

// New creates a guest record with default patient attributes and an empty
// transcript.
func New(ctx context.Context, sessionID types.SessionID) *Guest {
	now := clock.Now(ctx)
	return &Guest{
		SessionID:       sessionID,
		PatientName:     DefaultPatientName,
		PatientAge:      0,
		PatientGender:   DefaultPatientGender,
		PatientLanguage: DefaultPatientLanguage,
		PatientPhone:    "",
		ChatHistory:     []Message{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// PatientInfo extracts the patient attributes of the record.
func (g *Guest) PatientInfo() PatientInfo {
	return PatientInfo{
		Name:     g.PatientName,
		Age:      g.PatientAge,
		Gender:   g.PatientGender,
		Language: g.PatientLanguage,
		Phone:    g.PatientPhone,
	}
}

// SetPatientInfo replaces the patient attributes, leaving the transcript and
// the session identity untouched.
func (g *Guest) SetPatientInfo(ctx context.Context, info PatientInfo) {
	g.PatientName = info.Name
	g.PatientAge = info.Age
	g.PatientGender = info.Gender
	g.PatientLanguage = info.Language
	g.PatientPhone = info.Phone
	g.UpdatedAt = clock.Now(ctx)
}

// Transcript returns the replayable transcript entries in chronological
// order.
func (g *Guest) Transcript() []Message {
	return SanitizeHistory(g.ChatHistory)
}
