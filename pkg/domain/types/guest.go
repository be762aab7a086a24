package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionID identifies a guest conversation. IDs are generated with a
// "guest-" prefix so they are recognizable in store dashboards and logs.
type SessionID string

const EmptySessionID SessionID = ""

const sessionIDPrefix = "guest-"

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(sessionIDPrefix + uuid.New().String())
}

func (x SessionID) String() string {
	return string(x)
}

func (x SessionID) Validate() error {
	if x == EmptySessionID {
		return goerr.New("empty session ID")
	}
	if strings.TrimSpace(string(x)) == "" {
		return goerr.New("blank session ID")
	}
	return nil
}
