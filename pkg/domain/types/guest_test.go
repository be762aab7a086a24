package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/domain/types"
)

func TestNewSessionID(t *testing.T) {
	a := types.NewSessionID()
	b := types.NewSessionID()

	gt.True(t, strings.HasPrefix(a.String(), "guest-"))
	gt.NotEqual(t, a, b)
	gt.NoError(t, a.Validate())
}

func TestSessionIDValidate(t *testing.T) {
	gt.Error(t, types.EmptySessionID.Validate())
	gt.Error(t, types.SessionID("   ").Validate())
	gt.NoError(t, types.SessionID("guest-abc").Validate())
}
