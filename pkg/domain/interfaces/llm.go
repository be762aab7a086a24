package interfaces

import (
	"context"

	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
)

// ResponseGateway is the contract with the external generation service. The
// call blocks for the whole generation; no partial or streaming result is
// exposed here.
type ResponseGateway interface {
	Generate(ctx context.Context, systemPrompt string, history []guest.Message, userMessage string) (string, error)
}
