package memory

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/harsh2b/WellMate/pkg/domain/interfaces"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
)

// Memory is an in-memory session store with the same semantics as the
// Firestore adapter. It backs tests and local development without store
// credentials; records do not survive a process restart.
type Memory struct {
	mu     sync.RWMutex
	guests map[types.SessionID]*guest.Guest
	eb     *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		guests: make(map[types.SessionID]*guest.Guest),
		eb:     goerr.NewBuilder(goerr.TV(errs.RepositoryKey, "memory")),
	}
}

func (r *Memory) Close() error {
	return nil
}
