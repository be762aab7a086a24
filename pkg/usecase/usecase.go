package usecase

import (
	"github.com/harsh2b/WellMate/pkg/domain/interfaces"
)

// UseCases implements the session/transcript manager. The store handle and
// the generation gateway are constructed once at process start and injected
// here; there is no package-level client state.
type UseCases struct {
	repository interfaces.Repository
	gateway    interfaces.ResponseGateway
}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

func WithResponseGateway(gateway interfaces.ResponseGateway) Option {
	return func(u *UseCases) {
		u.gateway = gateway
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
