package coauthors

import (
	"errors"

	"go.uber.org/zap"
)

// Bases are the route bases the endpoint families are served under.
type Bases struct {
	Parent string
	Terms  string
	Posts  string
	Users  string
}

// Service implements the author-terms, author-posts and author-users endpoint logic. Every call is
// a single synchronous pass over the collaborator stores; the service keeps no state between calls.
type Service struct {
	resolver  *Resolver
	presenter *Presenter
	hooks     *Hooks
	bases     Bases
	log       *zap.Logger
}

// NewService wires the endpoint logic. hooks may be nil.
func NewService(resolver *Resolver, presenter *Presenter, hooks *Hooks, bases Bases, log *zap.Logger) *Service {
	if hooks == nil {
		hooks = &Hooks{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{resolver: resolver, presenter: presenter, hooks: hooks, bases: bases, log: log}
}

// Bases returns the route bases the service links to.
func (s *Service) Bases() Bases { return s.bases }

// fail maps a collaborator error to a request error: not-found becomes nf, anything else a
// store failure.
func (s *Service) fail(err error, nf *Error) error {
	if errors.Is(err, ErrRecordNotFound) {
		return nf
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	s.log.Error("co-author store call failed", zap.Error(err))
	return StoreFailure(err)
}
