// Package service exposes the matching engine over stored profiles: authoring
// ideal types, evaluating one candidate, checking mutual compatibility and
// searching for candidates with compiled filters.
package service

import (
	"context"
	"log/slog"
	"time"

	"matchmaker/internal/matching/compiler"
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/events"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/metrics"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/mutual"
	"matchmaker/internal/matching/tracer"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/requestcontext"
)

// ProfileStore persists member profiles.
// Error Contract: FindByID returns sentinel.ErrNotFound when the profile doesn't exist.
type ProfileStore interface {
	Save(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error)
	// FindMatching returns up to limit profiles satisfying f, excluding one
	// profile, ordered by most recently updated. A non-nil after starts the
	// page strictly past that position.
	FindMatching(ctx context.Context, f filter.Filter, exclude id.ProfileID, after *models.Cursor, limit int) ([]*models.Profile, error)
}

// IdealTypeStore persists ideal types.
// Error Contract: FindByProfileID returns sentinel.ErrNotFound when none was authored.
type IdealTypeStore interface {
	Save(ctx context.Context, idealType *models.IdealType) error
	FindByProfileID(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error)
	// FindByProfileIDs omits profiles without an ideal type from the result.
	FindByProfileIDs(ctx context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error)
}

// EventPublisher emits audit events for ideal type writes.
type EventPublisher interface {
	PublishIdealTypeChanged(ctx context.Context, event events.IdealTypeChanged) error
}

const (
	defaultMaxDealBreakers = 5
	defaultCandidateLimit  = 50
	maxCandidateLimit      = 500
)

// Service coordinates stores with the engine packages.
type Service struct {
	profiles   ProfileStore
	idealTypes IdealTypeStore
	publisher  EventPublisher
	metrics    *metrics.Metrics
	tracer     tracer.Tracer
	logger     *slog.Logger
	now        func() time.Time

	maxDealBreakers int
	candidateLimit  int

	evaluator *evaluator.Evaluator
	compiler  *compiler.Compiler
	mutual    *mutual.Coordinator
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithClock sets the reference clock used for age conditions and timestamps.
// The evaluator and the compiler share it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMaxDealBreakers caps how many deal-breakers an ideal type may declare.
// Non-positive values keep the default of 5.
func WithMaxDealBreakers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxDealBreakers = n
		}
	}
}

// WithCandidateLimit sets the default page size of FindCandidates.
func WithCandidateLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.candidateLimit = min(n, maxCandidateLimit)
		}
	}
}

// New builds the service. Both stores are required.
func New(profiles ProfileStore, idealTypes IdealTypeStore, opts ...Option) *Service {
	if profiles == nil {
		panic("service: profile store is required")
	}
	if idealTypes == nil {
		panic("service: ideal type store is required")
	}
	s := &Service{
		profiles:        profiles,
		idealTypes:      idealTypes,
		now:             time.Now,
		maxDealBreakers: defaultMaxDealBreakers,
		candidateLimit:  defaultCandidateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	s.evaluator = evaluator.New(evaluator.WithClock(s.now))
	s.compiler = compiler.New(compiler.WithClock(s.now))
	s.mutual = mutual.New(s.evaluator)
	return s
}

// stamp is the write timestamp: the request's pinned instant when there is
// one, else the service clock.
func (s *Service) stamp(ctx context.Context) time.Time {
	if t, ok := requestcontext.Time(ctx); ok {
		return t.UTC()
	}
	return s.now().UTC()
}

// MaxDealBreakers reports the configured authoring cap.
func (s *Service) MaxDealBreakers() int { return s.maxDealBreakers }
