// Package tracer is the span abstraction the matching service emits through.
// It keeps OpenTelemetry out of the service signatures.
//
// Implementations:
//   - NoopTracer for tests and when tracing is off
//   - OTelTracer backed by the global OpenTelemetry provider
package tracer

import "context"

// Span is an active trace span.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	// End must be called exactly once.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span. The returned context carries it to child operations.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanFindCandidates,
	//       tracer.String(tracer.AttrProfileID, owner.String()),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute    { return Attribute{Key: key, Value: value} }
func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }
func Int(key string, value int) Attribute   { return Attribute{Key: key, Value: value} }

// Span names.
const (
	SpanFindCandidates = "matching.find_candidates"
	SpanCheckMutual    = "matching.check_mutual"
	SpanEvaluate       = "matching.evaluate"
	SpanSaveIdealType  = "matching.save_ideal_type"
)

// Attribute keys.
const (
	AttrProfileID     = "profile.id"
	AttrCandidateID   = "candidate.id"
	AttrDealBreakers  = "deal_breakers.count"
	AttrActiveClauses = "filter.active_clauses"
	AttrRowsFetched   = "store.rows_fetched"
	AttrPagesFetched  = "store.pages_fetched"
	AttrEligible      = "candidates.eligible"
	AttrMutualOnly    = "mutual_only"
	AttrPass          = "pass"
)

// Event names.
const (
	EventFilterDivergence = "filter.divergence"
)
