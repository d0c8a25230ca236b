package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"matchmaker/internal/matching/tracer"
)

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	newCtx, span := tracer.NewNoop().Start(ctx, tracer.SpanEvaluate, tracer.String(tracer.AttrProfileID, "p"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int(tracer.AttrEligible, 3))
	span.AddEvent(tracer.EventFilterDivergence)
	span.End(errors.New("boom"))
}

func TestOTelTracerCarriesSpanInContext(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanFindCandidates,
		tracer.String(tracer.AttrProfileID, "p"),
		tracer.Bool(tracer.AttrMutualOnly, true),
		tracer.Int(tracer.AttrDealBreakers, 2),
	)
	require.NotNil(t, span)
	assert.NotNil(t, trace.SpanFromContext(ctx))
	assert.NotPanics(t, func() { span.End(errors.New("failed")) })
}
