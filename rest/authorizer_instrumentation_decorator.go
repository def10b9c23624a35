package rest

import (
	"context"
	"net/http"

	"github.com/go-tradier/tradier-go/rest/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// authorizerInstrumentationDecorator wraps an Authorizer with an
// OpenTelemetry span around Authorize, exactly as the teacher's
// KrakenSpotRESTClientAuthorizerInstrumentationDecorator wraps
// KrakenSpotRESTClientAuthorizerIface.
type authorizerInstrumentationDecorator struct {
	decorated Authorizer
	tracer    trace.Tracer
}

// DecorateAuthorizer wraps decorated with a span around every Authorize
// call. A nil tracerProvider falls back to the global provider (a
// NoopTracerProvider if none was configured), matching the teacher's
// DecorateKrakenSpotRESTClientAuthorizer.
func DecorateAuthorizer(decorated Authorizer, tracerProvider trace.TracerProvider) Authorizer {
	if decorated == nil {
		panic("decorated authorizer must not be nil")
	}
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}
	return &authorizerInstrumentationDecorator{
		decorated: decorated,
		tracer:    tracerProvider.Tracer(tracing.PackageName, trace.WithInstrumentationVersion(tracing.PackageVersion)),
	}
}

func (dec *authorizerInstrumentationDecorator) Authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error) {
	ctx, span := dec.tracer.Start(ctx, "authorize", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.path", req.URL.Path)))
	defer span.End()
	out, err := dec.decorated.Authorize(ctx, req, auth)
	return out, tracing.HandleAndTraceError(span, err)
}
