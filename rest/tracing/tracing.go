// Package tracing carries the instrumentation identity and small helpers
// shared by rest, streaming, and validate, grounded on the teacher's
// spot/rest/tracing and spot/websocket/tracing packages.
package tracing

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// PackageName is used as the instrumentation ID for every tracer this
	// module creates.
	PackageName = "tradier_go"
	// PackageVersion is the instrumentation version reported alongside spans.
	PackageVersion = "0.0.0"
	// TracesNamespace prefixes span events emitted by this module.
	TracesNamespace = "tradier.client"
)

// HandleAndTraceError records err on span (if non-nil), sets the span
// status accordingly, and returns err unchanged so call sites can wrap this
// helper around a return statement instead of repeating the record/status
// boilerplate at every call site.
func HandleAndTraceError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, codes.Error.String())
	} else {
		span.SetStatus(codes.Ok, codes.Ok.String())
	}
	return err
}
