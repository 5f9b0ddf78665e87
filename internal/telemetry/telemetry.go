// Package telemetry holds the OpenTelemetry instrumentation name and the
// attribute keys shared by the analysis services.
package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this module.
const InstrumentationName = "drift"

// Attribute keys for analysis spans.
const (
	AttrModelName   = attribute.Key("drift.model.name")
	AttrModelSize   = attribute.Key("drift.model.stories")
	AttrRecordName  = attribute.Key("drift.record.name")
	AttrRunID       = attribute.Key("drift.run.id")
	AttrSteps       = attribute.Key("drift.run.steps")
	AttrBatchSize   = attribute.Key("drift.batch.size")
	AttrParallelism = attribute.Key("drift.batch.parallelism")
)

// WithModel tags a span with the model identity.
func WithModel(name string, stories int) trace.SpanStartOption {
	return trace.WithAttributes(
		AttrModelName.String(name),
		AttrModelSize.Int(stories),
	)
}

// WithRecord tags a span with the excitation identity.
func WithRecord(name string) trace.SpanStartOption {
	return trace.WithAttributes(AttrRecordName.String(name))
}
