package metrics

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("op", "create"),
		attribute.String("product_id", "456"),
		attribute.String("change_type", "INCREASE"),
	)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	for _, attr := range attrs {
		if attr.Key == "product_id" {
			t.Fatal("expected product_id to be dropped")
		}
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.RecordProductWrite(t.Context(), "create")
	m.RecordStockMovement(t.Context(), "INITIAL")
	m.RecordHistoryQuery(t.Context())
	m.RecordAnalyticsRead(t.Context())
}
