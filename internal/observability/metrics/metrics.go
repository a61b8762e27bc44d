package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	productWrites  metric.Int64Counter
	stockMovements metric.Int64Counter
	historyQueries metric.Int64Counter
	analyticsReads metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "stocklight"
	}
	meter := provider.Meter(name)

	productWrites, err := meter.Int64Counter("stocklight_product_writes_total")
	if err != nil {
		return nil, err
	}
	stockMovements, err := meter.Int64Counter("stocklight_stock_movements_total")
	if err != nil {
		return nil, err
	}
	historyQueries, err := meter.Int64Counter("stocklight_history_queries_total")
	if err != nil {
		return nil, err
	}
	analyticsReads, err := meter.Int64Counter("stocklight_analytics_reads_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		productWrites:  productWrites,
		stockMovements: stockMovements,
		historyQueries: historyQueries,
		analyticsReads: analyticsReads,
	}, nil
}

// RecordProductWrite increments product mutation counts.
func (m *Metrics) RecordProductWrite(ctx context.Context, op string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("op", strings.TrimSpace(op)))
	m.productWrites.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordStockMovement increments ledger append counts per change type.
func (m *Metrics) RecordStockMovement(ctx context.Context, changeType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("change_type", strings.TrimSpace(changeType)))
	m.stockMovements.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordHistoryQuery increments stock-history read counts.
func (m *Metrics) RecordHistoryQuery(ctx context.Context) {
	if m == nil {
		return
	}
	m.historyQueries.Add(ctx, 1)
}

// RecordAnalyticsRead increments analytics summary read counts.
func (m *Metrics) RecordAnalyticsRead(ctx context.Context) {
	if m == nil {
		return
	}
	m.analyticsReads.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"op":          {},
	"change_type": {},
	"endpoint":    {},
	"status_code": {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
