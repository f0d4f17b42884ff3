package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	olog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"opencsg.com/report-notifier/common/config"
)

const ServiceName = "report-notifier"

// collectorTarget splits an otlp endpoint url into the grpc host and whether tls is off.
func collectorTarget(s string) (host string, insecure bool, err error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", true, err
	}
	if u.Host == "" {
		return "", true, errors.New("otlp endpoint has no host: " + s)
	}
	return u.Host, u.Scheme != "https", nil
}

// SetupOTelSDK installs the global tracer, meter and (optionally) logger providers.
// It is a no-op when no collector endpoint is configured. The returned func flushes and stops them.
func SetupOTelSDK(ctx context.Context, config *config.Config, serviceName string) (func(context.Context) error, error) {
	if config.Instrumentation.OTLPEndpoint == "" {
		return func(ctx context.Context) error {
			return nil
		}, nil
	}
	endpoint, insecure, err := collectorTarget(config.Instrumentation.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}
	fail := func(inErr error) (func(context.Context) error, error) {
		return nil, errors.Join(inErr, shutdown(ctx))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx,
		resource.WithProcess(),
		resource.WithHost(),
		resource.WithContainer(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("service.instance.id", config.InstanceID),
		),
	)
	if err != nil {
		return nil, err
	}

	traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if insecure {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
	}
	traceExporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(traceOpts...))
	if err != nil {
		return nil, err
	}
	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(endpoint)}
	if insecure {
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
	}
	metricExporter, err := otlpmetricgrpc.New(ctx, metricOpts...)
	if err != nil {
		return fail(err)
	}
	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter)),
		metric.WithResource(res),
	)
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	if config.Instrumentation.OTLPLogging {
		logOpts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(endpoint)}
		if insecure {
			logOpts = append(logOpts, otlploggrpc.WithInsecure())
		}
		logExporter, err := otlploggrpc.New(ctx, logOpts...)
		if err != nil {
			return fail(err)
		}
		loggerProvider := olog.NewLoggerProvider(
			olog.WithProcessor(olog.NewBatchProcessor(logExporter)),
			olog.WithResource(res),
		)
		shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
		global.SetLoggerProvider(loggerProvider)

		slog.SetDefault(slog.New(slogmulti.Fanout(
			slog.Default().Handler(),
			otelslog.NewHandler(serviceName),
		)))
	}

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(10 * time.Second)); err != nil {
		return fail(err)
	}
	return shutdown, nil
}

// SetupOtelMiddleware sets up the otelgin middleware for the gin engine.
func SetupOtelMiddleware(r *gin.Engine, config *config.Config, serviceName string) {
	if config.Instrumentation.OTLPEndpoint != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
}
