package api

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "drift",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "gRPC requests by full method and status code.",
	}, []string{"method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "drift",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request latency by full method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// MetricsUnaryInterceptor records a counter and a latency histogram for
// every unary request. Exposed on the HTTP /metrics endpoint.
func MetricsUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		requestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		requestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}
