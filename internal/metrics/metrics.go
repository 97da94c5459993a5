package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tool server metrics
var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "velm_native_tool_calls_total",
			Help: "Total tool calls",
		},
		[]string{"tool", "status"},
	)

	ToolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "velm_native_tool_duration_seconds",
			Help:    "Time to serve a tool call",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"tool"},
	)
)

// Core engine metrics
var (
	FilesScannedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "velm_native_files_scanned_total",
			Help: "Total file records produced by directory scans",
		},
	)

	BytesDigestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "velm_native_bytes_digested_total",
			Help: "Total file bytes hashed",
		},
		[]string{"algorithm"},
	)

	CapturesReturnedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "velm_native_captures_returned_total",
			Help: "Total query captures returned",
		},
		[]string{"language"},
	)
)

func init() {
	prometheus.MustRegister(
		ToolCallsTotal,
		ToolDuration,
		FilesScannedTotal,
		BytesDigestedTotal,
		CapturesReturnedTotal,
	)
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveTool records one tool call. Call it with the start time once the
// handler has produced its result.
func ObserveTool(tool string, start time.Time, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
	ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}

// StartMetricsServer starts a standalone HTTP server serving /metrics on the given address.
func StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("metrics.serve", "addr", addr, "err", err)
		}
	}()
	return srv
}
