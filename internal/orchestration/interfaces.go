package orchestration

import "time"

// MetricsRecorder receives operation lifecycle events. This interface
// decouples the orchestration layer from the metrics backend; the HTTP
// server's Prometheus bundle implements it, and NullMetrics serves when no
// endpoint is configured.
type MetricsRecorder interface {
	// IncrementActiveOperations marks an operation as started.
	IncrementActiveOperations()
	// DecrementActiveOperations marks an operation as finished.
	DecrementActiveOperations()
	// ObserveOperation records a completed operation with its outcome
	// ("success", "error" or "canceled") and wall-clock duration.
	ObserveOperation(op, status string, d time.Duration)
}

// NullMetrics is a no-op MetricsRecorder.
type NullMetrics struct{}

func (NullMetrics) IncrementActiveOperations()                    {}
func (NullMetrics) DecrementActiveOperations()                    {}
func (NullMetrics) ObserveOperation(_, _ string, _ time.Duration) {}
