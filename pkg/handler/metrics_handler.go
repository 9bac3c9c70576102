package handler

import (
	"context"
	"time"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/pkg/fault"
	"github.com/charmbracelet/log"
	"github.com/rcrowley/go-metrics"
)

// MetricsHandler decorates a FloatCalc with per-method metrics:
//
//	<prefix><method>.calls   counter
//	<prefix><method>.faults  counter, typed InvalidOperation / InvalidFloatOperation
//	<prefix><method>.errors  counter, anything else
//	<prefix><method>.latency timer
//
// Errors are returned untouched so the processor still sees the typed fault.
type MetricsHandler struct {
	next     arithmetic.FloatCalc
	Registry metrics.Registry
	Prefix   string
	logger   *log.Logger
}

var _ arithmetic.FloatCalc = (*MetricsHandler)(nil)

func NewMetricsHandler(next arithmetic.FloatCalc, registry metrics.Registry, logger *log.Logger) *MetricsHandler {
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &MetricsHandler{next: next, Registry: registry, Prefix: "calc.", logger: logger}
}

func (h *MetricsHandler) Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (int32, error) {
	start := time.Now()
	r, err := h.next.Calculate(ctx, oper, p1, p2)
	h.record("calculate", start, err)
	if err != nil {
		h.logger.Debug("calculate failed", "oper", oper, "p1", p1, "p2", p2, "err", err)
	}
	return r, err
}

func (h *MetricsHandler) FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (float64, error) {
	start := time.Now()
	r, err := h.next.FloatCalculate(ctx, oper, p1, p2)
	h.record("float_calculate", start, err)
	if err != nil {
		h.logger.Debug("float_calculate failed", "oper", oper, "p1", p1, "p2", p2, "err", err)
	}
	return r, err
}

func (h *MetricsHandler) record(method string, start time.Time, err error) {
	name := h.Prefix + method
	metrics.GetOrRegisterTimer(name+".latency", h.Registry).UpdateSince(start)
	metrics.GetOrRegisterCounter(name+".calls", h.Registry).Inc(1)

	switch {
	case err == nil:
	case fault.Is(err):
		metrics.GetOrRegisterCounter(name+".faults", h.Registry).Inc(1)
	default:
		metrics.GetOrRegisterCounter(name+".errors", h.Registry).Inc(1)
	}
}
