package orchestration

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/4310V343k/labs-project-stuffs/internal/bignum"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/format"
	"github.com/4310V343k/labs-project-stuffs/internal/logging"
)

// Request describes a single operation to execute. Operand texts are
// unsigned decimal strings, already stripped of surrounding whitespace.
type Request struct {
	// Op is the operation to perform.
	Op Operation
	// A is the first operand.
	A string
	// B is the second operand, required when Op.NeedsB().
	B string
	// Exponent applies to OpPow only.
	Exponent int
}

// Timings breaks an execution down by phase. Phases that did not run or
// were served from the operand cache are distinguished by the *Millis
// accessors using the format package sentinels.
type Timings struct {
	ParseA       time.Duration
	ParseACached bool
	ParseB       time.Duration
	ParseBCached bool
	ParseBRan    bool
	Compute      time.Duration
	Render       time.Duration
	RenderRan    bool
	Total        time.Duration
}

// ParseAMillis returns the parse time of operand A in milliseconds, or the
// cached sentinel.
func (t Timings) ParseAMillis() int64 {
	if t.ParseACached {
		return format.PhaseCached
	}
	return t.ParseA.Milliseconds()
}

// ParseBMillis returns the parse time of operand B in milliseconds, or a
// sentinel when B was cached or not used.
func (t Timings) ParseBMillis() int64 {
	if !t.ParseBRan {
		return format.PhaseNotRun
	}
	if t.ParseBCached {
		return format.PhaseCached
	}
	return t.ParseB.Milliseconds()
}

// ComputeMillis returns the computation time in milliseconds.
func (t Timings) ComputeMillis() int64 {
	return t.Compute.Milliseconds()
}

// RenderMillis returns the decimal rendering time in milliseconds, or the
// not-run sentinel for operations without a numeric result.
func (t Timings) RenderMillis() int64 {
	if !t.RenderRan {
		return format.PhaseNotRun
	}
	return t.Render.Milliseconds()
}

// Result is the outcome of a single operation.
type Result struct {
	// Op echoes the executed operation.
	Op Operation
	// Value is the rendered principal result: the sum, difference,
	// product, quotient, power or root. For OpPrime it echoes the operand;
	// for OpCmp it is the comparison value as text.
	Value string
	// Remainder is set for OpDiv only.
	Remainder string
	// Digits counts the decimal digits of Value.
	Digits int
	// RemainderDigits counts the decimal digits of Remainder.
	RemainderDigits int
	// Prime is valid for OpPrime.
	Prime bool
	// Cmp is valid for OpCmp: -1, 0 or +1.
	Cmp int
	// NinesOK reports the casting-out-nines check for OpAdd; nil for
	// every other operation.
	NinesOK *bool
	// Timings holds the per-phase durations.
	Timings Timings
	// Err is non-nil when the operation failed.
	Err error
}

// Orchestrator executes operations with operand caching, tracing, metrics,
// and structured logging.
type Orchestrator struct {
	logger  logging.Logger
	metrics MetricsRecorder
	cache   *OperandCache
	tracer  trace.Tracer
}

// New creates an Orchestrator. A nil metrics recorder is replaced by
// NullMetrics, a nil logger by the default stderr logger.
func New(logger logging.Logger, metrics MetricsRecorder) *Orchestrator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if metrics == nil {
		metrics = NullMetrics{}
	}
	return &Orchestrator{
		logger:  logger,
		metrics: metrics,
		cache:   NewOperandCache(),
		tracer:  otel.Tracer("bigcalc/orchestration"),
	}
}

// Execute runs a single operation, honoring ctx cancellation. The heavy
// phases run in a worker goroutine; when ctx is canceled the in-flight
// computation is abandoned and its eventual result discarded.
func (o *Orchestrator) Execute(ctx context.Context, req Request) Result {
	ctx, span := o.tracer.Start(ctx, "operation",
		trace.WithAttributes(attribute.String("op", string(req.Op))))
	defer span.End()

	o.metrics.IncrementActiveOperations()
	defer o.metrics.DecrementActiveOperations()

	start := time.Now()
	outCh := make(chan Result, 1)
	go func() {
		outCh <- o.run(ctx, req, span)
	}()

	var res Result
	select {
	case <-ctx.Done():
		res = Result{Op: req.Op, Err: ctx.Err()}
	case res = <-outCh:
	}
	res.Timings.Total = time.Since(start)

	status := "success"
	switch {
	case apperrors.IsContextError(res.Err):
		status = "canceled"
	case res.Err != nil:
		status = "error"
	}
	o.metrics.ObserveOperation(string(req.Op), status, res.Timings.Total)

	if res.Err != nil {
		span.RecordError(res.Err)
		o.logger.Error("operation failed", res.Err, logging.String("op", string(req.Op)))
	} else {
		o.logger.Debug("operation complete",
			logging.String("op", string(req.Op)),
			logging.Int("digits", res.Digits),
			logging.Float64("seconds", res.Timings.Total.Seconds()))
	}
	return res
}

// run performs parse, compute, and render sequentially. It is executed on a
// worker goroutine so the caller can abandon it on cancellation.
func (o *Orchestrator) run(ctx context.Context, req Request, span trace.Span) Result {
	res := Result{Op: req.Op}

	var (
		a, b             bignum.Int
		aCached, bCached bool
		aDur, bDur       time.Duration
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		var err error
		a, aCached, err = o.parseOperand("A", req.A)
		aDur = time.Since(start)
		return err
	})
	if req.Op.NeedsB() {
		res.Timings.ParseBRan = true
		g.Go(func() error {
			start := time.Now()
			var err error
			b, bCached, err = o.parseOperand("B", req.B)
			bDur = time.Since(start)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		res.Err = err
		return res
	}
	res.Timings.ParseA, res.Timings.ParseACached = aDur, aCached
	res.Timings.ParseB, res.Timings.ParseBCached = bDur, bCached
	span.AddEvent("operands parsed")

	computeStart := time.Now()
	var (
		value, rem  bignum.Int
		renderValue = true
		renderRem   bool
	)
	switch req.Op {
	case OpAdd:
		value = bignum.Add(a, b)
		ok := bignum.VerifyAdd(a, b, value)
		res.NinesOK = &ok
	case OpSub:
		v, err := bignum.Sub(a, b)
		if err != nil {
			res.Err = apperrors.OperationError{Op: string(req.Op), Cause: err}
			return res
		}
		value = v
	case OpMul:
		value = bignum.Mul(a, b)
	case OpDiv:
		q, r, err := bignum.DivMod(a, b)
		if err != nil {
			res.Err = apperrors.OperationError{Op: string(req.Op), Cause: err}
			return res
		}
		value, rem, renderRem = q, r, true
	case OpPow:
		v, err := bignum.Pow(a, req.Exponent)
		if err != nil {
			res.Err = apperrors.OperationError{Op: string(req.Op), Cause: err}
			return res
		}
		value = v
	case OpSqrt:
		value = bignum.Sqrt(a)
	case OpPrime:
		res.Prime = bignum.IsPrime(a)
		res.Value = req.A
		res.Digits = len(req.A)
		renderValue = false
	case OpCmp:
		res.Cmp = a.Cmp(b)
		res.Value = strconv.Itoa(res.Cmp)
		renderValue = false
	default:
		res.Err = apperrors.ValidationError{Field: "operation", Message: "unknown operation " + string(req.Op)}
		return res
	}
	res.Timings.Compute = time.Since(computeStart)
	span.AddEvent("computed")

	if renderValue {
		res.Timings.RenderRan = true
		renderStart := time.Now()
		res.Value = value.String()
		if renderRem {
			res.Remainder = rem.String()
			res.RemainderDigits = len(res.Remainder)
		}
		res.Timings.Render = time.Since(renderStart)
		res.Digits = len(res.Value)
		span.AddEvent("rendered")
	}

	return res
}

// parseOperand resolves an operand through the cache, validating and
// parsing on a miss.
func (o *Orchestrator) parseOperand(field, text string) (bignum.Int, bool, error) {
	if text == "" {
		return bignum.Int{}, false, apperrors.ValidationError{Field: field, Message: "empty operand"}
	}
	if v, ok := o.cache.Get(text); ok {
		return v, true, nil
	}
	if !bignum.IsValidDecimal(text) {
		return bignum.Int{}, false, apperrors.ValidationError{Field: field, Message: "operand must contain only decimal digits"}
	}
	v := bignum.FromDecimal(text)
	o.cache.Put(text, v)
	return v, false, nil
}
