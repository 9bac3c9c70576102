package driver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/api/floatops"
	"github.com/XuKyle/thrift-calc/pkg/client"
	"github.com/XuKyle/thrift-calc/pkg/config"
	"github.com/XuKyle/thrift-calc/pkg/handler"
	"github.com/XuKyle/thrift-calc/pkg/pool"
	"github.com/XuKyle/thrift-calc/pkg/server"
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bct     = context.Background()
	discard = log.New(io.Discard)
)

type call struct {
	oper   string
	p1, p2 float64
}

// scriptedCalc answers with the real handler, except that calls listed in
// failAt (0-based) return a transport error.
type scriptedCalc struct {
	handler.CalcHandler
	calls  []call
	failAt map[int]error
}

func (c *scriptedCalc) Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (int32, error) {
	c.calls = append(c.calls, call{oper, float64(p1), float64(p2)})
	if err := c.failAt[len(c.calls)-1]; err != nil {
		return 0, err
	}
	return c.CalcHandler.Calculate(ctx, oper, p1, p2)
}

func (c *scriptedCalc) FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (float64, error) {
	c.calls = append(c.calls, call{oper, p1, p2})
	if err := c.failAt[len(c.calls)-1]; err != nil {
		return 0, err
	}
	return c.CalcHandler.FloatCalculate(ctx, oper, p1, p2)
}

type faultingCalc struct{}

func (faultingCalc) Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (int32, error) {
	return 0, &arithmetic.InvalidOperation{Oper: "no " + oper}
}

func (faultingCalc) FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (float64, error) {
	return 0, &floatops.InvalidFloatOperation{Oper: "no " + oper}
}

type fakeAcquirer struct {
	client arithmetic.FloatCalc
	err    error
	calls  int
}

func (a *fakeAcquirer) Do(do func(client arithmetic.FloatCalc) error) error {
	a.calls++
	if a.err != nil {
		return a.err
	}
	return do(a.client)
}

func newDriver(config Config, out io.Writer) *Driver {
	return New(config, out, discard, rand.New(rand.NewSource(7)))
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRunCalcOperands(t *testing.T) {
	var out bytes.Buffer
	c := &scriptedCalc{}
	d := newDriver(Config{Iterations: 200}, &out)

	require.NoError(t, d.RunCalc(bct, c))
	require.Len(t, c.calls, 200)
	assert.Len(t, lines(&out), 200)

	seen := map[string]bool{}
	for _, call := range c.calls {
		assert.Contains(t, arithmetic.OPS, call.oper)
		assert.True(t, call.p1 >= 1 && call.p1 <= 100, "p1 %v", call.p1)
		assert.True(t, call.p2 >= 1 && call.p2 <= 100, "p2 %v", call.p2)
		seen[call.oper] = true
	}
	assert.Len(t, seen, len(arithmetic.OPS))
}

func TestRunCalcOutput(t *testing.T) {
	var out bytes.Buffer
	c := &scriptedCalc{}
	d := newDriver(Config{Iterations: 50}, &out)

	require.NoError(t, d.RunCalc(bct, c))
	for i, line := range lines(&out) {
		call := c.calls[i]
		if strings.HasSuffix(line, "overflows") {
			assert.Equal(t, "^", call.oper)
			continue
		}
		assert.True(t, strings.HasPrefix(line, call.oper+"("), line)
		assert.Contains(t, line, " = ")
	}
}

func TestRunCalcFaultsContinue(t *testing.T) {
	var out bytes.Buffer
	d := newDriver(Config{Iterations: 5}, &out)

	require.NoError(t, d.RunCalc(bct, faultingCalc{}))
	got := lines(&out)
	require.Len(t, got, 5)
	for _, line := range got {
		assert.True(t, strings.HasPrefix(line, "no "), line)
	}
}

func TestRunCalcTransportErrorStops(t *testing.T) {
	var out bytes.Buffer
	broken := thrift.NewTTransportException(thrift.NOT_OPEN, "connection reset")
	c := &scriptedCalc{failAt: map[int]error{2: broken}}
	d := newDriver(Config{Iterations: 10}, &out)

	err := d.RunCalc(bct, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, broken))
	assert.Contains(t, err.Error(), "calculate ")
	assert.Len(t, c.calls, 3)
	assert.Len(t, lines(&out), 2)
}

func TestRunFloatCalcOperands(t *testing.T) {
	var out bytes.Buffer
	c := &scriptedCalc{}
	d := newDriver(Config{Iterations: 100, LargeAfter: 3}, &out)

	require.NoError(t, d.RunFloatCalc(bct, c))
	require.Len(t, c.calls, 100)
	assert.Len(t, lines(&out), 100)

	large := false
	for idx, call := range c.calls {
		assert.Contains(t, floatops.FLOAT_OPS, call.oper)
		limit := float64(1 << 8)
		if idx > 3 {
			limit = float64(1 << 50)
			large = large || call.p1 > 1<<8
		}
		for _, p := range []float64{call.p1, call.p2} {
			assert.True(t, p >= 1 && p <= limit, "iteration %d operand %v", idx, p)
		}
	}
	assert.True(t, large, "operands never widened")
}

func TestRunFloatCalcFaultsAndErrors(t *testing.T) {
	var out bytes.Buffer
	d := newDriver(Config{Iterations: 4}, &out)
	require.NoError(t, d.RunFloatCalc(bct, faultingCalc{}))
	assert.Len(t, lines(&out), 4)

	out.Reset()
	appErr := thrift.NewTApplicationException(thrift.UNKNOWN_METHOD, "Unknown function float_calculate")
	c := &scriptedCalc{failAt: map[int]error{0: appErr}}
	err := d.RunFloatCalc(bct, c)
	assert.True(t, errors.Is(err, appErr))
	assert.Empty(t, lines(&out))
}

func TestRunSession(t *testing.T) {
	var out bytes.Buffer
	a := &fakeAcquirer{client: &scriptedCalc{}}
	d := newDriver(Config{Iterations: 3, Rounds: 4}, &out)

	require.NoError(t, d.RunSession(bct, a))
	assert.Equal(t, 8, a.calls)
	assert.Len(t, lines(&out), 24)
}

func TestRunSessionCollectsErrors(t *testing.T) {
	var out bytes.Buffer
	a := &fakeAcquirer{err: pool.ErrOverMax}
	d := newDriver(Config{Iterations: 3, Rounds: 2}, &out)

	err := d.RunSession(bct, a)
	require.Error(t, err)
	assert.Equal(t, 4, a.calls)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Empty(t, lines(&out))
}

func TestRunSessionLeavesReportingToCaller(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})
	a := &fakeAcquirer{err: pool.ErrOverMax}
	d := New(Config{Iterations: 3, Rounds: 2}, io.Discard, logger, rand.New(rand.NewSource(7)))

	require.Error(t, d.RunSession(bct, a))
	assert.Empty(t, logs.String())
}

func TestRunSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(bct)
	cancel()

	a := &fakeAcquirer{client: &scriptedCalc{}}
	err := newDriver(Config{Iterations: 3, Rounds: 2}, io.Discard).RunSession(ctx, a)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, []error{context.Canceled}, merr.Errors)
	assert.Zero(t, a.calls)
}

func TestSessionAgainstServer(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())

	s, err := server.NewFloatCalc("127.0.0.1:0", &handler.CalcHandler{}, cfg, server.WithLogger(discard))
	require.NoError(t, err)
	require.NoError(t, s.Listen())
	done := make(chan error, 1)
	go func() { done <- s.Serve() }()

	dialer := client.NewDialer(cfg, discard)
	p := dialer.NewPool(&pool.ThriftPoolConfig{
		Addr:        s.Addr().String(),
		MaxConn:     1,
		ConnTimeout: time.Second,
		Timeout:     time.Second,
	})
	agent := pool.NewThriftPoolAgent()
	agent.SetLogger(discard)
	agent.Init(p)

	var out bytes.Buffer
	d := newDriver(Config{Iterations: 10, LargeAfter: 3, Rounds: 5}, &out)
	require.NoError(t, d.RunSession(bct, agent))
	assert.Len(t, lines(&out), 100)
	assert.Equal(t, int32(1), agent.GetConnCount())

	agent.Release()
	require.NoError(t, s.Stop())
	require.NoError(t, <-done)
}

func TestSessionServerDown(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())

	dialer := client.NewDialer(cfg, discard)
	p := dialer.NewPool(&pool.ThriftPoolConfig{
		Addr:        "127.0.0.1:1",
		MaxConn:     1,
		ConnTimeout: 200 * time.Millisecond,
		Timeout:     200 * time.Millisecond,
	})
	defer p.Release()
	agent := pool.NewThriftPoolAgent()
	agent.SetLogger(discard)
	agent.Init(p)

	var out bytes.Buffer
	d := newDriver(Config{Iterations: 10, Rounds: 2}, &out)
	err := d.RunSession(bct, agent)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Empty(t, lines(&out))
}
