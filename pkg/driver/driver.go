package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/api/floatops"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
)

const (
	maxIntOperand = 100
	smallFloatExp = 8
	largeFloatExp = 50
)

type Config struct {
	// requests per run
	Iterations int
	// float operands go up to 2^50 once the iteration index passes this
	LargeAfter int
	// integer+float rounds per session
	Rounds int
}

// Acquirer lends a connected calculator for the length of one run.
// pool.ThriftPoolAgent implements it.
type Acquirer interface {
	Do(do func(client arithmetic.FloatCalc) error) error
}

// Driver sends randomized requests and prints one line per request to out.
type Driver struct {
	config Config
	out    io.Writer
	logger *log.Logger
	rand   *rand.Rand
}

func New(config Config, out io.Writer, logger *log.Logger, r *rand.Rand) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{config: config, out: out, logger: logger, rand: r}
}

// RunCalc issues config.Iterations calculate requests with operands in
// [1, 100]. Faults are printed and skipped; any other error ends the run.
func (d *Driver) RunCalc(ctx context.Context, client arithmetic.Calc) error {
	for idx := 0; idx < d.config.Iterations; idx++ {
		oper := arithmetic.OPS[d.rand.Intn(len(arithmetic.OPS))]
		p1 := int32(d.rand.Intn(maxIntOperand) + 1)
		p2 := int32(d.rand.Intn(maxIntOperand) + 1)

		ret, err := client.Calculate(ctx, oper, p1, p2)
		var fault *arithmetic.InvalidOperation
		switch {
		case err == nil:
			fmt.Fprintf(d.out, "%s(%d, %d) = %d\n", oper, p1, p2, ret)
		case errors.As(err, &fault):
			fmt.Fprintln(d.out, fault.Oper)
		default:
			return fmt.Errorf("calculate %s(%d, %d): %w", oper, p1, p2, err)
		}
	}
	return nil
}

// RunFloatCalc issues config.Iterations float_calculate requests with operands
// in [1, 2^8], widening to [1, 2^50] after config.LargeAfter iterations.
func (d *Driver) RunFloatCalc(ctx context.Context, client arithmetic.FloatCalc) error {
	for idx := 0; idx < d.config.Iterations; idx++ {
		oper := floatops.FLOAT_OPS[d.rand.Intn(len(floatops.FLOAT_OPS))]
		exp := smallFloatExp
		if idx > d.config.LargeAfter {
			exp = largeFloatExp
		}
		p1 := d.uniform(exp)
		p2 := d.uniform(exp)

		ret, err := client.FloatCalculate(ctx, oper, p1, p2)
		var fault *floatops.InvalidFloatOperation
		switch {
		case err == nil:
			fmt.Fprintf(d.out, "%s(%f, %f) = %f\n", oper, p1, p2, ret)
		case errors.As(err, &fault):
			fmt.Fprintln(d.out, fault.Oper)
		default:
			return fmt.Errorf("float_calculate %s(%f, %f): %w", oper, p1, p2, err)
		}
	}
	return nil
}

// uniform draws from [1, 2^exp].
func (d *Driver) uniform(exp int) float64 {
	return 1 + d.rand.Float64()*(math.Exp2(float64(exp))-1)
}

// RunSession runs config.Rounds rounds of an integer run followed by a float
// run, each on its own acquired connection. A failed run does not stop the
// session; all run errors come back together for the caller to report.
func (d *Driver) RunSession(ctx context.Context, acquirer Acquirer) error {
	var result *multierror.Error
	for round := 0; round < d.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}

		err := acquirer.Do(func(client arithmetic.FloatCalc) error {
			return d.RunCalc(ctx, client)
		})
		if err != nil {
			d.logger.Debug("calc run failed", "round", round, "err", err)
			result = multierror.Append(result, err)
		}

		err = acquirer.Do(func(client arithmetic.FloatCalc) error {
			return d.RunFloatCalc(ctx, client)
		})
		if err != nil {
			d.logger.Debug("float calc run failed", "round", round, "err", err)
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
