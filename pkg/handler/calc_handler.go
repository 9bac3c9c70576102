package handler

import (
	"context"
	"fmt"
	"math"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/api/floatops"
)

const (
	// calculate faults above this
	maxIntResult = math.MaxInt32
	// float_calculate faults at or above 2^63: every float64 that is not below
	// 2^63 is greater than 2^63-1
	maxFloatResult = float64(1 << 63)
	// powMagnitudeCap keeps intermediate powers in int64 while still telling
	// apart |x| == 2^31 from |x| > 2^31
	powMagnitudeCap = int64(1)<<31 + 1
)

// CalcHandler implements both arithmetic.Calc and arithmetic.FloatCalc.
// It holds no state, one value can serve every connection.
type CalcHandler struct {
}

var _ arithmetic.FloatCalc = (*CalcHandler)(nil)

func (handler *CalcHandler) Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (r int32, err error) {
	a, b := int64(p1), int64(p2)

	var ret int64
	switch oper {
	case "+":
		ret = a + b
	case "-":
		ret = a - b
	case "*":
		ret = a * b
	case "^":
		switch {
		case b >= 0:
			ret = pow(a, b)
		case a == 1:
			ret = 1
		case a == -1:
			ret = 1 - 2*(-b%2)
		default:
			// not an integer
			return 0, &arithmetic.InvalidOperation{Oper: fmt.Sprintf("%s(%d,%d) negative exponent", oper, p1, p2)}
		}
	default:
		return 0, &arithmetic.InvalidOperation{Oper: oper}
	}

	if ret > maxIntResult {
		return 0, &arithmetic.InvalidOperation{Oper: fmt.Sprintf("%s(%d,%d) overflows", oper, p1, p2)}
	}
	// only the upper bound is a fault; a result below the int32 range cannot be
	// sent back and surfaces as an internal error
	if ret < math.MinInt32 {
		return 0, fmt.Errorf("%s(%d,%d) is below the int32 range", oper, p1, p2)
	}
	return int32(ret), nil
}

func (handler *CalcHandler) FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (r float64, err error) {
	var ret float64
	switch oper {
	case "+":
		ret = p1 + p2
	case "-":
		ret = p1 - p2
	case "*":
		ret = p1 * p2
	default:
		return 0, &floatops.InvalidFloatOperation{Oper: oper}
	}

	if ret >= maxFloatResult {
		return 0, &floatops.InvalidFloatOperation{Oper: fmt.Sprintf("%s(%g,%g) overflows", oper, p1, p2)}
	}
	return ret, nil
}

// pow computes a**b for b >= 0 by squaring. Magnitudes are clamped to
// powMagnitudeCap, which is enough for the range checks in Calculate.
func pow(a, b int64) int64 {
	negative := a < 0 && b%2 == 1
	base := a
	if base < 0 {
		base = -base
	}

	result := int64(1)
	for b > 0 {
		if b&1 == 1 {
			result = clampMagnitude(result * base)
		}
		b >>= 1
		if b > 0 {
			base = clampMagnitude(base * base)
		}
	}

	if negative {
		return -result
	}
	return result
}

func clampMagnitude(v int64) int64 {
	if v > powMagnitudeCap {
		return powMagnitudeCap
	}
	return v
}
