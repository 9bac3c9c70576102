// Package fault classifies errors coming out of the calculator service.
package fault

import (
	"errors"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/api/floatops"
)

// Is reports whether err carries one of the service's typed faults:
// *arithmetic.InvalidOperation or *floatops.InvalidFloatOperation.
// Faults end a single request, never a connection.
func Is(err error) bool {
	var intFault *arithmetic.InvalidOperation
	var floatFault *floatops.InvalidFloatOperation
	return errors.As(err, &intFault) || errors.As(err, &floatFault)
}

// Oper returns the diagnostic carried by a fault, or "" when err is not one.
func Oper(err error) string {
	var intFault *arithmetic.InvalidOperation
	if errors.As(err, &intFault) {
		return intFault.Oper
	}
	var floatFault *floatops.InvalidFloatOperation
	if errors.As(err, &floatFault) {
		return floatFault.Oper
	}
	return ""
}
