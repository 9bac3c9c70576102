// Autogenerated by Thrift Compiler (0.12.0)
// DO NOT EDIT UNLESS YOU ARE SURE THAT YOU KNOW WHAT YOU ARE DOING

package arithmetic

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/XuKyle/thrift-calc/api/floatops"
	"github.com/apache/thrift/lib/go/thrift"
)

// (needed to ensure safety because of naive import list construction.)
var _ = thrift.ZERO
var _ = fmt.Printf
var _ = context.Background
var _ = reflect.DeepEqual
var _ = bytes.Equal

var _ = floatops.GoUnusedProtection__

// Attributes:
//  - Oper
type InvalidOperation struct {
	Oper string `thrift:"oper,1" db:"oper" json:"oper"`
}

func NewInvalidOperation() *InvalidOperation {
	return &InvalidOperation{}
}

func (p *InvalidOperation) GetOper() string {
	return p.Oper
}
func (p *InvalidOperation) Read(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}
		if fieldTypeId == thrift.STOP {
			break
		}
		switch fieldId {
		case 1:
			if fieldTypeId == thrift.STRING {
				if err := p.ReadField1(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		default:
			if err := iprot.Skip(fieldTypeId); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *InvalidOperation) ReadField1(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadString(); err != nil {
		return thrift.PrependError("error reading field 1: ", err)
	} else {
		p.Oper = v
	}
	return nil
}

func (p *InvalidOperation) Write(oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin("InvalidOperation"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}
	if p != nil {
		if err := p.writeField1(oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *InvalidOperation) writeField1(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("oper", thrift.STRING, 1); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:oper: ", p), err)
	}
	if err := oprot.WriteString(string(p.Oper)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.oper (1) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 1:oper: ", p), err)
	}
	return err
}

func (p *InvalidOperation) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("InvalidOperation(%+v)", *p)
}

func (p *InvalidOperation) Error() string {
	return p.String()
}

type Calc interface {
	// Parameters:
	//  - Oper
	//  - P1
	//  - P2
	Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (r int32, err error)
}

type CalcClient struct {
	c thrift.TClient
}

func NewCalcClientFactory(t thrift.TTransport, f thrift.TProtocolFactory) *CalcClient {
	return &CalcClient{
		c: thrift.NewTStandardClient(f.GetProtocol(t), f.GetProtocol(t)),
	}
}

func NewCalcClientProtocol(t thrift.TTransport, iprot thrift.TProtocol, oprot thrift.TProtocol) *CalcClient {
	return &CalcClient{
		c: thrift.NewTStandardClient(iprot, oprot),
	}
}

func NewCalcClient(c thrift.TClient) *CalcClient {
	return &CalcClient{
		c: c,
	}
}

func (p *CalcClient) Client_() thrift.TClient {
	return p.c
}

// Parameters:
//  - Oper
//  - P1
//  - P2
func (p *CalcClient) Calculate(ctx context.Context, oper string, p1 int32, p2 int32) (r int32, err error) {
	var _args0 CalcCalculateArgs
	_args0.Oper = oper
	_args0.P1 = p1
	_args0.P2 = p2
	var _result1 CalcCalculateResult
	if err = p.Client_().Call(ctx, "calculate", &_args0, &_result1); err != nil {
		return
	}
	switch {
	case _result1.Ouch != nil:
		return r, _result1.Ouch
	}

	return _result1.GetSuccess(), nil
}

type CalcProcessor struct {
	processorMap map[string]thrift.TProcessorFunction
	handler      Calc
}

func (p *CalcProcessor) AddToProcessorMap(key string, processor thrift.TProcessorFunction) {
	p.processorMap[key] = processor
}

func (p *CalcProcessor) GetProcessorFunction(key string) (processor thrift.TProcessorFunction, ok bool) {
	processor, ok = p.processorMap[key]
	return processor, ok
}

func (p *CalcProcessor) ProcessorMap() map[string]thrift.TProcessorFunction {
	return p.processorMap
}

func NewCalcProcessor(handler Calc) *CalcProcessor {

	self2 := &CalcProcessor{handler: handler, processorMap: make(map[string]thrift.TProcessorFunction)}
	self2.processorMap["calculate"] = &calcProcessorCalculate{handler: handler}
	return self2
}

func (p *CalcProcessor) Process(ctx context.Context, iprot, oprot thrift.TProtocol) (success bool, err thrift.TException) {
	name, _, seqId, err := iprot.ReadMessageBegin()
	if err != nil {
		return false, err
	}
	if processor, ok := p.GetProcessorFunction(name); ok {
		return processor.Process(ctx, seqId, iprot, oprot)
	}
	iprot.Skip(thrift.STRUCT)
	iprot.ReadMessageEnd()
	x3 := thrift.NewTApplicationException(thrift.UNKNOWN_METHOD, "Unknown function "+name)
	oprot.WriteMessageBegin(name, thrift.EXCEPTION, seqId)
	x3.Write(oprot)
	oprot.WriteMessageEnd()
	oprot.Flush(ctx)
	return false, x3

}

type calcProcessorCalculate struct {
	handler Calc
}

func (p *calcProcessorCalculate) Process(ctx context.Context, seqId int32, iprot, oprot thrift.TProtocol) (success bool, err thrift.TException) {
	args := CalcCalculateArgs{}
	if err = args.Read(iprot); err != nil {
		iprot.ReadMessageEnd()
		x := thrift.NewTApplicationException(thrift.PROTOCOL_ERROR, err.Error())
		oprot.WriteMessageBegin("calculate", thrift.EXCEPTION, seqId)
		x.Write(oprot)
		oprot.WriteMessageEnd()
		oprot.Flush(ctx)
		return false, err
	}

	iprot.ReadMessageEnd()
	result := CalcCalculateResult{}
	var retval int32
	var err2 error
	if retval, err2 = p.handler.Calculate(ctx, args.Oper, args.P1, args.P2); err2 != nil {
		switch v := err2.(type) {
		case *InvalidOperation:
			result.Ouch = v
		default:
			x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR, "Internal error processing calculate: "+err2.Error())
			oprot.WriteMessageBegin("calculate", thrift.EXCEPTION, seqId)
			x.Write(oprot)
			oprot.WriteMessageEnd()
			oprot.Flush(ctx)
			return true, err2
		}
	} else {
		result.Success = &retval
	}
	if err2 = oprot.WriteMessageBegin("calculate", thrift.REPLY, seqId); err2 != nil {
		err = err2
	}
	if err2 = result.Write(oprot); err == nil && err2 != nil {
		err = err2
	}
	if err2 = oprot.WriteMessageEnd(); err == nil && err2 != nil {
		err = err2
	}
	if err2 = oprot.Flush(ctx); err == nil && err2 != nil {
		err = err2
	}
	if err != nil {
		return
	}
	return true, err
}

// HELPER FUNCTIONS AND STRUCTURES

// Attributes:
//  - Oper
//  - P1
//  - P2
type CalcCalculateArgs struct {
	Oper string `thrift:"oper,1" db:"oper" json:"oper"`
	P1   int32  `thrift:"p1,2" db:"p1" json:"p1"`
	P2   int32  `thrift:"p2,3" db:"p2" json:"p2"`
}

func NewCalcCalculateArgs() *CalcCalculateArgs {
	return &CalcCalculateArgs{}
}

func (p *CalcCalculateArgs) GetOper() string {
	return p.Oper
}

func (p *CalcCalculateArgs) GetP1() int32 {
	return p.P1
}

func (p *CalcCalculateArgs) GetP2() int32 {
	return p.P2
}
func (p *CalcCalculateArgs) Read(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}
		if fieldTypeId == thrift.STOP {
			break
		}
		switch fieldId {
		case 1:
			if fieldTypeId == thrift.STRING {
				if err := p.ReadField1(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 2:
			if fieldTypeId == thrift.I32 {
				if err := p.ReadField2(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 3:
			if fieldTypeId == thrift.I32 {
				if err := p.ReadField3(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		default:
			if err := iprot.Skip(fieldTypeId); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *CalcCalculateArgs) ReadField1(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadString(); err != nil {
		return thrift.PrependError("error reading field 1: ", err)
	} else {
		p.Oper = v
	}
	return nil
}

func (p *CalcCalculateArgs) ReadField2(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadI32(); err != nil {
		return thrift.PrependError("error reading field 2: ", err)
	} else {
		p.P1 = v
	}
	return nil
}

func (p *CalcCalculateArgs) ReadField3(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadI32(); err != nil {
		return thrift.PrependError("error reading field 3: ", err)
	} else {
		p.P2 = v
	}
	return nil
}

func (p *CalcCalculateArgs) Write(oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin("calculate_args"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}
	if p != nil {
		if err := p.writeField1(oprot); err != nil {
			return err
		}
		if err := p.writeField2(oprot); err != nil {
			return err
		}
		if err := p.writeField3(oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *CalcCalculateArgs) writeField1(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("oper", thrift.STRING, 1); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:oper: ", p), err)
	}
	if err := oprot.WriteString(string(p.Oper)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.oper (1) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 1:oper: ", p), err)
	}
	return err
}

func (p *CalcCalculateArgs) writeField2(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("p1", thrift.I32, 2); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 2:p1: ", p), err)
	}
	if err := oprot.WriteI32(int32(p.P1)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.p1 (2) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 2:p1: ", p), err)
	}
	return err
}

func (p *CalcCalculateArgs) writeField3(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("p2", thrift.I32, 3); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 3:p2: ", p), err)
	}
	if err := oprot.WriteI32(int32(p.P2)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.p2 (3) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 3:p2: ", p), err)
	}
	return err
}

func (p *CalcCalculateArgs) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("CalcCalculateArgs(%+v)", *p)
}

// Attributes:
//  - Success
//  - Ouch
type CalcCalculateResult struct {
	Success *int32            `thrift:"success,0" db:"success" json:"success,omitempty"`
	Ouch    *InvalidOperation `thrift:"ouch,1" db:"ouch" json:"ouch,omitempty"`
}

func NewCalcCalculateResult() *CalcCalculateResult {
	return &CalcCalculateResult{}
}

var CalcCalculateResult_Success_DEFAULT int32

func (p *CalcCalculateResult) GetSuccess() int32 {
	if !p.IsSetSuccess() {
		return CalcCalculateResult_Success_DEFAULT
	}
	return *p.Success
}

var CalcCalculateResult_Ouch_DEFAULT *InvalidOperation

func (p *CalcCalculateResult) GetOuch() *InvalidOperation {
	if !p.IsSetOuch() {
		return CalcCalculateResult_Ouch_DEFAULT
	}
	return p.Ouch
}
func (p *CalcCalculateResult) IsSetSuccess() bool {
	return p.Success != nil
}

func (p *CalcCalculateResult) IsSetOuch() bool {
	return p.Ouch != nil
}

func (p *CalcCalculateResult) Read(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}
		if fieldTypeId == thrift.STOP {
			break
		}
		switch fieldId {
		case 0:
			if fieldTypeId == thrift.I32 {
				if err := p.ReadField0(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 1:
			if fieldTypeId == thrift.STRUCT {
				if err := p.ReadField1(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		default:
			if err := iprot.Skip(fieldTypeId); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *CalcCalculateResult) ReadField0(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadI32(); err != nil {
		return thrift.PrependError("error reading field 0: ", err)
	} else {
		p.Success = &v
	}
	return nil
}

func (p *CalcCalculateResult) ReadField1(iprot thrift.TProtocol) error {
	p.Ouch = &InvalidOperation{}
	if err := p.Ouch.Read(iprot); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T error reading struct: ", p.Ouch), err)
	}
	return nil
}

func (p *CalcCalculateResult) Write(oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin("calculate_result"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}
	if p != nil {
		if err := p.writeField0(oprot); err != nil {
			return err
		}
		if err := p.writeField1(oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *CalcCalculateResult) writeField0(oprot thrift.TProtocol) (err error) {
	if p.IsSetSuccess() {
		if err := oprot.WriteFieldBegin("success", thrift.I32, 0); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 0:success: ", p), err)
		}
		if err := oprot.WriteI32(int32(*p.Success)); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T.success (0) field write error: ", p), err)
		}
		if err := oprot.WriteFieldEnd(); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 0:success: ", p), err)
		}
	}
	return err
}

func (p *CalcCalculateResult) writeField1(oprot thrift.TProtocol) (err error) {
	if p.IsSetOuch() {
		if err := oprot.WriteFieldBegin("ouch", thrift.STRUCT, 1); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:ouch: ", p), err)
		}
		if err := p.Ouch.Write(oprot); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T error writing struct: ", p.Ouch), err)
		}
		if err := oprot.WriteFieldEnd(); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 1:ouch: ", p), err)
		}
	}
	return err
}

func (p *CalcCalculateResult) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("CalcCalculateResult(%+v)", *p)
}

type FloatCalc interface {
	Calc

	// Parameters:
	//  - Oper
	//  - P1
	//  - P2
	FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (r float64, err error)
}

type FloatCalcClient struct {
	*CalcClient
}

func NewFloatCalcClientFactory(t thrift.TTransport, f thrift.TProtocolFactory) *FloatCalcClient {
	return &FloatCalcClient{CalcClient: NewCalcClientFactory(t, f)}
}

func NewFloatCalcClientProtocol(t thrift.TTransport, iprot thrift.TProtocol, oprot thrift.TProtocol) *FloatCalcClient {
	return &FloatCalcClient{CalcClient: NewCalcClientProtocol(t, iprot, oprot)}
}

func NewFloatCalcClient(c thrift.TClient) *FloatCalcClient {
	return &FloatCalcClient{
		CalcClient: NewCalcClient(c),
	}
}

// Parameters:
//  - Oper
//  - P1
//  - P2
func (p *FloatCalcClient) FloatCalculate(ctx context.Context, oper string, p1 float64, p2 float64) (r float64, err error) {
	var _args5 FloatCalcFloatCalculateArgs
	_args5.Oper = oper
	_args5.P1 = p1
	_args5.P2 = p2
	var _result6 FloatCalcFloatCalculateResult
	if err = p.Client_().Call(ctx, "float_calculate", &_args5, &_result6); err != nil {
		return
	}
	switch {
	case _result6.Ouch != nil:
		return r, _result6.Ouch
	}

	return _result6.GetSuccess(), nil
}

type FloatCalcProcessor struct {
	*CalcProcessor
}

func NewFloatCalcProcessor(handler FloatCalc) *FloatCalcProcessor {
	self7 := &FloatCalcProcessor{NewCalcProcessor(handler)}
	self7.AddToProcessorMap("float_calculate", &floatCalcProcessorFloatCalculate{handler: handler})
	return self7
}

type floatCalcProcessorFloatCalculate struct {
	handler FloatCalc
}

func (p *floatCalcProcessorFloatCalculate) Process(ctx context.Context, seqId int32, iprot, oprot thrift.TProtocol) (success bool, err thrift.TException) {
	args := FloatCalcFloatCalculateArgs{}
	if err = args.Read(iprot); err != nil {
		iprot.ReadMessageEnd()
		x := thrift.NewTApplicationException(thrift.PROTOCOL_ERROR, err.Error())
		oprot.WriteMessageBegin("float_calculate", thrift.EXCEPTION, seqId)
		x.Write(oprot)
		oprot.WriteMessageEnd()
		oprot.Flush(ctx)
		return false, err
	}

	iprot.ReadMessageEnd()
	result := FloatCalcFloatCalculateResult{}
	var retval float64
	var err2 error
	if retval, err2 = p.handler.FloatCalculate(ctx, args.Oper, args.P1, args.P2); err2 != nil {
		switch v := err2.(type) {
		case *floatops.InvalidFloatOperation:
			result.Ouch = v
		default:
			x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR, "Internal error processing float_calculate: "+err2.Error())
			oprot.WriteMessageBegin("float_calculate", thrift.EXCEPTION, seqId)
			x.Write(oprot)
			oprot.WriteMessageEnd()
			oprot.Flush(ctx)
			return true, err2
		}
	} else {
		result.Success = &retval
	}
	if err2 = oprot.WriteMessageBegin("float_calculate", thrift.REPLY, seqId); err2 != nil {
		err = err2
	}
	if err2 = result.Write(oprot); err == nil && err2 != nil {
		err = err2
	}
	if err2 = oprot.WriteMessageEnd(); err == nil && err2 != nil {
		err = err2
	}
	if err2 = oprot.Flush(ctx); err == nil && err2 != nil {
		err = err2
	}
	if err != nil {
		return
	}
	return true, err
}

// HELPER FUNCTIONS AND STRUCTURES

// Attributes:
//  - Oper
//  - P1
//  - P2
type FloatCalcFloatCalculateArgs struct {
	Oper string  `thrift:"oper,1" db:"oper" json:"oper"`
	P1   float64 `thrift:"p1,2" db:"p1" json:"p1"`
	P2   float64 `thrift:"p2,3" db:"p2" json:"p2"`
}

func NewFloatCalcFloatCalculateArgs() *FloatCalcFloatCalculateArgs {
	return &FloatCalcFloatCalculateArgs{}
}

func (p *FloatCalcFloatCalculateArgs) GetOper() string {
	return p.Oper
}

func (p *FloatCalcFloatCalculateArgs) GetP1() float64 {
	return p.P1
}

func (p *FloatCalcFloatCalculateArgs) GetP2() float64 {
	return p.P2
}
func (p *FloatCalcFloatCalculateArgs) Read(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}
		if fieldTypeId == thrift.STOP {
			break
		}
		switch fieldId {
		case 1:
			if fieldTypeId == thrift.STRING {
				if err := p.ReadField1(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 2:
			if fieldTypeId == thrift.DOUBLE {
				if err := p.ReadField2(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 3:
			if fieldTypeId == thrift.DOUBLE {
				if err := p.ReadField3(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		default:
			if err := iprot.Skip(fieldTypeId); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *FloatCalcFloatCalculateArgs) ReadField1(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadString(); err != nil {
		return thrift.PrependError("error reading field 1: ", err)
	} else {
		p.Oper = v
	}
	return nil
}

func (p *FloatCalcFloatCalculateArgs) ReadField2(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadDouble(); err != nil {
		return thrift.PrependError("error reading field 2: ", err)
	} else {
		p.P1 = v
	}
	return nil
}

func (p *FloatCalcFloatCalculateArgs) ReadField3(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadDouble(); err != nil {
		return thrift.PrependError("error reading field 3: ", err)
	} else {
		p.P2 = v
	}
	return nil
}

func (p *FloatCalcFloatCalculateArgs) Write(oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin("float_calculate_args"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}
	if p != nil {
		if err := p.writeField1(oprot); err != nil {
			return err
		}
		if err := p.writeField2(oprot); err != nil {
			return err
		}
		if err := p.writeField3(oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *FloatCalcFloatCalculateArgs) writeField1(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("oper", thrift.STRING, 1); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:oper: ", p), err)
	}
	if err := oprot.WriteString(string(p.Oper)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.oper (1) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 1:oper: ", p), err)
	}
	return err
}

func (p *FloatCalcFloatCalculateArgs) writeField2(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("p1", thrift.DOUBLE, 2); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 2:p1: ", p), err)
	}
	if err := oprot.WriteDouble(float64(p.P1)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.p1 (2) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 2:p1: ", p), err)
	}
	return err
}

func (p *FloatCalcFloatCalculateArgs) writeField3(oprot thrift.TProtocol) (err error) {
	if err := oprot.WriteFieldBegin("p2", thrift.DOUBLE, 3); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 3:p2: ", p), err)
	}
	if err := oprot.WriteDouble(float64(p.P2)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.p2 (3) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 3:p2: ", p), err)
	}
	return err
}

func (p *FloatCalcFloatCalculateArgs) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("FloatCalcFloatCalculateArgs(%+v)", *p)
}

// Attributes:
//  - Success
//  - Ouch
type FloatCalcFloatCalculateResult struct {
	Success *float64                        `thrift:"success,0" db:"success" json:"success,omitempty"`
	Ouch    *floatops.InvalidFloatOperation `thrift:"ouch,1" db:"ouch" json:"ouch,omitempty"`
}

func NewFloatCalcFloatCalculateResult() *FloatCalcFloatCalculateResult {
	return &FloatCalcFloatCalculateResult{}
}

var FloatCalcFloatCalculateResult_Success_DEFAULT float64

func (p *FloatCalcFloatCalculateResult) GetSuccess() float64 {
	if !p.IsSetSuccess() {
		return FloatCalcFloatCalculateResult_Success_DEFAULT
	}
	return *p.Success
}

var FloatCalcFloatCalculateResult_Ouch_DEFAULT *floatops.InvalidFloatOperation

func (p *FloatCalcFloatCalculateResult) GetOuch() *floatops.InvalidFloatOperation {
	if !p.IsSetOuch() {
		return FloatCalcFloatCalculateResult_Ouch_DEFAULT
	}
	return p.Ouch
}
func (p *FloatCalcFloatCalculateResult) IsSetSuccess() bool {
	return p.Success != nil
}

func (p *FloatCalcFloatCalculateResult) IsSetOuch() bool {
	return p.Ouch != nil
}

func (p *FloatCalcFloatCalculateResult) Read(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin()
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}
		if fieldTypeId == thrift.STOP {
			break
		}
		switch fieldId {
		case 0:
			if fieldTypeId == thrift.DOUBLE {
				if err := p.ReadField0(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		case 1:
			if fieldTypeId == thrift.STRUCT {
				if err := p.ReadField1(iprot); err != nil {
					return err
				}
			} else {
				if err := iprot.Skip(fieldTypeId); err != nil {
					return err
				}
			}
		default:
			if err := iprot.Skip(fieldTypeId); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := iprot.ReadStructEnd(); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *FloatCalcFloatCalculateResult) ReadField0(iprot thrift.TProtocol) error {
	if v, err := iprot.ReadDouble(); err != nil {
		return thrift.PrependError("error reading field 0: ", err)
	} else {
		p.Success = &v
	}
	return nil
}

func (p *FloatCalcFloatCalculateResult) ReadField1(iprot thrift.TProtocol) error {
	p.Ouch = &floatops.InvalidFloatOperation{}
	if err := p.Ouch.Read(iprot); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T error reading struct: ", p.Ouch), err)
	}
	return nil
}

func (p *FloatCalcFloatCalculateResult) Write(oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin("float_calculate_result"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}
	if p != nil {
		if err := p.writeField0(oprot); err != nil {
			return err
		}
		if err := p.writeField1(oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *FloatCalcFloatCalculateResult) writeField0(oprot thrift.TProtocol) (err error) {
	if p.IsSetSuccess() {
		if err := oprot.WriteFieldBegin("success", thrift.DOUBLE, 0); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 0:success: ", p), err)
		}
		if err := oprot.WriteDouble(float64(*p.Success)); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T.success (0) field write error: ", p), err)
		}
		if err := oprot.WriteFieldEnd(); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 0:success: ", p), err)
		}
	}
	return err
}

func (p *FloatCalcFloatCalculateResult) writeField1(oprot thrift.TProtocol) (err error) {
	if p.IsSetOuch() {
		if err := oprot.WriteFieldBegin("ouch", thrift.STRUCT, 1); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:ouch: ", p), err)
		}
		if err := p.Ouch.Write(oprot); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T error writing struct: ", p.Ouch), err)
		}
		if err := oprot.WriteFieldEnd(); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 1:ouch: ", p), err)
		}
	}
	return err
}

func (p *FloatCalcFloatCalculateResult) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("FloatCalcFloatCalculateResult(%+v)", *p)
}
