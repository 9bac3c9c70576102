package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/apache/thrift/lib/go/thrift"
)

const (
	ProtocolBinary  = "binary"
	ProtocolCompact = "compact"

	TransportBuffered = "buffered"
	TransportFramed   = "framed"

	DEFAULT_CALC_ADDR       = "127.0.0.1:9999"
	DEFAULT_FLOAT_CALC_ADDR = "127.0.0.1:19999"
	DEFAULT_BUFFER_SIZE     = 8192
	DEFAULT_CONN_TIMEOUT    = time.Second * 2
	DEFAULT_ROUNDS          = 5
	DEFAULT_ITERATIONS      = 10
	DEFAULT_LARGE_AFTER     = 3
	DEFAULT_LOG_LEVEL       = "info"
)

var (
	ErrUnknownProtocol  = errors.New("config: unknown protocol")
	ErrUnknownTransport = errors.New("config: unknown transport")
)

// ThriftConfig selects the wire stack. Client and server must agree.
type ThriftConfig struct {
	// binary or compact
	Protocol string
	// buffered or framed
	Transport string
	// buffered transport size in bytes
	BufferSize int
}

func (c *ThriftConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Protocol, "protocol", ProtocolBinary, "thrift protocol: binary or compact")
	fs.StringVar(&c.Transport, "transport", TransportBuffered, "thrift transport: buffered or framed")
	fs.IntVar(&c.BufferSize, "buffer-size", DEFAULT_BUFFER_SIZE, "buffered transport size in bytes")
}

// Check fills zero values with defaults and rejects unknown names.
func (c *ThriftConfig) Check() error {
	if c.Protocol == "" {
		c.Protocol = ProtocolBinary
	}
	if c.Transport == "" {
		c.Transport = TransportBuffered
	}
	if c.BufferSize <= 0 {
		c.BufferSize = DEFAULT_BUFFER_SIZE
	}

	switch c.Protocol {
	case ProtocolBinary, ProtocolCompact:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProtocol, c.Protocol)
	}
	switch c.Transport {
	case TransportBuffered, TransportFramed:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
	return nil
}

func (c *ThriftConfig) ProtocolFactory() thrift.TProtocolFactory {
	if c.Protocol == ProtocolCompact {
		return thrift.NewTCompactProtocolFactory()
	}
	return thrift.NewTBinaryProtocolFactoryDefault()
}

// TransportFactory wraps accepted server connections.
func (c *ThriftConfig) TransportFactory() thrift.TTransportFactory {
	if c.Transport == TransportFramed {
		return thrift.NewTFramedTransportFactory(thrift.NewTTransportFactory())
	}
	return thrift.NewTBufferedTransportFactory(c.BufferSize)
}

// WrapTransport wraps a client socket the same way the server wraps its side.
func (c *ThriftConfig) WrapTransport(socket thrift.TTransport) thrift.TTransport {
	if c.Transport == TransportFramed {
		return thrift.NewTFramedTransport(socket)
	}
	return thrift.NewTBufferedTransport(socket, c.BufferSize)
}

type ServerConfig struct {
	Thrift ThriftConfig
	// integer-only service
	CalcAddr string
	// integer and float service
	FloatCalcAddr string
	// accepted connections per second, 0 disables throttling
	AcceptRate  float64
	AcceptBurst int64
	// how often the metrics registry is logged, 0 disables it
	MetricsInterval time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

func (c *ServerConfig) RegisterFlags(fs *flag.FlagSet) {
	c.Thrift.RegisterFlags(fs)
	fs.StringVar(&c.CalcAddr, "calc-addr", DEFAULT_CALC_ADDR, "listen address of the integer-only service, empty to disable")
	fs.StringVar(&c.FloatCalcAddr, "float-calc-addr", DEFAULT_FLOAT_CALC_ADDR, "listen address of the integer and float service, empty to disable")
	fs.Float64Var(&c.AcceptRate, "accept-rate", 0, "accepted connections per second, 0 for unlimited")
	fs.Int64Var(&c.AcceptBurst, "accept-burst", 16, "connection accept burst")
	fs.DurationVar(&c.MetricsInterval, "metrics-interval", time.Minute, "metrics log interval, 0 to disable")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	fs.StringVar(&c.LogLevel, "log-level", DEFAULT_LOG_LEVEL, "log level")
}

func (c *ServerConfig) Check() error {
	if err := c.Thrift.Check(); err != nil {
		return err
	}
	if c.CalcAddr == "" && c.FloatCalcAddr == "" {
		return errors.New("config: no listen address")
	}
	if c.AcceptRate > 0 && c.AcceptBurst <= 0 {
		c.AcceptBurst = 1
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = DEFAULT_LOG_LEVEL
	}
	return nil
}

type ClientConfig struct {
	Thrift      ThriftConfig
	Addr        string
	ConnTimeout time.Duration
	// a round is one integer run followed by one float run
	Rounds     int
	Iterations int
	// float operands widen after this many iterations
	LargeAfter int
	// 0 seeds from the clock
	Seed     int64
	LogLevel string
}

func (c *ClientConfig) RegisterFlags(fs *flag.FlagSet) {
	c.Thrift.RegisterFlags(fs)
	fs.StringVar(&c.Addr, "addr", DEFAULT_FLOAT_CALC_ADDR, "server address")
	fs.DurationVar(&c.ConnTimeout, "conn-timeout", DEFAULT_CONN_TIMEOUT, "connect and io timeout")
	fs.IntVar(&c.Rounds, "rounds", DEFAULT_ROUNDS, "number of integer+float rounds")
	fs.IntVar(&c.Iterations, "n", DEFAULT_ITERATIONS, "requests per run")
	fs.IntVar(&c.LargeAfter, "large-after", DEFAULT_LARGE_AFTER, "iteration index after which float operands go up to 2^50")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed, 0 for time based")
	fs.StringVar(&c.LogLevel, "log-level", DEFAULT_LOG_LEVEL, "log level")
}

func (c *ClientConfig) Check() error {
	if err := c.Thrift.Check(); err != nil {
		return err
	}
	if c.Addr == "" {
		c.Addr = DEFAULT_FLOAT_CALC_ADDR
	}
	if c.ConnTimeout <= 0 {
		c.ConnTimeout = DEFAULT_CONN_TIMEOUT
	}
	if c.Rounds <= 0 {
		c.Rounds = DEFAULT_ROUNDS
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: negative iteration count %d", c.Iterations)
	}
	if c.LargeAfter < 0 {
		c.LargeAfter = DEFAULT_LARGE_AFTER
	}
	if c.LogLevel == "" {
		c.LogLevel = DEFAULT_LOG_LEVEL
	}
	return nil
}
