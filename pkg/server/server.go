package server

import (
	"net"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/pkg/config"
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/charmbracelet/log"
	"github.com/juju/ratelimit"
)

// Server is one calculator endpoint: a thrift simple server bound to a socket.
type Server struct {
	name   string
	socket *thrift.TServerSocket
	server *thrift.TSimpleServer
	logger *log.Logger
}

type options struct {
	acceptRate  float64
	acceptBurst int64
	logger      *log.Logger
}

type Option func(*options)

// WithAcceptRate throttles accepted connections to rate per second with the
// given burst. A rate <= 0 disables throttling.
func WithAcceptRate(rate float64, burst int64) Option {
	return func(o *options) {
		o.acceptRate = rate
		o.acceptBurst = burst
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New builds a server for processor on addr without binding yet.
func New(name string, addr string, processor thrift.TProcessor, cfg *config.ThriftConfig, opts ...Option) (*Server, error) {
	o := &options{logger: log.Default()}
	for _, opt := range opts {
		opt(o)
	}

	socket, err := thrift.NewTServerSocket(addr)
	if err != nil {
		return nil, err
	}

	var transport thrift.TServerTransport = socket
	if o.acceptRate > 0 {
		burst := o.acceptBurst
		if burst <= 0 {
			burst = 1
		}
		transport = &throttledServerTransport{
			TServerTransport: socket,
			bucket:           ratelimit.NewBucketWithRate(o.acceptRate, burst),
		}
	}

	return &Server{
		name:   name,
		socket: socket,
		server: thrift.NewTSimpleServer4(processor, transport, cfg.TransportFactory(), cfg.ProtocolFactory()),
		logger: o.logger.With("server", name),
	}, nil
}

// NewCalc serves only calculate.
func NewCalc(addr string, handler arithmetic.Calc, cfg *config.ThriftConfig, opts ...Option) (*Server, error) {
	return New("calc", addr, arithmetic.NewCalcProcessor(handler), cfg, opts...)
}

// NewFloatCalc serves calculate and float_calculate.
func NewFloatCalc(addr string, handler arithmetic.FloatCalc, cfg *config.ThriftConfig, opts ...Option) (*Server, error) {
	return New("float-calc", addr, arithmetic.NewFloatCalcProcessor(handler), cfg, opts...)
}

func (s *Server) Name() string {
	return s.name
}

// Listen binds the socket. Calling it before Serve makes Addr meaningful for
// ":0" addresses.
func (s *Server) Listen() error {
	return s.server.Listen()
}

// Addr is the bound address after Listen, the configured one before.
func (s *Server) Addr() net.Addr {
	return s.socket.Addr()
}

// Serve listens if needed and blocks accepting connections until Stop.
func (s *Server) Serve() error {
	if err := s.server.Listen(); err != nil {
		return err
	}
	s.logger.Info("serving", "addr", s.Addr().String())
	return s.server.AcceptLoop()
}

// Stop stops accepting and waits for open connections to finish.
func (s *Server) Stop() error {
	s.logger.Info("stopping")
	return s.server.Stop()
}

type throttledServerTransport struct {
	thrift.TServerTransport
	bucket *ratelimit.Bucket
}

func (t *throttledServerTransport) Accept() (thrift.TTransport, error) {
	client, err := t.TServerTransport.Accept()
	if err != nil {
		return nil, err
	}
	t.bucket.Wait(1)
	return client, nil
}
