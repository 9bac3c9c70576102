package client

import (
	"fmt"
	"time"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/pkg/config"
	"github.com/XuKyle/thrift-calc/pkg/pool"
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/charmbracelet/log"
)

// Dialer opens calculator connections using one wire configuration.
type Dialer struct {
	config *config.ThriftConfig
	logger *log.Logger
}

func NewDialer(cfg *config.ThriftConfig, logger *log.Logger) *Dialer {
	if logger == nil {
		logger = log.Default()
	}
	return &Dialer{config: cfg, logger: logger}
}

// Dial connects to addr. connTimeout bounds the connect as well as every read
// and write on the socket.
func (d *Dialer) Dial(addr string, connTimeout time.Duration) (*pool.IdleClient, error) {
	socket, err := thrift.NewTSocketTimeout(addr, connTimeout)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}

	transport := d.config.WrapTransport(socket)
	client := arithmetic.NewFloatCalcClientFactory(transport, d.config.ProtocolFactory())

	d.logger.Info("opening connection", "addr", addr, "protocol", d.config.Protocol, "transport", d.config.Transport)
	if err := transport.Open(); err != nil {
		return nil, fmt.Errorf("open %s: %w", addr, err)
	}
	d.logger.Info("opened connection", "addr", addr)

	return &pool.IdleClient{
		Transport: transport,
		Client:    client,
	}, nil
}

// Close closes the client's transport.
func (d *Dialer) Close(client *pool.IdleClient) error {
	if client == nil {
		return nil
	}
	if err := client.Transport.Close(); err != nil {
		d.logger.Warn("close connection", "err", err)
		return err
	}
	d.logger.Info("closed connection")
	return nil
}

// NewPool builds a connection pool whose clients come from d.
func (d *Dialer) NewPool(cfg *pool.ThriftPoolConfig) *pool.ThriftPool {
	return pool.NewThriftPool(cfg, d.Dial, d.Close)
}

// PerRun opens a fresh connection for every Do and closes it when do returns.
type PerRun struct {
	dialer      *Dialer
	addr        string
	connTimeout time.Duration
}

func (d *Dialer) PerRun(addr string, connTimeout time.Duration) *PerRun {
	return &PerRun{dialer: d, addr: addr, connTimeout: connTimeout}
}

func (r *PerRun) Do(do func(client arithmetic.FloatCalc) error) (err error) {
	c, err := r.dialer.Dial(r.addr, r.connTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := r.dialer.Close(c); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return do(c.Client)
}
