package pool

import (
	"time"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/apache/thrift/lib/go/thrift"
)

// IdleClient is one open connection to a calculator server.
type IdleClient struct {
	// outermost transport (buffered or framed over the socket)
	Transport thrift.TTransport
	// typed service client bound to Transport
	Client arithmetic.FloatCalc
}

// Check reports whether the client can still be used.
func (client *IdleClient) Check() bool {
	if client.Transport == nil || client.Client == nil {
		return false
	}
	return client.Transport.IsOpen()
}

// idleConn is an IdleClient parked in the idle list.
type idleConn struct {
	c *IdleClient
	// when it was last put back
	t time.Time
}

// ThriftDial opens a new client against addr.
type ThriftDial func(addr string, connTimeout time.Duration) (*IdleClient, error)

// ThriftClientClose closes a client's connection.
type ThriftClientClose func(client *IdleClient) error
