package client

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/pkg/config"
	"github.com/XuKyle/thrift-calc/pkg/handler"
	"github.com/XuKyle/thrift-calc/pkg/logging"
	"github.com/XuKyle/thrift-calc/pkg/pool"
	"github.com/XuKyle/thrift-calc/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, cfg *config.ThriftConfig) net.Addr {
	s, err := server.NewFloatCalc("127.0.0.1:0", &handler.CalcHandler{}, cfg, server.WithLogger(logging.Discard()))
	require.NoError(t, err)
	require.NoError(t, s.Listen())
	done := make(chan error, 1)
	go func() { done <- s.Serve() }()
	t.Cleanup(func() {
		assert.NoError(t, s.Stop())
		assert.NoError(t, <-done)
	})
	return s.Addr()
}

func TestDialAndClose(t *testing.T) {
	cfg := &config.ThriftConfig{Transport: config.TransportFramed}
	require.NoError(t, cfg.Check())
	addr := startServer(t, cfg)

	d := NewDialer(cfg, logging.Discard())
	c, err := d.Dial(addr.String(), time.Second)
	require.NoError(t, err)
	assert.True(t, c.Check())

	r, err := c.Client.Calculate(context.Background(), "*", 6, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(42), r)

	require.NoError(t, d.Close(c))
	assert.False(t, c.Check())
	assert.NoError(t, d.Close(nil))
}

func TestDialRefused(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())

	// grab a free port and release it so nothing is listening there
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	_, err = NewDialer(cfg, nil).Dial(addr, 200*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open "+addr)
}

func TestNewPool(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())
	addr := startServer(t, cfg)

	p := NewDialer(cfg, logging.Discard()).NewPool(&pool.ThriftPoolConfig{
		Addr:     addr.String(),
		MaxConn:  2,
		InitConn: 2,
	})
	defer p.Release()

	assert.Equal(t, uint32(2), p.GetIdleCount())
	c, err := p.Get()
	require.NoError(t, err)
	f, err := c.Client.FloatCalculate(context.Background(), "+", 0.5, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.75, f)
	require.NoError(t, p.Put(c))
}

func TestPerRunOpensAndClosesEachRun(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())
	addr := startServer(t, cfg)

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})
	r := NewDialer(cfg, logger).PerRun(addr.String(), time.Second)

	var clients []arithmetic.FloatCalc
	for i := int32(0); i < 3; i++ {
		err := r.Do(func(client arithmetic.FloatCalc) error {
			clients = append(clients, client)
			got, err := client.Calculate(context.Background(), "+", i, 1)
			assert.Equal(t, i+1, got)
			return err
		})
		require.NoError(t, err)
	}
	assert.NotSame(t, clients[0], clients[1])
	assert.Equal(t, 3, strings.Count(logs.String(), "opening connection"))
	assert.Equal(t, 3, strings.Count(logs.String(), "opened connection"))
	assert.Equal(t, 3, strings.Count(logs.String(), "closed connection"))

	// the connection is closed on failure too
	logs.Reset()
	failed := errors.New("run failed")
	assert.Equal(t, failed, r.Do(func(client arithmetic.FloatCalc) error { return failed }))
	assert.Equal(t, 1, strings.Count(logs.String(), "closed connection"))
}

func TestPerRunDialError(t *testing.T) {
	cfg := &config.ThriftConfig{}
	require.NoError(t, cfg.Check())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	called := false
	err = NewDialer(cfg, logging.Discard()).PerRun(addr, 200*time.Millisecond).Do(func(client arithmetic.FloatCalc) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
