package pool

import "time"

type ThriftPoolConfig struct {
	// server address
	Addr string
	// upper bound on open connections
	MaxConn int32
	// connections opened up front, capped at MaxConn
	InitConn int32
	// dial timeout
	ConnTimeout time.Duration
	// idle connections older than this are closed
	IdleTimeout time.Duration
	// how long Get waits for a free slot
	Timeout time.Duration
	// how often Get re-checks for a free slot
	interval time.Duration
}
