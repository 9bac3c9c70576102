package pool

import (
	"sync"

	"github.com/XuKyle/thrift-calc/api/arithmetic"
)

type Pool interface {
	initConn()
	createIdleConn(wg *sync.WaitGroup)

	Get() (*IdleClient, error)
	Put(client *IdleClient) error
	CloseConn(client *IdleClient)
	ClearConn()
	Release()
	Recover()

	CheckTimeout()
	GetIdleCount() uint32
	GetConnCount() int32
}

type Agent interface {
	Init(pool *ThriftPool)

	Do(do func(client arithmetic.FloatCalc) error) error

	getClient() (*IdleClient, error)
	releaseClient(client *IdleClient) error
	closeClient(client *IdleClient)

	Release()
	GetIdleCount() uint32
	GetConnCount() int32
}

var (
	_ Pool  = (*ThriftPool)(nil)
	_ Agent = (*ThriftPoolAgent)(nil)
)
