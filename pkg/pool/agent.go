package pool

import (
	"github.com/XuKyle/thrift-calc/api/arithmetic"
	"github.com/XuKyle/thrift-calc/pkg/fault"
	"github.com/charmbracelet/log"
)

// ThriftPoolAgent lends pooled clients for the span of one callback.
type ThriftPoolAgent struct {
	pool   *ThriftPool
	logger *log.Logger
}

func NewThriftPoolAgent() *ThriftPoolAgent {
	return &ThriftPoolAgent{logger: log.Default()}
}

func (a *ThriftPoolAgent) Init(pool *ThriftPool) {
	a.pool = pool
}

func (a *ThriftPoolAgent) SetLogger(logger *log.Logger) {
	a.logger = logger
}

// Do runs do with a pooled client. The client goes back to the pool when do
// succeeds or fails with a service fault; any other error means the
// connection can no longer be trusted and it is closed. Nothing is retried.
func (a *ThriftPoolAgent) Do(do func(client arithmetic.FloatCalc) error) (err error) {
	client, err := a.getClient()
	if err != nil {
		return err
	}

	defer func() {
		if err == nil || fault.Is(err) {
			if rErr := a.releaseClient(client); rErr != nil {
				a.logger.Warn("release client", "err", rErr)
			}
			return
		}
		a.closeClient(client)
	}()

	return do(client.Client)
}

func (a *ThriftPoolAgent) getClient() (*IdleClient, error) {
	return a.pool.Get()
}

func (a *ThriftPoolAgent) releaseClient(client *IdleClient) error {
	return a.pool.Put(client)
}

func (a *ThriftPoolAgent) closeClient(client *IdleClient) {
	a.pool.CloseConn(client)
}

func (a *ThriftPoolAgent) Release() {
	a.pool.Release()
}

func (a *ThriftPoolAgent) GetIdleCount() uint32 {
	return a.pool.GetIdleCount()
}

func (a *ThriftPoolAgent) GetConnCount() int32 {
	return a.pool.GetConnCount()
}
