package pool

import (
	"container/list"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

const (
	CHECKINTERVAL = 120 // seconds between idle sweeps, shortened to IdleTimeout when that is smaller

	poolOpen = 1
	poolStop = 2

	DEFAULT_MAX_CONN     = 100
	DEFAULT_CONN_TIMEOUT = time.Second * 2
	DEFAULT_IDLE_TIMEOUT = time.Minute * 15
	maxInitConnCount     = 50
	DEFAULT_TIMEOUT      = time.Second * 5
	defaultInterval      = time.Millisecond * 50
)

var nowFunc = time.Now

var (
	ErrOverMax          = errors.New("pool: no free connection before timeout")
	ErrPoolClosed       = errors.New("pool: closed")
	ErrSocketDisconnect = errors.New("pool: socket disconnected")
)

// ThriftPool keeps up to MaxConn open calculator clients.
type ThriftPool struct {
	Dial  ThriftDial
	Close ThriftClientClose
	// most recently returned at the front
	idle list.List
	// guards idle and stop
	lock *sync.Mutex
	// clients handed out plus clients idle, including ones being dialed
	count  int32
	status uint32
	config *ThriftPoolConfig
	// closed by Release, stops the idle sweeper
	stop chan struct{}
}

// Get returns an idle client or dials a new one, waiting up to config.Timeout
// when MaxConn clients are already out.
func (p *ThriftPool) Get() (*IdleClient, error) {
	return p.get(nowFunc().Add(p.config.Timeout))
}

func (p *ThriftPool) get(expire time.Time) (*IdleClient, error) {
	for {
		if atomic.LoadUint32(&p.status) == poolStop {
			return nil, ErrPoolClosed
		}

		p.lock.Lock()
		if p.idle.Len() == 0 && atomic.LoadInt32(&p.count) >= p.config.MaxConn {
			p.lock.Unlock()
			if nowFunc().After(expire) {
				return nil, ErrOverMax
			}
			time.Sleep(p.config.interval)
			continue
		}

		if p.idle.Len() == 0 {
			// count first so concurrent callers see the slot as taken while
			// the handshake is in flight
			atomic.AddInt32(&p.count, 1)
			p.lock.Unlock()
			client, err := p.Dial(p.config.Addr, p.config.ConnTimeout)
			if err != nil {
				atomic.AddInt32(&p.count, -1)
				return nil, err
			}
			if !client.Check() {
				p.CloseConn(client)
				return nil, ErrSocketDisconnect
			}
			return client, nil
		}

		element := p.idle.Front()
		idleC := element.Value.(*idleConn)
		p.idle.Remove(element)
		p.lock.Unlock()

		// it may have been closed by the peer while parked
		if idleC.c.Check() {
			return idleC.c, nil
		}
		p.CloseConn(idleC.c)
	}
}

// Put parks a client for reuse. Broken clients, clients over MaxConn and
// clients returned after Release are closed instead.
func (p *ThriftPool) Put(client *IdleClient) error {
	if client == nil {
		return nil
	}

	if atomic.LoadUint32(&p.status) == poolStop ||
		atomic.LoadInt32(&p.count) > p.config.MaxConn || !client.Check() {
		atomic.AddInt32(&p.count, -1)
		return p.Close(client)
	}

	p.lock.Lock()
	p.idle.PushFront(&idleConn{
		c: client,
		t: nowFunc(),
	})
	p.lock.Unlock()

	return nil
}

// CloseConn closes a client that will not be put back.
func (p *ThriftPool) CloseConn(client *IdleClient) {
	if client != nil {
		p.Close(client)
	}
	atomic.AddInt32(&p.count, -1)
}

// ClearConn sweeps idle clients until the pool is released.
func (p *ThriftPool) ClearConn() {
	p.lock.Lock()
	stop := p.stop
	p.lock.Unlock()
	p.clearConn(stop)
}

func (p *ThriftPool) clearConn(stop <-chan struct{}) {
	interval := CHECKINTERVAL * time.Second
	if p.config.IdleTimeout < interval {
		interval = p.config.IdleTimeout
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.CheckTimeout()
		}
	}
}

// Release closes every idle client and refuses further Gets.
func (p *ThriftPool) Release() {
	if !atomic.CompareAndSwapUint32(&p.status, poolOpen, poolStop) {
		return
	}

	p.lock.Lock()
	close(p.stop)
	conns := make([]*IdleClient, 0, p.idle.Len())
	for iter := p.idle.Front(); iter != nil; iter = iter.Next() {
		conns = append(conns, iter.Value.(*idleConn).c)
	}
	p.idle.Init()
	p.lock.Unlock()

	for _, c := range conns {
		p.CloseConn(c)
	}
}

// Recover reopens a released pool.
func (p *ThriftPool) Recover() {
	if !atomic.CompareAndSwapUint32(&p.status, poolStop, poolOpen) {
		return
	}

	p.lock.Lock()
	p.stop = make(chan struct{})
	stop := p.stop
	p.lock.Unlock()

	go p.clearConn(stop)
}

// CheckTimeout closes clients idle for longer than config.IdleTimeout.
func (p *ThriftPool) CheckTimeout() {
	p.lock.Lock()
	for p.idle.Len() != 0 {
		element := p.idle.Back()
		if element == nil {
			break
		}

		conn := element.Value.(*idleConn)
		if conn.t.Add(p.config.IdleTimeout).After(nowFunc()) {
			break
		}

		p.idle.Remove(element)
		p.lock.Unlock()

		p.CloseConn(conn.c)

		p.lock.Lock()
	}
	p.lock.Unlock()
}

func (p *ThriftPool) GetIdleCount() uint32 {
	if p == nil {
		return 0
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	return uint32(p.idle.Len())
}

func (p *ThriftPool) GetConnCount() int32 {
	if p == nil {
		return 0
	}
	return atomic.LoadInt32(&p.count)
}

func (p *ThriftPool) initConn() {
	initCount := p.config.InitConn
	wg := &sync.WaitGroup{}
	wg.Add(int(initCount))
	for i := int32(0); i < initCount; i++ {
		go p.createIdleConn(wg)
	}
	wg.Wait()
}

// createIdleConn dials one client straight into the idle list. Going through
// Get would hand back a client another warm-up goroutine already parked.
func (p *ThriftPool) createIdleConn(wg *sync.WaitGroup) {
	defer wg.Done()
	if atomic.AddInt32(&p.count, 1) > p.config.MaxConn {
		atomic.AddInt32(&p.count, -1)
		return
	}
	client, err := p.Dial(p.config.Addr, p.config.ConnTimeout)
	if err != nil {
		atomic.AddInt32(&p.count, -1)
		return
	}
	p.Put(client)
}

// NewThriftPool opens config.InitConn clients up front and starts the idle
// sweeper. Dial failures during warm-up are ignored; Get dials again later.
func NewThriftPool(config *ThriftPoolConfig, dial ThriftDial, closeFunc ThriftClientClose) *ThriftPool {
	checkThriftConfig(config)

	thriftPool := &ThriftPool{
		Dial:   dial,
		Close:  closeFunc,
		lock:   &sync.Mutex{},
		count:  0,
		status: poolOpen,
		config: config,
		stop:   make(chan struct{}),
	}

	thriftPool.initConn()
	go thriftPool.clearConn(thriftPool.stop)
	return thriftPool
}

func checkThriftConfig(config *ThriftPoolConfig) {
	if config.MaxConn <= 0 {
		config.MaxConn = DEFAULT_MAX_CONN
	}
	if config.InitConn < 0 {
		config.InitConn = 0
	}
	if config.InitConn > config.MaxConn {
		config.InitConn = config.MaxConn
	}
	if config.InitConn > maxInitConnCount {
		config.InitConn = maxInitConnCount
	}
	if config.ConnTimeout <= 0 {
		config.ConnTimeout = DEFAULT_CONN_TIMEOUT
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DEFAULT_IDLE_TIMEOUT
	}
	if config.Timeout <= 0 {
		config.Timeout = DEFAULT_TIMEOUT
	}
	config.interval = defaultInterval
}
