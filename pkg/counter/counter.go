package counter

import (
	"sync/atomic"
)

func New() *Counter {
	return new(Counter)
}

// Counter
// 原子计数器
type Counter struct {
	n int64
}

func (c *Counter) Incr() int64 {
	return atomic.AddInt64(&c.n, 1)
}

func (c *Counter) Decr() int64 {
	return atomic.AddInt64(&c.n, -1)
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.n)
}

// Reset
// 归零，返回归零前的值。
func (c *Counter) Reset() int64 {
	return atomic.SwapInt64(&c.n, 0)
}
