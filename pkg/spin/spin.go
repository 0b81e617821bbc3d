package spin

import (
	"runtime"
	"sync"
	"sync/atomic"
)

const maxBackoff = 16

// New
// 创建自旋锁
func New() sync.Locker {
	return &Locker{
		n: atomic.Int64{},
	}
}

// Locker
// 自旋锁，适用于临界区很短的场景（如缓存查询）。
type Locker struct {
	n atomic.Int64
}

func (sl *Locker) Lock() {
	backoff := 1
	for !sl.n.CompareAndSwap(0, 1) {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock
// 尝试加锁，不自旋。
func (sl *Locker) TryLock() bool {
	return sl.n.CompareAndSwap(0, 1)
}

func (sl *Locker) Unlock() {
	sl.n.Store(0)
}
