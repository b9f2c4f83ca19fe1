package internal

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SpinLock is a sync.Locker that spins with exponential backoff instead of
// parking the goroutine. Critical sections guarded by it must be short.
type SpinLock int32

var _ sync.Locker = new(SpinLock)

func (sl *SpinLock) Lock() {
	var backoff = 1
	const maxBackoff = 16

	for !atomic.CompareAndSwapInt32((*int32)(sl), 0, 1) {
		// Leverage the exponential backoff algorithm, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

func (sl *SpinLock) Unlock() {
	atomic.StoreInt32((*int32)(sl), 0)
}
