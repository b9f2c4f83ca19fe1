package stl

import (
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/d3phys/stl/internal"
)

// maxBlockBytes bounds a single block: 1<<47 on 64-bit platforms, 1<<31 on
// 32-bit ones.
const maxBlockBytes = uintptr(1) << (31 + (^uintptr(0)>>63)*16)

// Memory admits the raw blocks a Storage owns. Alloc either accepts a block of
// size bytes or fails; Free returns a block previously admitted. The block
// itself always comes from the Go heap so pointer-bearing elements stay visible
// to the garbage collector; a Memory only decides whether it may exist.
type Memory interface {
	Alloc(size uintptr) error
	Free(size uintptr)
}

// HeapMemory returns the default Memory: every block up to the maximum block
// size is admitted. The Go runtime cannot report a failed heap allocation, it
// aborts the process, so ErrAllocation for oversized blocks is only returned by
// a bounded Memory such as Budget.
func HeapMemory() Memory {
	return heapMemory{}
}

type heapMemory struct{}

func (h heapMemory) Alloc(size uintptr) error {
	return nil
}

func (h heapMemory) Free(size uintptr) {
}

// budgetOptions holds configuration settings for a Budget
type budgetOptions struct {
	locker sync.Locker
	logger *zap.Logger
}

// BudgetOption defines a function type for configuring Budget parameters
type BudgetOption func(*budgetOptions)

// WithEnableLock enables thread-safe accounting using a spinlock.
// Required when one Budget backs vectors used from several goroutines.
func WithEnableLock(enableLock bool) BudgetOption {
	return func(o *budgetOptions) {
		if enableLock {
			o.locker = new(internal.SpinLock)
		} else {
			o.locker = nopLocker{}
		}
	}
}

// WithBudgetLogger sets the logger used to report exhausted budgets.
func WithBudgetLogger(logger *zap.Logger) BudgetOption {
	return func(o *budgetOptions) {
		o.logger = logger
	}
}

// Budget is a Memory that admits blocks until limit bytes are in use.
type Budget struct {
	locker sync.Locker
	logger *zap.Logger
	limit  uintptr
	used   uintptr
	peak   uintptr
}

// NewBudget creates a Budget admitting at most limit bytes at a time.
func NewBudget(limit uintptr, ops ...BudgetOption) *Budget {
	var opts = budgetOptions{
		locker: nopLocker{},
		logger: zap.NewNop(),
	}
	for _, op := range ops {
		op(&opts)
	}
	return &Budget{
		locker: opts.locker,
		logger: opts.logger,
		limit:  limit,
	}
}

var _ Memory = (*Budget)(nil)

// Alloc admits size bytes, failing with ErrAllocation when the budget would be
// exceeded.
func (b *Budget) Alloc(size uintptr) error {
	b.locker.Lock()
	defer b.locker.Unlock()

	if size > b.limit-b.used {
		b.logger.Warn("memory budget exhausted",
			zap.Uint64("requested", uint64(size)),
			zap.Uint64("used", uint64(b.used)),
			zap.Uint64("limit", uint64(b.limit)),
		)
		return errors.Wrapf(ErrAllocation, "requested %d bytes, %d of %d in use", size, b.used, b.limit)
	}
	b.used += size
	b.peak = max(b.peak, b.used)
	return nil
}

// Free returns size bytes to the budget.
// Panics if more bytes are freed than are in use.
func (b *Budget) Free(size uintptr) {
	b.locker.Lock()
	defer b.locker.Unlock()

	if size > b.used {
		panic("freed more memory than the budget admitted")
	}
	b.used -= size
}

// Used returns the number of bytes currently admitted.
func (b *Budget) Used() uintptr {
	b.locker.Lock()
	defer b.locker.Unlock()
	return b.used
}

// Peak returns the high-water mark of admitted bytes.
func (b *Budget) Peak() uintptr {
	b.locker.Lock()
	defer b.locker.Unlock()
	return b.peak
}

// Limit returns the maximum number of bytes the budget admits at once.
func (b *Budget) Limit() uintptr {
	return b.limit
}

// Sizeof 计算类型所占内存大小
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// blockBytes returns the size of a block holding capacity elements of T.
func blockBytes[T any](capacity int) (uintptr, error) {
	if capacity < 0 {
		return 0, errors.Wrapf(ErrAllocation, "negative capacity %d", capacity)
	}
	elemSize := Sizeof[T]()
	if elemSize != 0 && uintptr(capacity) > maxBlockBytes/elemSize {
		return 0, errors.Wrapf(ErrAllocation, "%d elements of %d bytes exceed the maximum block size", capacity, elemSize)
	}
	return elemSize * uintptr(capacity), nil
}

type nopLocker struct{}

func (n nopLocker) Lock() {
}

func (n nopLocker) Unlock() {
}
