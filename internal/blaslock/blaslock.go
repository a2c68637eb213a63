package blaslock

import (
	"runtime"
	"sync"
)

// ThreadSetter sets the linear-algebra library's thread count to n and
// returns the count it replaced. The default implementation just
// tracks a package-level counter; SetThreadSetter lets a real BLAS
// binding (or a test) install the actual hook.
type ThreadSetter func(n int) int

var (
	mu         sync.Mutex
	countMu    sync.Mutex
	current    = runtime.GOMAXPROCS(0)
	setThreads ThreadSetter = func(n int) int {
		countMu.Lock()
		defer countMu.Unlock()
		prev := current
		current = n
		return prev
	}
)

// SetThreadSetter installs f as the thread-count hook Pin uses. It is
// not itself safe to call concurrently with an outstanding Pin.
func SetThreadSetter(f ThreadSetter) {
	setThreads = f
}

// Threads reports the counter kept by the default hook: 1 while a Pin
// is outstanding, GOMAXPROCS before any Pin call. It does not wait for
// an outstanding Pin. A hook installed with SetThreadSetter does not
// update this counter.
func Threads() int {
	countMu.Lock()
	defer countMu.Unlock()
	return current
}

// Pin serializes access to the shared linear-algebra thread count,
// pins it to one thread, and returns a restore function that puts the
// previous count back and releases the lock. Callers must defer the
// restore function so it runs on every exit path, including panics,
// per spec.md §5.
func Pin() func() {
	mu.Lock()
	prev := setThreads(1)
	return func() {
		setThreads(prev)
		mu.Unlock()
	}
}
