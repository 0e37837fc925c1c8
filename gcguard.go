package gcguard

import (
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	guardMu sync.Mutex

	// depth counts active guard participations across all goroutines.
	// priorPercent is the GOGC percent observed at the 0->1 transition and
	// is meaningful only while depth > 0. Both are guarded by guardMu.
	depth        int
	priorPercent int

	// heapBaseline is the HeapInuse value at the last forced collection
	// (or at the 0->1 transition). Guarded by guardMu.
	heapBaseline uint64
)

// Enter disables the garbage collector and registers the caller as a
// participant in the process-wide guard. On the first entry the current
// GOGC percent is recorded for restoration; nested and concurrent entries
// only increment the participation count.
//
// Every Enter must be paired with exactly one [Exit]. Prefer [Disable],
// [Do], or [Wrap], which handle the pairing.
func Enter() {
	collect := false

	guardMu.Lock()
	depth++
	if depth == 1 {
		priorPercent = debug.SetGCPercent(-1)
		if CollectEvery() > 0 {
			heapBaseline = readHeapInuse()
		}
	} else if every := CollectEvery(); every > 0 {
		if inuse := readHeapInuse(); inuse >= heapBaseline && inuse-heapBaseline >= every {
			collect = true
		}
	}
	guardMu.Unlock()

	if collect {
		runtime.GC()

		guardMu.Lock()
		if depth > 0 {
			heapBaseline = readHeapInuse()
		}
		guardMu.Unlock()
	}
}

// Exit releases one participation taken by [Enter]. When the last
// participant exits, the collector is restored to the state recorded by the
// first Enter.
//
// Exit panics if called without a matching Enter.
func Exit() {
	guardMu.Lock()
	defer guardMu.Unlock()

	if depth == 0 {
		panic("gcguard: Exit without matching Enter")
	}

	depth--
	if depth == 0 {
		debug.SetGCPercent(priorPercent)
	}
}

// Disable enters the guard and returns a restore function that exits it,
// for use with defer:
//
//	restore := gcguard.Disable()
//	defer restore()
//
// The restore function panics if called more than once.
func Disable() (restore func()) {
	Enter()

	var restored atomic.Bool

	return func() {
		if !restored.CompareAndSwap(false, true) {
			panic("gcguard: restore called twice")
		}

		Exit()
	}
}

// Do runs fn with the collector disabled, restoring it on return. Errors
// and panics from fn propagate unchanged; the guard is released on every
// exit path.
func Do(fn func() error) error {
	Enter()
	defer Exit()

	return fn()
}

// Wrap returns a function that runs fn under [Do] on every invocation.
func Wrap(fn func() error) func() error {
	return func() error {
		return Do(fn)
	}
}

// Depth returns the number of currently-active guard participations.
func Depth() int {
	guardMu.Lock()
	defer guardMu.Unlock()

	return depth
}

// Disabled reports whether the guard currently holds the collector
// disabled, i.e. at least one participant is between its Enter and Exit.
func Disabled() bool {
	return Depth() > 0
}
