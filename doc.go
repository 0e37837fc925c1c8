// Package gcguard temporarily disables the garbage collector for the
// duration of a region or function call, then restores it to its prior
// state.
//
// # Overview
//
// The guard is a single process-wide, reference-counted toggle. The first
// [Enter] (across all goroutines) records the current GOGC percent and
// disables the collector with debug.SetGCPercent(-1); the matching last
// [Exit] restores the recorded percent. Nested or concurrent activations
// only adjust the count, so the collector stays disabled for the union of
// all active regions, not just the most recent one:
//
//	restore := gcguard.Disable()
//	defer restore()
//	// collector disabled here, even across nested or concurrent use
//
// [Do] and [Wrap] run a function with the collector disabled, restoring it
// on every exit path including panics:
//
//	err := gcguard.Do(func() error {
//		// collector disabled inside
//		return nil
//	})
//
// # Reentrancy
//
// The depth count is shared process-wide. Two goroutines may each
// independently be inside the guard; the collector is re-enabled only when
// the last participant exits. This also holds for interleaved use on a
// single goroutine, so suspending between [Enter] and [Exit] never exposes
// another task to a re-enabled collector.
//
// Enter and Exit do not allocate, so the guard is safe to use from
// finalizers.
//
// # Forced collections
//
// With the collector disabled the heap only grows. When a collect interval
// is set (via [SetCollectEvery] or the GCGUARD_COLLECT environment
// variable), Enter additionally runs a forced collection whenever the heap
// has grown by at least that many bytes since the last one, so long-lived
// guarded regions do not starve the collector. The interval is 0 (off) by
// default.
//
// # Limitations
//
// The collector's enabled state is a global runtime resource. Code that
// calls debug.SetGCPercent directly while the guard is active bypasses the
// guard; the guard cannot detect this, and only restores state on its own
// final Exit.
package gcguard
