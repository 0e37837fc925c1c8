package gcguard

import (
	"os"
	"sync"
	"sync/atomic"
)

var (
	collectOnce  sync.Once
	collectBytes uint64
)

// CollectEvery returns the forced-collection interval in bytes of heap
// growth, or 0 if forced collections are off.
func CollectEvery() uint64 {
	loadCollectDefault()

	return atomic.LoadUint64(&collectBytes)
}

// SetCollectEvery sets the forced-collection interval and returns the old
// value. While the guard is active, [Enter] runs a forced collection
// whenever the heap has grown by at least this many bytes since the last
// one. 0 turns forced collections off.
func SetCollectEvery(bytes uint64) uint64 {
	loadCollectDefault()

	return atomic.SwapUint64(&collectBytes, bytes)
}

// loadCollectDefault installs the GCGUARD_COLLECT default exactly once,
// before the first read or programmatic override.
func loadCollectDefault() {
	collectOnce.Do(func() {
		atomic.StoreUint64(&collectBytes, readCollectEnv())
	})
}

// readCollectEnv reads the GCGUARD_COLLECT value.
// Returns 0 if unset, "off", or invalid.
func readCollectEnv() uint64 {
	p := os.Getenv("GCGUARD_COLLECT")
	if p == "" || p == "off" {
		return 0
	}

	n, ok := parseByteCount(p)
	if !ok {
		return 0
	}

	return n
}
