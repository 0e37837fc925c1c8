package gcguard

import "runtime"

// memStats is only read with guardMu held.
var memStats runtime.MemStats

func readHeapInuse() uint64 {
	runtime.ReadMemStats(&memStats)

	return memStats.HeapInuse
}
