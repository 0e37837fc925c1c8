package gcguard

import (
	"os"
	"runtime"
	"testing"
)

func numGC() uint32 {
	var ms runtime.MemStats

	runtime.ReadMemStats(&ms)

	return ms.NumGC
}

func TestCollectOnEntryAfterGrowth(t *testing.T) {
	defer setGCPercent(t, 100)()
	defer SetCollectEvery(SetCollectEvery(1 << 20))

	Enter()

	// Grow the heap well past the 1 MiB interval while the collector is off.
	sink := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		sink = append(sink, make([]byte, 128<<10))
	}

	before := numGC()

	Enter()

	if got := numGC(); got <= before {
		t.Fatalf("expected a forced collection on nested entry, NumGC still %d", got)
	}

	Exit()
	Exit()

	runtime.KeepAlive(sink)

	assertGCPercent(t, 100)
}

func TestNoCollectBelowInterval(t *testing.T) {
	defer setGCPercent(t, 100)()
	defer SetCollectEvery(SetCollectEvery(1 << 40))

	Enter()

	before := numGC()

	Enter()

	if got := numGC(); got != before {
		t.Fatalf("unexpected forced collection: NumGC %d -> %d", before, got)
	}

	Exit()
	Exit()
}

func TestNoCollectWhenOff(t *testing.T) {
	defer setGCPercent(t, 100)()
	defer SetCollectEvery(SetCollectEvery(0))

	Enter()

	sink := make([][]byte, 0, 16)
	for i := 0; i < 16; i++ {
		sink = append(sink, make([]byte, 128<<10))
	}

	before := numGC()

	Enter()

	if got := numGC(); got != before {
		t.Fatalf("unexpected forced collection with interval off: NumGC %d -> %d", before, got)
	}

	Exit()
	Exit()

	runtime.KeepAlive(sink)
}

func TestSetCollectEveryReturnsOld(t *testing.T) {
	old := SetCollectEvery(42)
	defer SetCollectEvery(old)

	if got := SetCollectEvery(7); got != 42 {
		t.Fatalf("expected old interval 42, got %d", got)
	}

	if got := CollectEvery(); got != 7 {
		t.Fatalf("expected interval 7, got %d", got)
	}
}

func TestReadCollectEnv(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"off", 0},
		{"not-a-number", 0},
		{"-1", 0},
		{"65536", 65536},
		{"4MiB", 4 << 20},
	}

	old, had := os.LookupEnv("GCGUARD_COLLECT")
	defer func() {
		if had {
			_ = os.Setenv("GCGUARD_COLLECT", old)
		} else {
			_ = os.Unsetenv("GCGUARD_COLLECT")
		}
	}()

	for _, tc := range cases {
		if tc.in == "" {
			_ = os.Unsetenv("GCGUARD_COLLECT")
		} else {
			_ = os.Setenv("GCGUARD_COLLECT", tc.in)
		}

		if got := readCollectEnv(); got != tc.want {
			t.Fatalf("readCollectEnv() with %q = %d, want %d", tc.in, got, tc.want)
		}
	}
}
