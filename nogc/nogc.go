// Package nogc disables the garbage collector for the lifetime of the
// process as an import side effect:
//
//	import _ "go.dw1.io/gcguard/nogc"
//
// The collector is disabled before main runs and stays disabled unless every
// participation is released, including this package's via [Restore].
package nogc

import (
	"sync"

	"go.dw1.io/gcguard"
)

var (
	restoreOnce sync.Once
	restore     = gcguard.Disable()
)

// Restore releases the participation taken at init time. It is safe to call
// more than once; only the first call has an effect.
func Restore() {
	restoreOnce.Do(restore)
}
