package gcguard

import (
	"math"
	"strconv"
)

// parseByteCount parses a string that represents a count of bytes, in the
// same syntax the runtime accepts for GOMEMLIMIT:
//
//	^[0-9]+(([KMGT]i)?B)?$
func parseByteCount(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}

	mult := uint64(1)

	switch {
	case s[len(s)-1] >= '0' && s[len(s)-1] <= '9':
		// bare integer
	case s[len(s)-1] != 'B' || len(s) < 2:
		return 0, false
	case s[len(s)-2] >= '0' && s[len(s)-2] <= '9':
		s = s[:len(s)-1]
	case s[len(s)-2] != 'i' || len(s) < 4:
		return 0, false
	default:
		switch s[len(s)-3] {
		case 'K':
			mult = 1 << 10
		case 'M':
			mult = 1 << 20
		case 'G':
			mult = 1 << 30
		case 'T':
			mult = 1 << 40
		default:
			return 0, false
		}

		s = s[:len(s)-3]
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > math.MaxUint64/mult {
		return 0, false
	}

	return n * mult, true
}
