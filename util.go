package huffmantree

import (
	"math"
)

// saturatingAdd returns a+b for non-negative a and b, clamped to
// math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if sum < a {
		return math.MaxInt64
	}
	return sum
}
