// Package safe provides range-checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds accepted by the conversions in this package.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int converts v to a non-negative int.
func Int[T Integer](v T) (int, error) {
	if v < 0 || uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of non-negative int range", v)
	}
	return int(v), nil
}

// Min returns the smaller of a count and a limit after clamping both to zero.
func Min(count, limit int) int {
	count = max(count, 0)
	limit = max(limit, 0)
	return min(count, limit)
}
