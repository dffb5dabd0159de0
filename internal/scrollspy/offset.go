package scrollspy

import (
	"math"
	"strconv"
	"strings"
)

// ParseOffset reads a pixel offset from configuration text. Anything that is
// not a finite, non-negative number yields DefaultOffset.
func ParseOffset(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultOffset
	}
	return f
}
