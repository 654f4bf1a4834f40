package checkout

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinQty = 1
	MaxQty = 999
)

// NormalizeQty coerces an untrusted quantity to an int in [MinQty, MaxQty].
// JSON numbers truncate toward zero, numeric strings are parsed base 10, and
// anything unusable counts as a single unit.
func NormalizeQty(v any) int {
	qty := 1

	switch n := v.(type) {
	case int:
		qty = n
	case float64:
		qty = truncFloat(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			qty = i
		}
	}

	return ClampQty(qty)
}

// ClampQty bounds a quantity to [MinQty, MaxQty].
func ClampQty(qty int) int {
	if qty < MinQty {
		return MinQty
	}
	if qty > MaxQty {
		return MaxQty
	}
	return qty
}

func truncFloat(n float64) int {
	if math.IsNaN(n) {
		return 1
	}
	if n > float64(MaxQty) {
		return MaxQty
	}
	if n < float64(MinQty) {
		return MinQty
	}
	return int(n)
}
