package game

import (
	"fmt"
	"math"
)

// formatLoop formats a position inside the loop as MM:SS.t
func formatLoop(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	tenths := int(math.Floor(seconds * 10))
	minutes := tenths / 600
	rest := tenths % 600
	return fmt.Sprintf("%02d:%02d.%d", minutes, rest/10, rest%10)
}
