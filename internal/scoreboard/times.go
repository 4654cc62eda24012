package scoreboard

import "fmt"

// FormatTime renders a centisecond swim time as M:SS.ss, dropping the
// minutes when under one minute. Zero means no time was recorded.
func FormatTime(centiseconds int) string {
	if centiseconds <= 0 {
		return "NT"
	}
	minutes := centiseconds / 6000
	seconds := float64(centiseconds%6000) / 100
	if minutes > 0 {
		return fmt.Sprintf("%d:%05.2f", minutes, seconds)
	}
	return fmt.Sprintf("%.2f", seconds)
}
