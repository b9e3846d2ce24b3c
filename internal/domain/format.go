package domain

import (
	"fmt"
	"math/bits"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSeconds renders a second count as zero-padded HH:MM:SS. Hours are
// not wrapped at 24.
func FormatSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds%60)
}

// FormatSize renders a byte count using binary (1024-based) units with one
// decimal place. Zero is rendered as a literal "0 B".
func FormatSize(size int64) string {
	if size == 0 {
		return "0 B"
	}
	exp := bits.Len64(uint64(size)) / 10
	if exp > len(sizeUnits)-1 {
		exp = len(sizeUnits) - 1
	}
	return fmt.Sprintf("%.1f %s", float64(size)/float64(int64(1)<<(exp*10)), sizeUnits[exp])
}
