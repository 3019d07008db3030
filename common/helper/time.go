package helper

import (
	"time"
)

// CalcElapsedTime return the elapsed time in milliseconds (ms)
func CalcElapsedTime(start time.Time) int64 {
	elapsed := time.Since(start)
	ms := elapsed.Milliseconds()
	if ms == 0 && elapsed > 0 {
		// sub-millisecond calls still report 1ms
		return 1
	}
	return ms
}
