package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dronhome/TP-final/lib"
)

// createUploadProgressCallback prints an inline percent line, throttled so
// small reads don't flood the terminal.
func createUploadProgressCallback(fileName string) lib.ProgressCallback {
	base := filepath.Base(fileName)
	return throttleProgress(func(consumed, total int64) {
		if total > 0 {
			percent := float64(consumed) / float64(total)
			fmt.Printf("\r%s: %.1f%% (%s/%s)",
				base,
				percent*100,
				lib.FormatSize(consumed),
				lib.FormatSize(total))
		}
	}, 100*time.Millisecond)
}

// throttleProgress drops updates arriving faster than wait, except the
// final one (consumed == total) which always goes through.
func throttleProgress(cb lib.ProgressCallback, wait time.Duration) lib.ProgressCallback {
	lastTime := time.Now()
	return func(consumed, total int64) {
		now := time.Now()
		if now.Sub(lastTime) >= wait || consumed >= total {
			cb(consumed, total)
			lastTime = now
		}
	}
}
