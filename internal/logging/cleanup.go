package logging

import (
	"log/slog"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/store"
)

// StartCleanup runs a daily goroutine that deletes system logs older than
// 30 days.
func StartCleanup(logs store.SystemLogStore, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -30)
				deleted, err := logs.DeleteOlderThan(cutoff)
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
