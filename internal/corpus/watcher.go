package corpus

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arindamsaha1507/vyakarana/internal/checksum"
)

// debounce interval for editor write bursts (many editors write a
// corpus file as several events in quick succession).
const reloadDelay = 200 * time.Millisecond

// Watch monitors the corpus file for changes until ctx is cancelled.
// After each settled change whose content checksum differs from the
// previous one, onChange is called with the new file contents.
//
// The parent directory is watched rather than the file itself so that
// atomic save strategies (write temp file, rename over the original)
// are still observed.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(data []byte)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var lastSum string
	if data, readErr := os.ReadFile(abs); readErr == nil {
		lastSum = checksum.Sum(data)
	}

	logger.Info("watcher: started", slog.String("corpus", abs))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(reloadDelay)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(reloadDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			data, readErr := os.ReadFile(abs)
			if readErr != nil {
				logger.Warn("watcher: read failed", slog.String("error", readErr.Error()))
				continue
			}
			sum := checksum.Sum(data)
			if sum == lastSum {
				logger.Debug("watcher: content unchanged", slog.String("checksum", sum))
				continue
			}
			lastSum = sum
			logger.Info("watcher: corpus changed", slog.String("checksum", sum))
			onChange(data)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
