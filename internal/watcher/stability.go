package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

var (
	// ErrFileNotFound is returned when the file disappears while waiting.
	ErrFileNotFound = errors.New("file not found")
	// ErrFileUnstable is returned when the file keeps growing past the timeout.
	ErrFileUnstable = errors.New("file did not stabilize within timeout")
)

// StabilityChecker waits until a file stops changing size, so a file that
// is still being written is not converted half way.
type StabilityChecker struct {
	threshold time.Duration // size must stay unchanged this long
	timeout   time.Duration
	interval  time.Duration
}

// NewStabilityChecker creates a checker polling every threshold/4, with a
// floor of 50ms, and giving up after 30 seconds.
func NewStabilityChecker(threshold time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   30 * time.Second,
		interval:  interval,
	}
}

// WaitForStable blocks until the size of path has been unchanged for the
// threshold, the timeout expires, or ctx is done.
func (s *StabilityChecker) WaitForStable(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := fileSize(path)
	if err != nil {
		return err
	}
	lastChange := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			size, err := fileSize(path)
			if err != nil {
				return err
			}

			if size != lastSize {
				lastSize = size
				lastChange = time.Now()
			} else if time.Since(lastChange) >= s.threshold {
				return nil
			}
		}
	}
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
