package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewStabilityChecker_IntervalFloor(t *testing.T) {
	s := NewStabilityChecker(100 * time.Millisecond)
	if s.interval != 50*time.Millisecond {
		t.Errorf("expected interval floor of 50ms, got %v", s.interval)
	}

	s = NewStabilityChecker(2 * time.Second)
	if s.interval != 500*time.Millisecond {
		t.Errorf("expected interval of threshold/4, got %v", s.interval)
	}
}

func TestStabilityChecker_StableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dates.txt")
	if err := os.WriteFile(path, []byte("06/05/2009\n"), 0644); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if err := NewStabilityChecker(100*time.Millisecond).WaitForStable(context.Background(), path); err != nil {
		t.Fatalf("expected a stable file, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("returned before the threshold: %v", elapsed)
	}
}

func TestStabilityChecker_MissingFile(t *testing.T) {
	err := NewStabilityChecker(100*time.Millisecond).WaitForStable(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != ErrFileNotFound {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestStabilityChecker_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growing.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		defer f.Close()
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				f.WriteString("2009\n")
			}
		}
	}()

	s := &StabilityChecker{threshold: 200 * time.Millisecond, timeout: 300 * time.Millisecond, interval: 50 * time.Millisecond}
	if err := s.WaitForStable(context.Background(), path); err != ErrFileUnstable {
		t.Errorf("expected ErrFileUnstable, got %v", err)
	}
}

func TestStabilityChecker_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dates.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewStabilityChecker(time.Second).WaitForStable(ctx, path); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
