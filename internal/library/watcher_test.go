package library

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRescansOnNewFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(NewScanner(dir, ""), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "new.wav", pcmWAV(1))
	writeFile(t, dir, "ignored.txt", []byte("x"))

	select {
	case res, ok := <-w.Results():
		require.True(t, ok)
		require.Len(t, res.Tracks, 1)
		assert.Equal(t, "/audio/new.wav", res.Tracks[0].AudioFile)
	case <-time.After(5 * time.Second):
		t.Fatal("no rescan after adding a file")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	for range w.Results() {
	}
}

func TestResetTimerDropsStaleFire(t *testing.T) {
	timer := time.NewTimer(time.Millisecond)
	defer timer.Stop()
	time.Sleep(20 * time.Millisecond)

	resetTimer(timer, 300*time.Millisecond)
	select {
	case <-timer.C:
		t.Fatal("timer fired before the new deadline")
	case <-time.After(50 * time.Millisecond):
	}
	select {
	case <-timer.C:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired after reset")
	}
}
