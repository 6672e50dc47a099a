package library

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher rescans the directory whenever audio files appear, disappear or
// change, coalescing bursts of events into one scan.
type Watcher struct {
	scanner  *Scanner
	debounce time.Duration
	out      chan Result
}

// NewWatcher builds a watcher over scanner's directory.
func NewWatcher(scanner *Scanner, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{scanner: scanner, debounce: debounce, out: make(chan Result, 1)}
}

// Results delivers the outcome of every rescan. It is closed when Run returns.
func (w *Watcher) Results() <-chan Result { return w.out }

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.out)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.scanner.Dir()); err != nil {
		return err
	}
	log.Info().Str("dir", w.scanner.Dir()).Msg("watching audio dir")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !IsAudioFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Write) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("audio dir changed")
			resetTimer(timer, w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("fsnotify error")

		case <-timer.C:
			res, err := w.scanner.Scan(ctx)
			if err != nil {
				log.Error().Err(err).Msg("rescan failed")
				continue
			}
			// Drop a result nobody collected in favour of the newer one.
			select {
			case <-w.out:
			default:
			}
			w.out <- res
		}
	}
}

// resetTimer rearms t, discarding a fire nobody received yet.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
