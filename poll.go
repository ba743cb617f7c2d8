package appkit

import (
	"context"
	"time"
)

// DefaultPollInterval is used by Poll when interval is not positive.
// It is roughly one frame at 60 Hz.
const DefaultPollInterval = 16 * time.Millisecond

// Poll calls ProcessEvents at a fixed cadence until ctx is cancelled or
// the backend returns an error. Use it instead of Run when the program
// drives its own loop and no native loop is running.
//
// Poll returns ctx.Err() on cancellation, or the first ProcessEvents error.
func (a *Application) Poll(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := a.ProcessEvents(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
