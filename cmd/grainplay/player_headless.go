//go:build headless

package main

import (
	"context"
	"time"
)

// play renders r at real-time pace without an audio device until ctx is
// done.
func play(ctx context.Context, r *renderer, sampleRate int) error {
	const frames = 1024

	buf := make([]byte, frames*bytesPerFrame)
	tick := time.NewTicker(time.Duration(frames) * time.Second / time.Duration(sampleRate))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if _, err := r.Read(buf); err != nil {
				return err
			}
		}
	}
}
