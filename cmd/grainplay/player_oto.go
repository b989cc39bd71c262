//go:build !headless

package main

import (
	"context"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// play streams r to the default output device until ctx is done.
func play(ctx context.Context, r *renderer, sampleRate int) error {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	<-ready

	p := otoCtx.NewPlayer(r)
	p.Play()

	<-ctx.Done()

	if err := p.Close(); err != nil {
		return fmt.Errorf("audio output: %w", err)
	}

	return otoCtx.Err()
}
